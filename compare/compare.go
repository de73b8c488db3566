// compare.go --  This file is part of goHF project.
// Mirzaeva Irina, 2023
//
//	goHF is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------
package compare

import (
	"math"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"example.com/gohf/qcerr"
	"example.com/gohf/wfn"
)

// BasisTolerance bounds the absolute difference of basis fields.
// Everything else is compared exactly.
const BasisTolerance = 1e-8

// Records returns a *qcerr.MismatchError for the first field, in a fixed
// order, in which a and b differ, and nil when they agree.
func Records(a, b *wfn.Record) error {
	if a.Title != b.Title {
		return qcerr.Mismatch("title", a.Title, b.Title)
	}
	if !slices.Equal(a.Numbers, b.Numbers) {
		return qcerr.Mismatch("atomic_numbers", a.Numbers, b.Numbers)
	}
	if !slices.Equal(a.Coordinates, b.Coordinates) {
		return qcerr.Mismatch("atomic_coordinates", a.Coordinates, b.Coordinates)
	}
	if err := basisFields(a.Basis, b.Basis); err != nil {
		return err
	}
	if err := orbitals("orb_alpha", a.Alpha, b.Alpha); err != nil {
		return err
	}
	if err := orbitals("orb_beta", a.Beta, b.Beta); err != nil {
		return err
	}
	for _, key := range wfn.OperatorKeys() {
		ma, okA := a.Operator(key)
		mb, okB := b.Operator(key)
		if okA != okB {
			return qcerr.Mismatch(string(key), okA, okB)
		}
		if okA && !mat.Equal(ma, mb) {
			return qcerr.Mismatch(string(key), ma, mb)
		}
	}
	return nil
}

type basisField struct {
	name string
	vals []float64
}

// fields lists the numeric basis arrays as float64 slices; a field is
// present when non-empty.
func fields(b *wfn.Basis) []basisField {
	centers := make([]float64, 0, 3*len(b.Centers))
	for _, c := range b.Centers {
		centers = append(centers, c[:]...)
	}
	return []basisField{
		{"centers", centers},
		{"shell_map", toFloat(b.ShellMap)},
		{"nprims", toFloat(b.NPrims)},
		{"shell_types", toFloat(b.ShellTypes)},
		{"alphas", b.Alphas},
		{"con_coeffs", b.ConCoeffs},
	}
}

func basisFields(a, b *wfn.Basis) error {
	if (a == nil) != (b == nil) {
		return qcerr.Mismatch("basis", a != nil, b != nil)
	}
	if a == nil {
		return nil
	}
	fb := fields(b)
	for i, fa := range fields(a) {
		name := "basis." + fa.name
		va, vb := fa.vals, fb[i].vals
		if (len(va) == 0) != (len(vb) == 0) {
			return qcerr.Mismatch(name, len(va) != 0, len(vb) != 0)
		}
		if len(va) != len(vb) {
			return qcerr.Mismatch(name, va, vb)
		}
		if len(va) == 0 {
			continue
		}
		if d := floats.Distance(va, vb, math.Inf(1)); !(d < BasisTolerance) {
			return qcerr.Mismatch(name, va, vb)
		}
	}
	return nil
}

func orbitals(name string, a, b *wfn.OrbitalSet) error {
	if (a == nil) != (b == nil) {
		return qcerr.Mismatch(name, a != nil, b != nil)
	}
	if a == nil {
		return nil
	}
	if !sameMatrix(a.Coefficients, b.Coefficients) {
		return qcerr.Mismatch(name+".coefficients", a.Coefficients, b.Coefficients)
	}
	if !slices.Equal(a.Energies, b.Energies) {
		return qcerr.Mismatch(name+".energies", a.Energies, b.Energies)
	}
	if !slices.Equal(a.Occupations, b.Occupations) {
		return qcerr.Mismatch(name+".occupations", a.Occupations, b.Occupations)
	}
	return nil
}

func sameMatrix(a, b *mat.Dense) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return mat.Equal(a, b)
}

func toFloat(v []int) []float64 {
	result := make([]float64, len(v))
	for i, x := range v {
		result[i] = float64(x)
	}
	return result
}
