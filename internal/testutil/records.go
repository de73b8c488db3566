// records.go --  This file is part of goHF project.
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
package testutil

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"example.com/gohf/internal/linalg"
	"example.com/gohf/wfn"
)

// Water geometry in bohr.
var waterCoords = [][3]float64{
	{1.4305, 0.0, 1.1093},
	{0.0, 0.0, 0.0},
	{-1.4305, 0.0, 1.1093},
}

// MinimalWater is a three-atom record with one s shell per atom,
// identity coefficients and restricted occupations [2, 0, 0].
func MinimalWater() *wfn.Record {
	return &wfn.Record{
		Title:         "water",
		Numbers:       []int{1, 8, 1},
		Coordinates:   append([][3]float64(nil), waterCoords...),
		PseudoNumbers: []float64{1, 8, 1},
		Basis: &wfn.Basis{
			Centers:    append([][3]float64(nil), waterCoords...),
			ShellMap:   []int{0, 1, 2},
			NPrims:     []int{1, 1, 1},
			ShellTypes: []int{0, 0, 0},
			Alphas:     []float64{0.48, 7.61, 0.48},
			ConCoeffs:  []float64{1, 1, 1},
		},
		Alpha: &wfn.OrbitalSet{
			Coefficients: Eye(3),
			Energies:     []float64{-0.5, 0.1, 0.2},
			Occupations:  []float64{2, 0, 0},
		},
	}
}

// Overlap returns a seeded, symmetric positive definite matrix with unit
// diagonal, standing in for the overlap of a normalized basis.
func Overlap(n int, seed uint64) *mat.SymDense {
	rnd := rand.New(rand.NewSource(seed))
	b := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			b.Set(i, j, rnd.Float64()-0.5)
		}
	}
	var a mat.SymDense
	a.SymOuterK(1, b)
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := a.At(i, j)
			if i == j {
				v += float64(n)
			}
			s.SetSym(i, j, v)
		}
	}
	d := make([]float64, n)
	for i := range d {
		d[i] = math.Sqrt(s.At(i, i))
	}
	for i := 0; i < n; i++ {
		s.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			s.SetSym(i, j, s.At(i, j)/(d[i]*d[j]))
		}
	}
	return s
}

// Water is a seven-function water record: s on each hydrogen, s s p on
// oxygen. Its orbitals are orthonormal in the stored overlap operator and
// hold five doubly occupied orbitals in the restricted convention.
func Water() *wfn.Record {
	s := Overlap(7, 7)
	c, err := linalg.OrthonormalEigenbasis(s)
	if err != nil {
		panic(err)
	}
	rec := &wfn.Record{
		Title:         "water",
		Numbers:       []int{1, 8, 1},
		Coordinates:   append([][3]float64(nil), waterCoords...),
		PseudoNumbers: []float64{1, 8, 1},
		Basis: &wfn.Basis{
			Centers:    append([][3]float64(nil), waterCoords...),
			ShellMap:   []int{0, 1, 1, 1, 2},
			NPrims:     []int{3, 3, 3, 3, 3},
			ShellTypes: []int{0, 0, 0, 1, 0},
			Alphas: []float64{
				3.42525091, 0.62391373, 0.16885540,
				130.7093214, 23.80886605, 6.443608313,
				5.033151319, 1.169596125, 0.38038896,
				5.033151319, 1.169596125, 0.38038896,
				3.42525091, 0.62391373, 0.16885540,
			},
			ConCoeffs: []float64{
				0.15432897, 0.53532814, 0.44463454,
				0.15432897, 0.53532814, 0.44463454,
				-0.09996723, 0.39951283, 0.70011547,
				0.15591627, 0.60768372, 0.39195739,
				0.15432897, 0.53532814, 0.44463454,
			},
		},
		Alpha: &wfn.OrbitalSet{
			Coefficients: c,
			Energies:     []float64{-20.25, -1.26, -0.61, -0.45, -0.39, 0.58, 0.69},
			Occupations:  []float64{1, 1, 1, 1, 1, 0, 0},
		},
	}
	rec.SetOperator(wfn.OpOverlap, mat.DenseCopyOf(s))
	return rec
}

// WaterCation is Water with an explicit beta channel missing one
// electron, i.e. the unrestricted doublet cation.
func WaterCation() *wfn.Record {
	rec := Water()
	rec.Alpha.Occupations = []float64{1, 1, 1, 1, 1, 0, 0}
	rec.Beta = &wfn.OrbitalSet{
		Coefficients: mat.DenseCopyOf(rec.Alpha.Coefficients),
		Energies:     append([]float64(nil), rec.Alpha.Energies...),
		Occupations:  []float64{1, 1, 1, 1, 0, 0, 0},
	}
	return rec
}

// Eye returns the n x n identity.
func Eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}
