// orbcheck.go --  This file is part of goHF project.
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
package orbcheck

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"example.com/gohf/qcerr"
	"example.com/gohf/wfn"
)

const (
	DefaultOrthonormalTolerance   = 1e-5
	DefaultNormalizationTolerance = 1e-4
)

const (
	notOrthonormal = "molecular orbitals are not orthonormal"
	notNormalized  = "the orbitals are not normalized"
)

// Option configures a check.
type Option func(*options)

type options struct {
	tol    float64
	tolSet bool
}

// WithTolerance overrides the default absolute tolerance of a check.
// It panics on a negative or NaN tolerance.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) {
		panic(fmt.Sprintf("orbcheck: invalid tolerance %g", tol))
	}
	return func(o *options) {
		o.tol = tol
		o.tolSet = true
	}
}

func tolerance(opts []Option, def float64) float64 {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if !o.tolSet {
		return def
	}
	return o.tol
}

// CheckOrthonormal verifies that Cᵗ·S·C is the identity to within the
// tolerance (default 1e-5) in every entry.
func CheckOrthonormal(coeffs, overlap mat.Matrix, opts ...Option) error {
	tol := tolerance(opts, DefaultOrthonormalTolerance)
	smo, err := moOverlap("check orthonormal", coeffs, overlap)
	if err != nil {
		return err
	}
	n, _ := smo.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			v := smo.At(i, j)
			if !(math.Abs(v-want) <= tol) {
				return &qcerr.ValidationError{
					Check: notOrthonormal, Row: i, Col: j,
					Value: v, Expected: want, Tolerance: tol,
				}
			}
		}
	}
	return nil
}

// CheckNormalization verifies that every orbital with non-zero occupation
// has unit norm in the overlap metric, |cᵗ·S·c − 1| < tolerance
// (default 1e-4). Unoccupied orbitals are not checked.
func CheckNormalization(coeffs mat.Matrix, occupations []float64, overlap mat.Matrix, opts ...Option) error {
	const op = "check normalization"
	tol := tolerance(opts, DefaultNormalizationTolerance)
	nbasis, norb := coeffs.Dims()
	if err := checkOverlap(op, nbasis, overlap); err != nil {
		return err
	}
	if len(occupations) != norb {
		return qcerr.Shape(op, "occupations", norb, len(occupations))
	}
	c := mat.NewVecDense(nbasis, nil)
	for i, occ := range occupations {
		if occ == 0 {
			continue
		}
		mat.Col(c.RawVector().Data, i, coeffs)
		norm := mat.Inner(c, overlap, c)
		if !(math.Abs(norm-1) < tol) {
			return &qcerr.ValidationError{
				Check: notNormalized, Row: i, Col: -1,
				Value: norm, Expected: 1, Tolerance: tol,
			}
		}
	}
	return nil
}

// Report summarizes how far Cᵗ·S·C is from the identity.
type Report struct {
	MaxAbs float64 // largest absolute deviation
	RMS    float64 // root mean square deviation over all entries
}

// Deviation measures the departure of the orbitals from orthonormality.
func Deviation(coeffs, overlap mat.Matrix) (Report, error) {
	smo, err := moOverlap("deviation", coeffs, overlap)
	if err != nil {
		return Report{}, err
	}
	n, _ := smo.Dims()
	sq := make([]float64, 0, n*n)
	var r Report
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := smo.At(i, j)
			if i == j {
				d -= 1
			}
			r.MaxAbs = math.Max(r.MaxAbs, math.Abs(d))
			sq = append(sq, d*d)
		}
	}
	r.RMS = math.Sqrt(stat.Mean(sq, nil))
	return r, nil
}

// Tolerances for CheckRecord; zero fields select the defaults.
type Tolerances struct {
	Orthonormal   float64
	Normalization float64
}

// CheckRecord runs both checks on the alpha and, when present, the beta
// orbitals of rec.
func CheckRecord(rec *wfn.Record, overlap mat.Matrix, tol Tolerances) error {
	if tol.Orthonormal == 0 {
		tol.Orthonormal = DefaultOrthonormalTolerance
	}
	if tol.Normalization == 0 {
		tol.Normalization = DefaultNormalizationTolerance
	}
	if rec.Alpha == nil {
		return qcerr.Shape("check record", "orb_alpha sets", 1, 0)
	}
	for _, ch := range []struct {
		name string
		orbs *wfn.OrbitalSet
	}{
		{"orb_alpha", rec.Alpha},
		{"orb_beta", rec.Beta},
	} {
		if ch.orbs == nil {
			continue
		}
		if err := ch.orbs.Validate("check record " + ch.name); err != nil {
			return err
		}
		if err := CheckOrthonormal(ch.orbs.Coefficients, overlap, WithTolerance(tol.Orthonormal)); err != nil {
			return fmt.Errorf("%s: %w", ch.name, err)
		}
		if err := CheckNormalization(ch.orbs.Coefficients, ch.orbs.Occupations, overlap,
			WithTolerance(tol.Normalization)); err != nil {
			return fmt.Errorf("%s: %w", ch.name, err)
		}
	}
	return nil
}

// moOverlap returns Cᵗ·S·C after checking the shapes.
func moOverlap(op string, coeffs, overlap mat.Matrix) (*mat.Dense, error) {
	nbasis, _ := coeffs.Dims()
	if err := checkOverlap(op, nbasis, overlap); err != nil {
		return nil, err
	}
	var sc, smo mat.Dense
	sc.Mul(overlap, coeffs)
	smo.Mul(coeffs.T(), &sc)
	return &smo, nil
}

func checkOverlap(op string, nbasis int, overlap mat.Matrix) error {
	r, c := overlap.Dims()
	if r != c {
		return qcerr.Shape(op, "overlap columns", r, c)
	}
	if r != nbasis {
		return qcerr.Shape(op, "overlap rows", nbasis, r)
	}
	return nil
}
