// density_test.go --  This file is part of goHF project.
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
package density_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"example.com/gohf/density"
	"example.com/gohf/internal/testutil"
	"example.com/gohf/qcerr"
	"example.com/gohf/wfn"
)

// reference computes C·diag(occ)·Cᵗ with a plain dense product.
func reference(o *wfn.OrbitalSet) *mat.Dense {
	nbasis, norb := o.Coefficients.Dims()
	var cn mat.Dense
	cn.Mul(o.Coefficients, mat.NewDiagDense(norb, o.Occupations))
	dm := mat.NewDense(nbasis, nbasis, nil)
	dm.Mul(&cn, o.Coefficients.T())
	return dm
}

func TestBuildMinimal(t *testing.T) {
	rec := testutil.MinimalWater()
	dm, err := density.FromRecord(rec)
	require.NoError(t, err)

	want := mat.NewDiagDense(3, []float64{4, 0, 0})
	assert.True(t, mat.Equal(dm, want), "got\n%v", mat.Formatted(dm))
}

func TestBuildRestrictedDoubles(t *testing.T) {
	rec := testutil.Water()
	dm, err := density.Build(rec.Alpha, nil)
	require.NoError(t, err)

	var want mat.Dense
	want.Scale(2, reference(rec.Alpha))
	assert.True(t, mat.EqualApprox(dm, &want, 1e-12))
}

func TestBuildUnrestrictedSums(t *testing.T) {
	rec := testutil.WaterCation()
	dm, err := density.Build(rec.Alpha, rec.Beta)
	require.NoError(t, err)

	var want mat.Dense
	want.Add(reference(rec.Alpha), reference(rec.Beta))
	assert.True(t, mat.EqualApprox(dm, &want, 1e-12))
}

func TestBuildSymmetric(t *testing.T) {
	// non-orthogonal, fractional occupations: the result is still symmetric
	c := mat.NewDense(3, 2, []float64{
		0.3, -1.2,
		0.7, 0.4,
		-0.1, 2.5,
	})
	alpha := &wfn.OrbitalSet{Coefficients: c, Energies: []float64{-1, 1}, Occupations: []float64{0.9, 0.35}}
	beta := &wfn.OrbitalSet{Coefficients: c, Energies: []float64{-1, 1}, Occupations: []float64{0.6, 0}}

	for name, dmFn := range map[string]func() (*mat.SymDense, error){
		"restricted":   func() (*mat.SymDense, error) { return density.Build(alpha, nil) },
		"unrestricted": func() (*mat.SymDense, error) { return density.Build(alpha, beta) },
	} {
		t.Run(name, func(t *testing.T) {
			dm, err := dmFn()
			require.NoError(t, err)
			n := dm.SymmetricDim()
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					assert.Equal(t, dm.At(i, j), dm.At(j, i))
				}
			}
		})
	}
}

func TestBuildDoesNotMutate(t *testing.T) {
	rec := testutil.WaterCation()
	before := rec.Clone()
	_, err := density.FromRecord(rec)
	require.NoError(t, err)
	assert.True(t, mat.Equal(before.Alpha.Coefficients, rec.Alpha.Coefficients))
	assert.Equal(t, before.Beta.Occupations, rec.Beta.Occupations)
}

func TestBuildShapeErrors(t *testing.T) {
	good := testutil.Water().Alpha
	for name, tc := range map[string]struct {
		alpha, beta *wfn.OrbitalSet
	}{
		"no alpha": {alpha: nil, beta: good},
		"occupations": {alpha: &wfn.OrbitalSet{
			Coefficients: good.Coefficients,
			Energies:     good.Energies,
			Occupations:  []float64{1},
		}},
		"beta nbasis": {alpha: good, beta: &wfn.OrbitalSet{
			Coefficients: testutil.Eye(3),
			Energies:     []float64{0, 0, 0},
			Occupations:  []float64{1, 0, 0},
		}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := density.Build(tc.alpha, tc.beta)
			assert.ErrorIs(t, err, qcerr.ErrShape)
		})
	}
}

func TestSpin(t *testing.T) {
	rec := testutil.WaterCation()
	spin, err := density.Spin(rec.Alpha, rec.Beta)
	require.NoError(t, err)

	var want mat.Dense
	want.Sub(reference(rec.Alpha), reference(rec.Beta))
	assert.True(t, mat.EqualApprox(spin, &want, 1e-12))

	// one unpaired electron in an orthonormal basis
	s, _ := rec.Operator(wfn.OpOverlap)
	var ps mat.Dense
	ps.Mul(spin, s)
	assert.InDelta(t, 1.0, mat.Trace(&ps), 1e-10)

	restricted, err := density.Spin(rec.Alpha, nil)
	require.NoError(t, err)
	assert.Zero(t, mat.Norm(restricted, 1))
}
