// record_test.go --  This file is part of goHF project.
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
package wfn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"example.com/gohf/internal/testutil"
	"example.com/gohf/qcerr"
	"example.com/gohf/wfn"
)

func TestOperatorKeys(t *testing.T) {
	keys := wfn.OperatorKeys()
	require.Len(t, keys, 14)
	assert.Equal(t, wfn.OpOverlap, keys[0])
	assert.Equal(t, wfn.DMSpinSCF, keys[len(keys)-1])
	for _, k := range keys {
		assert.True(t, k.Valid(), string(k))
	}
	assert.False(t, wfn.OperatorKey("dm_full_dft").Valid())

	// callers get their own copy
	keys[0] = "bogus"
	assert.Equal(t, wfn.OpOverlap, wfn.OperatorKeys()[0])
}

func TestRecordValidate(t *testing.T) {
	require.NoError(t, testutil.MinimalWater().Validate())
	require.NoError(t, testutil.Water().Validate())
	require.NoError(t, testutil.WaterCation().Validate())
}

func TestRecordValidateShapeErrors(t *testing.T) {
	for name, tc := range map[string]struct {
		mutate func(r *wfn.Record)
		what   string
	}{
		"coordinates": {
			mutate: func(r *wfn.Record) { r.Coordinates = r.Coordinates[:2] },
			what:   "atomic_coordinates",
		},
		"pseudo numbers": {
			mutate: func(r *wfn.Record) { r.PseudoNumbers = []float64{1, 8} },
			what:   "pseudo_numbers",
		},
		"shell map length": {
			mutate: func(r *wfn.Record) { r.Basis.ShellMap = []int{0, 1} },
			what:   "basis shell_map",
		},
		"shell map index": {
			mutate: func(r *wfn.Record) { r.Basis.ShellMap = []int{0, 1, 3} },
			what:   "basis shell_map atom index bound",
		},
		"centers": {
			mutate: func(r *wfn.Record) { r.Basis.Centers = r.Basis.Centers[:1] },
			what:   "basis centers",
		},
		"nbasis": {
			mutate: func(r *wfn.Record) { r.Basis.ShellTypes = []int{0, 1, 0} },
			what:   "basis functions",
		},
		"occupations": {
			mutate: func(r *wfn.Record) { r.Alpha.Occupations = []float64{2, 0} },
			what:   "occupations",
		},
		"energies": {
			mutate: func(r *wfn.Record) { r.Alpha.Energies = nil },
			what:   "energies",
		},
		"beta without alpha": {
			mutate: func(r *wfn.Record) { r.Beta, r.Alpha = r.Alpha, nil },
			what:   "orb_alpha sets",
		},
		"beta nbasis": {
			mutate: func(r *wfn.Record) {
				r.Beta = &wfn.OrbitalSet{
					Coefficients: testutil.Eye(2),
					Energies:     []float64{0, 0},
					Occupations:  []float64{1, 0},
				}
			},
			what: "orb_beta basis functions",
		},
	} {
		t.Run(name, func(t *testing.T) {
			rec := testutil.MinimalWater()
			tc.mutate(rec)
			err := rec.Validate()
			require.ErrorIs(t, err, qcerr.ErrShape)
			var shapeErr *qcerr.ShapeError
			require.ErrorAs(t, err, &shapeErr)
			assert.Equal(t, tc.what, shapeErr.What)
		})
	}
}

func TestRecordOperator(t *testing.T) {
	rec := testutil.MinimalWater()
	_, ok := rec.Operator(wfn.OpOverlap)
	assert.False(t, ok)

	rec.SetOperator(wfn.OpKinetic, nil)
	_, ok = rec.Operator(wfn.OpKinetic)
	assert.False(t, ok, "nil matrix counts as absent")

	rec.SetOperator(wfn.OpOverlap, testutil.Eye(3))
	m, ok := rec.Operator(wfn.OpOverlap)
	require.True(t, ok)
	assert.True(t, mat.Equal(m, testutil.Eye(3)))
}

func TestRecordClone(t *testing.T) {
	rec := testutil.WaterCation()
	c := rec.Clone()
	require.NoError(t, c.Validate())

	c.Numbers[0] = 2
	c.Coordinates[0][0] = 99
	c.Basis.ShellTypes[0] = 2
	c.Alpha.Coefficients.Set(0, 0, 42)
	c.Beta.Occupations[0] = 0
	olp, _ := c.Operator(wfn.OpOverlap)
	olp.Set(0, 0, -1)

	assert.Equal(t, 1, rec.Numbers[0])
	assert.Equal(t, 1.4305, rec.Coordinates[0][0])
	assert.Equal(t, 0, rec.Basis.ShellTypes[0])
	assert.NotEqual(t, 42.0, rec.Alpha.Coefficients.At(0, 0))
	assert.Equal(t, 1.0, rec.Beta.Occupations[0])
	orig, _ := rec.Operator(wfn.OpOverlap)
	assert.Equal(t, 1.0, orig.At(0, 0))
}

func TestOrbitalSetDims(t *testing.T) {
	o := &wfn.OrbitalSet{Coefficients: mat.NewDense(4, 2, nil)}
	assert.Equal(t, 4, o.NBasis())
	assert.Equal(t, 2, o.NOrb())

	empty := &wfn.OrbitalSet{}
	assert.Equal(t, 0, empty.NBasis())
	assert.ErrorIs(t, empty.Validate("test"), qcerr.ErrShape)
}

func TestElements(t *testing.T) {
	assert.Equal(t, "O", wfn.Symbol(8))
	assert.Equal(t, "X", wfn.Symbol(200))
	assert.Equal(t, "O2", wfn.AtomLabel(8, 1))
	assert.Equal(t, "Oxygen", wfn.ElementName(8))

	z, ok := wfn.AtomicNumber("cl")
	require.True(t, ok)
	assert.Equal(t, 17, z)
	_, ok = wfn.AtomicNumber("Qq")
	assert.False(t, ok)
	_, ok = wfn.AtomicNumber("X")
	assert.False(t, ok)
}
