// basis_test.go --  This file is part of goHF project.
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
package basis_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/gohf/basis"
	"example.com/gohf/qcerr"
)

func TestShellNBasis(t *testing.T) {
	for _, tc := range []struct {
		shellType, want int
	}{
		{0, 1},
		{1, 3},
		{2, 6},
		{3, 10},
		{-1, 3},
		{-2, 5},
		{-3, 7},
		{-4, 9},
	} {
		t.Run(fmt.Sprintf("type%d", tc.shellType), func(t *testing.T) {
			assert.Equal(t, tc.want, basis.ShellNBasis(tc.shellType))
			// same answer on every call
			assert.Equal(t, basis.ShellNBasis(tc.shellType), basis.ShellNBasis(tc.shellType))
		})
	}
}

func TestShellNBasisClosedForm(t *testing.T) {
	for l := 0; l <= 7; l++ {
		assert.Equal(t, (l+1)*(l+2)/2, basis.ShellNBasis(l), "cartesian l=%d", l)
		if l > 0 {
			assert.Equal(t, 2*l+1, basis.ShellNBasis(-l), "pure l=%d", l)
		}
	}
}

func TestNBasis(t *testing.T) {
	// water in 6-31G*: O 1s 2sp 3sp 3d(cart), H 1s 2s each
	shellTypes := []int{0, 0, 0, 0, 1, 0, 1, 2, 0, 0}
	assert.Equal(t, 1+1+1+1+3+1+3+6+1+1, basis.NBasis(shellTypes))
	assert.Equal(t, 0, basis.NBasis(nil))
}

func TestCenters(t *testing.T) {
	shellMap := []int{0, 1, 1, 1, 2}
	shellTypes := []int{0, 0, 0, 1, -2}

	centers, err := basis.Centers(shellMap, shellTypes)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2}, centers)
	assert.Len(t, centers, basis.NBasis(shellTypes))
}

func TestCentersMinimal(t *testing.T) {
	centers, err := basis.Centers([]int{0, 1, 2}, []int{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, centers)
}

func TestCentersLengthMismatch(t *testing.T) {
	_, err := basis.Centers([]int{0, 1}, []int{0})
	require.ErrorIs(t, err, qcerr.ErrShape)

	var shapeErr *qcerr.ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 2, shapeErr.Want)
	assert.Equal(t, 1, shapeErr.Got)
}
