// records_test.go --  This file is part of goHF project.
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
package testutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"example.com/gohf/internal/testutil"
)

func TestOverlapUnitDiagonal(t *testing.T) {
	for _, n := range []int{1, 3, 7, 8} {
		s := testutil.Overlap(n, uint64(n))
		for i := 0; i < n; i++ {
			assert.Equal(t, 1.0, s.At(i, i), "diagonal %d of n=%d", i, n)
			for j := 0; j < n; j++ {
				assert.Less(t, s.At(i, j), 1.0+1e-15)
			}
		}
		var eig mat.EigenSym
		require.True(t, eig.Factorize(s, false))
		for _, v := range eig.Values(nil) {
			assert.Greater(t, v, 0.0)
		}
	}
}

func TestOverlapSeeded(t *testing.T) {
	assert.True(t, mat.Equal(testutil.Overlap(5, 3), testutil.Overlap(5, 3)))
	assert.False(t, mat.Equal(testutil.Overlap(5, 3), testutil.Overlap(5, 4)))
}
