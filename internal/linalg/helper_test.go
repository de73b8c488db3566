// helper_test.go --  This file is part of goHF project.
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
package linalg_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"example.com/gohf/internal/linalg"
)

func TestFromRows(t *testing.T) {
	m, ok := linalg.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.True(t, ok)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6.0, m.At(1, 2))

	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, linalg.Rows(m))
}

func TestFromRowsRejectsBadInput(t *testing.T) {
	for name, rows := range map[string][][]float64{
		"nil":    nil,
		"empty":  {{}},
		"ragged": {{1, 2}, {3}},
	} {
		t.Run(name, func(t *testing.T) {
			_, ok := linalg.FromRows(rows)
			assert.False(t, ok)
		})
	}
}

func TestFromRowsCopies(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m, ok := linalg.FromRows(rows)
	require.True(t, ok)
	rows[0][0] = 100
	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, linalg.Fprint(&buf, mat.NewDense(2, 2, []float64{1, 0, 0, 0.5}), 3))
	assert.Contains(t, buf.String(), "1.000")
	assert.Contains(t, buf.String(), "0.500")
}

func TestOrthonormalEigenbasis(t *testing.T) {
	s := mat.NewSymDense(3, []float64{
		1.0, 0.2, 0.1,
		0.2, 1.0, 0.3,
		0.1, 0.3, 1.0,
	})
	c, err := linalg.OrthonormalEigenbasis(s)
	require.NoError(t, err)

	var tmp, smo mat.Dense
	tmp.Mul(s, c)
	smo.Mul(c.T(), &tmp)
	assert.True(t, mat.EqualApprox(&smo, eye(3), 1e-12))
}

func TestOrthonormalEigenbasisSingular(t *testing.T) {
	s := mat.NewSymDense(2, []float64{1, 1, 1, 1})
	_, err := linalg.OrthonormalEigenbasis(s)
	assert.ErrorIs(t, err, linalg.ErrNotPositive)
}

func eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}
