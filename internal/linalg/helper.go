// helper.go --  This file is part of goHF project.
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
package linalg

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/mat"
)

var ErrNotPositive = errors.New("linalg: matrix is not positive definite")

// eigenvalues below this are treated as linear dependence
const minEigenvalue = 1e-10

// flatten packs row slices into row-major storage. ok is false for
// ragged or empty input.
func flatten(arr [][]float64) (res []float64, cols int, ok bool) {
	if len(arr) == 0 || len(arr[0]) == 0 {
		return nil, 0, false
	}
	cols = len(arr[0])
	res = make([]float64, 0, len(arr)*cols)
	for i := range arr {
		if len(arr[i]) != cols {
			return nil, 0, false
		}
		res = append(res, arr[i]...)
	}
	return res, cols, true
}

// FromRows builds a dense matrix from row slices; the rows are copied.
func FromRows(rows [][]float64) (*mat.Dense, bool) {
	data, cols, ok := flatten(rows)
	if !ok {
		return nil, false
	}
	return mat.NewDense(len(rows), cols, data), true
}

// Rows returns a copy of m as row slices.
func Rows(m mat.Matrix) [][]float64 {
	r, _ := m.Dims()
	result := make([][]float64, r)
	for i := range result {
		result[i] = mat.Row(nil, i, m)
	}
	return result
}

// Fprint writes m with the given number of decimals.
func Fprint(w io.Writer, m mat.Matrix, precision int) error {
	fa := mat.Formatted(m, mat.Prefix("    "), mat.Squeeze())
	_, err := fmt.Fprintf(w, "    %.*f\n", precision, fa)
	return err
}

// OrthonormalEigenbasis returns the eigenvectors of the overlap matrix s,
// each scaled by 1/sqrt(eigenvalue), so that the columns are orthonormal
// in the metric s.
func OrthonormalEigenbasis(s mat.Symmetric) (*mat.Dense, error) {
	n := s.SymmetricDim()
	var eigsym mat.EigenSym
	if ok := eigsym.Factorize(s, true); !ok {
		return nil, errors.New("linalg: overlap eigendecomposition failed")
	}
	var ev mat.Dense
	eigsym.VectorsTo(&ev)
	vals := eigsym.Values(nil)
	scale := make([]float64, n)
	for i, v := range vals {
		if v < minEigenvalue {
			return nil, ErrNotPositive
		}
		scale[i] = 1 / math.Sqrt(v)
	}
	ev.Mul(&ev, mat.NewDiagDense(n, scale))
	return &ev, nil
}
