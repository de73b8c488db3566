// errors.go --  This file is part of goHF project.
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
package qcerr

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sentinels for errors.Is. The typed errors below match their sentinel.
var (
	ErrShape      = errors.New("qcerr: shape mismatch")
	ErrValidation = errors.New("qcerr: orbital validation failed")
	ErrMismatch   = errors.New("qcerr: records differ")
)

// ShapeError reports two dimensions that were expected to agree.
type ShapeError struct {
	Op   string // operation that detected the mismatch
	What string // quantity whose size is wrong
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s: want %d, got %d", e.Op, e.What, e.Want, e.Got)
}

func (e *ShapeError) Is(target error) bool { return target == ErrShape }

// Shape is a shorthand constructor for *ShapeError.
func Shape(op, what string, want, got int) *ShapeError {
	return &ShapeError{Op: op, What: what, Want: want, Got: got}
}

// ValidationError reports a physical invariant of an orbital set that is
// violated beyond the tolerance. Col is -1 for per-orbital checks, in
// which case Row is the orbital index.
type ValidationError struct {
	Check     string
	Row, Col  int
	Value     float64
	Expected  float64
	Tolerance float64
}

func (e *ValidationError) Error() string {
	if e.Col < 0 {
		return fmt.Sprintf("%s: orbital %d: got %.10g, want %g (tolerance %g)",
			e.Check, e.Row, e.Value, e.Expected, e.Tolerance)
	}
	return fmt.Sprintf("%s: element [%d,%d]: got %.10g, want %g (tolerance %g)",
		e.Check, e.Row, e.Col, e.Value, e.Expected, e.Tolerance)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// MismatchError names the first field in which two records differ.
type MismatchError struct {
	Field string
	A, B  any
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("records differ in %s: %s != %s", e.Field, summarize(e.A), summarize(e.B))
}

func (e *MismatchError) Is(target error) bool { return target == ErrMismatch }

// Mismatch is a shorthand constructor for *MismatchError.
func Mismatch(field string, a, b any) *MismatchError {
	return &MismatchError{Field: field, A: a, B: b}
}

// summarize keeps error strings short when the values are whole arrays.
func summarize(v any) string {
	switch x := v.(type) {
	case nil:
		return "<absent>"
	case string:
		return fmt.Sprintf("%q", x)
	case mat.Matrix:
		if m, ok := x.(*mat.Dense); ok && m == nil {
			return "<absent>"
		}
		r, c := x.Dims()
		return fmt.Sprintf("<%dx%d matrix>", r, c)
	case []float64:
		if len(x) > 6 {
			return fmt.Sprintf("<%d values>", len(x))
		}
	case []int:
		if len(x) > 6 {
			return fmt.Sprintf("<%d values>", len(x))
		}
	case [][3]float64:
		if len(x) > 2 {
			return fmt.Sprintf("<%d points>", len(x))
		}
	case bool:
		if x {
			return "<present>"
		}
		return "<absent>"
	}
	return fmt.Sprintf("%v", v)
}

func IsShape(err error) bool { return errors.Is(err, ErrShape) }

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

func IsMismatch(err error) bool { return errors.Is(err, ErrMismatch) }
