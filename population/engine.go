// engine.go --  This file is part of goHF project.
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
package population

import (
	"gonum.org/v1/gonum/mat"

	"example.com/gohf/qcerr"
	"example.com/gohf/wfn"
)

// OverlapEngine computes the atomic-orbital overlap matrix of a basis.
// Integral evaluation lives outside this module.
type OverlapEngine interface {
	Overlap(b *wfn.Basis) (mat.Matrix, error)
}

// Precomputed serves an overlap matrix that was computed elsewhere.
type Precomputed struct {
	S mat.Matrix
}

// Overlap returns p.S after checking it against the size of b.
func (p Precomputed) Overlap(b *wfn.Basis) (mat.Matrix, error) {
	const op = "precomputed overlap"
	if b == nil {
		return nil, qcerr.Shape(op, "basis descriptors", 1, 0)
	}
	if p.S == nil {
		return nil, qcerr.Shape(op, "overlap matrices", 1, 0)
	}
	n := b.NBasis()
	if r, c := p.S.Dims(); r != n || c != n {
		if r != n {
			return nil, qcerr.Shape(op, "overlap rows", n, r)
		}
		return nil, qcerr.Shape(op, "overlap columns", n, c)
	}
	return p.S, nil
}

// RecordOverlap returns an engine serving the overlap operator stored
// on rec.
func RecordOverlap(rec *wfn.Record) (Precomputed, error) {
	s, ok := rec.Operator(wfn.OpOverlap)
	if !ok {
		return Precomputed{}, qcerr.Shape("record overlap", "olp operators", 1, 0)
	}
	return Precomputed{S: s}, nil
}
