// mulliken.go --  This file is part of goHF project.
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
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"example.com/gohf/basis"
	"example.com/gohf/density"
	"example.com/gohf/qcerr"
	"example.com/gohf/wfn"
)

// Option configures MullikenCharges.
type Option func(*options)

type options struct {
	pseudo []float64
	log    *zap.Logger
}

// WithPseudoNumbers replaces the record's core charges.
func WithPseudoNumbers(p []float64) Option {
	return func(o *options) { o.pseudo = p }
}

// WithLogger reports per-atom populations at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func gatherOptions(opts []Option) options {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// MullikenCharges returns the net Mulliken charge of every atom of rec:
// the core charge minus the electrons assigned to the atom's basis
// functions. overlap is the nbasis x nbasis atomic-orbital overlap.
func MullikenCharges(rec *wfn.Record, overlap mat.Matrix, opts ...Option) ([]float64, error) {
	const op = "mulliken"
	o := gatherOptions(opts)

	natom := rec.NAtom()
	pseudo := rec.PseudoNumbers
	if o.pseudo != nil {
		pseudo = o.pseudo
	}
	if len(pseudo) != natom {
		return nil, qcerr.Shape(op, "pseudo_numbers", natom, len(pseudo))
	}
	if rec.Basis == nil {
		return nil, qcerr.Shape(op, "basis descriptors", 1, 0)
	}
	if rec.Alpha == nil {
		return nil, qcerr.Shape(op, "orb_alpha sets", 1, 0)
	}
	centers, err := basis.Centers(rec.Basis.ShellMap, rec.Basis.ShellTypes)
	if err != nil {
		return nil, err
	}
	nbasis := rec.Alpha.NBasis()
	if len(centers) != nbasis {
		return nil, qcerr.Shape(op, "basis functions", nbasis, len(centers))
	}
	for _, atom := range centers {
		if atom < 0 || atom >= natom {
			return nil, qcerr.Shape(op, "basis center atom index bound", natom, atom)
		}
	}
	if r, c := overlap.Dims(); r != nbasis || c != nbasis {
		if r != nbasis {
			return nil, qcerr.Shape(op, "overlap rows", nbasis, r)
		}
		return nil, qcerr.Shape(op, "overlap columns", nbasis, c)
	}

	dm, err := density.Build(rec.Alpha, rec.Beta)
	if err != nil {
		return nil, err
	}
	bp, err := BasisPopulations(dm, overlap)
	if err != nil {
		return nil, err
	}
	pop, err := AtomPopulations(bp, centers, natom)
	if err != nil {
		return nil, err
	}

	charges := make([]float64, natom)
	floats.SubTo(charges, pseudo, pop)
	for i := range charges {
		o.log.Debug("mulliken population",
			zap.String("atom", wfn.AtomLabel(rec.Numbers[i], i)),
			zap.Float64("core", pseudo[i]),
			zap.Float64("population", pop[i]),
			zap.Float64("charge", charges[i]))
	}
	return charges, nil
}

// ChargesFromEngine computes the overlap of rec's basis with engine and
// then the Mulliken charges.
func ChargesFromEngine(rec *wfn.Record, engine OverlapEngine, opts ...Option) ([]float64, error) {
	if rec.Basis == nil {
		return nil, qcerr.Shape("mulliken", "basis descriptors", 1, 0)
	}
	s, err := engine.Overlap(rec.Basis)
	if err != nil {
		return nil, err
	}
	return MullikenCharges(rec, s, opts...)
}

// BasisPopulations returns the Mulliken population of every basis
// function, the row sums of the elementwise product of dm and overlap.
func BasisPopulations(dm, overlap mat.Matrix) ([]float64, error) {
	const op = "basis populations"
	n, c := dm.Dims()
	if n != c {
		return nil, qcerr.Shape(op, "density matrix columns", n, c)
	}
	if r, c := overlap.Dims(); r != n || c != n {
		if r != n {
			return nil, qcerr.Shape(op, "overlap rows", n, r)
		}
		return nil, qcerr.Shape(op, "overlap columns", n, c)
	}
	prod := mat.NewDense(n, n, nil)
	prod.MulElem(dm, overlap)
	result := make([]float64, n)
	for i := range result {
		result[i] = floats.Sum(prod.RawRowView(i))
	}
	return result, nil
}

// AtomPopulations sums basis-function populations per owning atom.
func AtomPopulations(bp []float64, centers []int, natom int) ([]float64, error) {
	const op = "atom populations"
	if len(centers) != len(bp) {
		return nil, qcerr.Shape(op, "basis centers", len(bp), len(centers))
	}
	result := make([]float64, natom)
	for i, a := range centers {
		if a < 0 || a >= natom {
			return nil, qcerr.Shape(op, "basis center atom index bound", natom, a)
		}
		result[a] += bp[i]
	}
	return result, nil
}
