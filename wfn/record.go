// record.go --  This file is part of goHF project.
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
package wfn

import (
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/mat"

	"example.com/gohf/basis"
	"example.com/gohf/qcerr"
)

// OperatorKey names a matrix stored alongside a record.
type OperatorKey string

const (
	OpOverlap           OperatorKey = "olp"
	OpKinetic           OperatorKey = "kin"
	OpNuclearAttraction OperatorKey = "na"
	OpTwoElectron       OperatorKey = "er" // stored flattened, nbasis^2 x nbasis^2

	DMFullMP2 OperatorKey = "dm_full_mp2"
	DMSpinMP2 OperatorKey = "dm_spin_mp2"
	DMFullMP3 OperatorKey = "dm_full_mp3"
	DMSpinMP3 OperatorKey = "dm_spin_mp3"
	DMFullCI  OperatorKey = "dm_full_ci"
	DMSpinCI  OperatorKey = "dm_spin_ci"
	DMFullCC  OperatorKey = "dm_full_cc"
	DMSpinCC  OperatorKey = "dm_spin_cc"
	DMFullSCF OperatorKey = "dm_full_scf"
	DMSpinSCF OperatorKey = "dm_spin_scf"
)

var operatorKeys = []OperatorKey{
	OpOverlap, OpKinetic, OpNuclearAttraction, OpTwoElectron,
	DMFullMP2, DMSpinMP2, DMFullMP3, DMSpinMP3,
	DMFullCI, DMSpinCI, DMFullCC, DMSpinCC,
	DMFullSCF, DMSpinSCF,
}

// OperatorKeys returns the operator vocabulary in comparison order.
func OperatorKeys() []OperatorKey {
	return slices.Clone(operatorKeys)
}

func (k OperatorKey) Valid() bool {
	return slices.Contains(operatorKeys, k)
}

// Basis describes a contracted Gaussian basis shell by shell.
type Basis struct {
	Centers    [][3]float64 // one per atom
	ShellMap   []int        // atom index of every shell
	NPrims     []int        // primitives per shell
	ShellTypes []int        // see basis.ShellNBasis
	Alphas     []float64    // exponents, all shells concatenated
	ConCoeffs  []float64    // contraction coefficients, same layout as Alphas
}

func (b *Basis) NShell() int { return len(b.ShellTypes) }

func (b *Basis) NBasis() int { return basis.NBasis(b.ShellTypes) }

// OrbitalSet holds the molecular orbitals of one spin channel.
// Coefficients is nbasis x norb, one orbital per column.
type OrbitalSet struct {
	Coefficients *mat.Dense
	Energies     []float64
	Occupations  []float64
}

func (o *OrbitalSet) NBasis() int {
	if o.Coefficients == nil {
		return 0
	}
	r, _ := o.Coefficients.Dims()
	return r
}

func (o *OrbitalSet) NOrb() int {
	if o.Coefficients == nil {
		return 0
	}
	_, c := o.Coefficients.Dims()
	return c
}

// Validate checks that coefficients, energies and occupations agree.
func (o *OrbitalSet) Validate(op string) error {
	if o.Coefficients == nil {
		return qcerr.Shape(op, "orbital coefficient matrices", 1, 0)
	}
	norb := o.NOrb()
	if len(o.Occupations) != norb {
		return qcerr.Shape(op, "occupations", norb, len(o.Occupations))
	}
	if len(o.Energies) != norb {
		return qcerr.Shape(op, "energies", norb, len(o.Energies))
	}
	return nil
}

// Record is the computed electronic structure of one molecule. Every
// analysis in this module treats it as read-only. A nil Basis, Beta or
// operator means the quantity is absent; a nil Beta selects the
// restricted convention.
type Record struct {
	Title         string
	Numbers       []int
	Coordinates   [][3]float64 // bohr
	PseudoNumbers []float64
	Basis         *Basis
	Alpha         *OrbitalSet
	Beta          *OrbitalSet
	Operators     map[OperatorKey]*mat.Dense
}

func (r *Record) NAtom() int { return len(r.Numbers) }

// Operator returns the stored matrix for key and whether it is present.
func (r *Record) Operator(key OperatorKey) (*mat.Dense, bool) {
	m, ok := r.Operators[key]
	if !ok || m == nil {
		return nil, false
	}
	return m, true
}

// SetOperator stores m under key, allocating the operator map if needed.
func (r *Record) SetOperator(key OperatorKey, m *mat.Dense) {
	if r.Operators == nil {
		r.Operators = make(map[OperatorKey]*mat.Dense)
	}
	r.Operators[key] = m
}

// Validate checks the dimensional invariants between the parts of r.
func (r *Record) Validate() error {
	const op = "wfn: record"
	natom := r.NAtom()
	if len(r.Coordinates) != natom {
		return qcerr.Shape(op, "atomic_coordinates", natom, len(r.Coordinates))
	}
	if len(r.PseudoNumbers) != natom {
		return qcerr.Shape(op, "pseudo_numbers", natom, len(r.PseudoNumbers))
	}
	if b := r.Basis; b != nil {
		if len(b.ShellMap) != len(b.ShellTypes) {
			return qcerr.Shape(op, "basis shell_map", len(b.ShellTypes), len(b.ShellMap))
		}
		for _, atom := range b.ShellMap {
			if atom < 0 || atom >= natom {
				return qcerr.Shape(op, "basis shell_map atom index bound", natom, atom)
			}
		}
		if len(b.Centers) > 0 && len(b.Centers) != natom {
			return qcerr.Shape(op, "basis centers", natom, len(b.Centers))
		}
		if len(b.NPrims) > 0 {
			if len(b.NPrims) != b.NShell() {
				return qcerr.Shape(op, "basis nprims", b.NShell(), len(b.NPrims))
			}
			nprim := 0
			for _, n := range b.NPrims {
				nprim += n
			}
			if len(b.Alphas) != nprim {
				return qcerr.Shape(op, "basis alphas", nprim, len(b.Alphas))
			}
			if len(b.ConCoeffs) != nprim {
				return qcerr.Shape(op, "basis con_coeffs", nprim, len(b.ConCoeffs))
			}
		}
	}
	if r.Alpha == nil {
		if r.Beta != nil {
			return qcerr.Shape(op, "orb_alpha sets", 1, 0)
		}
		return nil
	}
	if err := r.Alpha.Validate(op + " orb_alpha"); err != nil {
		return err
	}
	nbasis := r.Alpha.NBasis()
	if r.Basis != nil && r.Basis.NBasis() != nbasis {
		return qcerr.Shape(op, "basis functions", nbasis, r.Basis.NBasis())
	}
	if r.Beta != nil {
		if err := r.Beta.Validate(op + " orb_beta"); err != nil {
			return err
		}
		if r.Beta.NBasis() != nbasis {
			return qcerr.Shape(op, "orb_beta basis functions", nbasis, r.Beta.NBasis())
		}
	}
	return nil
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	c := &Record{
		Title:         r.Title,
		Numbers:       slices.Clone(r.Numbers),
		Coordinates:   slices.Clone(r.Coordinates),
		PseudoNumbers: slices.Clone(r.PseudoNumbers),
		Alpha:         r.Alpha.clone(),
		Beta:          r.Beta.clone(),
	}
	if b := r.Basis; b != nil {
		c.Basis = &Basis{
			Centers:    slices.Clone(b.Centers),
			ShellMap:   slices.Clone(b.ShellMap),
			NPrims:     slices.Clone(b.NPrims),
			ShellTypes: slices.Clone(b.ShellTypes),
			Alphas:     slices.Clone(b.Alphas),
			ConCoeffs:  slices.Clone(b.ConCoeffs),
		}
	}
	for k, m := range r.Operators {
		if m != nil {
			c.SetOperator(k, mat.DenseCopyOf(m))
		}
	}
	return c
}

func (o *OrbitalSet) clone() *OrbitalSet {
	if o == nil {
		return nil
	}
	c := &OrbitalSet{
		Energies:    slices.Clone(o.Energies),
		Occupations: slices.Clone(o.Occupations),
	}
	if o.Coefficients != nil {
		c.Coefficients = mat.DenseCopyOf(o.Coefficients)
	}
	return c
}
