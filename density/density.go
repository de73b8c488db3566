// density.go --  This file is part of goHF project.
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
package density

import (
	"gonum.org/v1/gonum/mat"

	"example.com/gohf/qcerr"
	"example.com/gohf/wfn"
)

// Build returns the one-particle density matrix in the atomic-orbital
// basis. Each channel contributes C·diag(occ)·Cᵗ. Without a beta set the
// alpha contribution is doubled: restricted occupations count each
// spatial orbital once per spin.
func Build(alpha, beta *wfn.OrbitalSet) (*mat.SymDense, error) {
	nbasis, err := checkChannels(alpha, beta)
	if err != nil {
		return nil, err
	}
	result := mat.NewSymDense(nbasis, nil)
	addChannel(result, alpha)
	if beta == nil {
		result.ScaleSym(2, result)
		return result, nil
	}
	addChannel(result, beta)
	return result, nil
}

// Spin returns the spin density matrix Dα − Dβ, which is zero for a
// restricted wavefunction.
func Spin(alpha, beta *wfn.OrbitalSet) (*mat.SymDense, error) {
	nbasis, err := checkChannels(alpha, beta)
	if err != nil {
		return nil, err
	}
	result := mat.NewSymDense(nbasis, nil)
	if beta == nil {
		return result, nil
	}
	da := mat.NewSymDense(nbasis, nil)
	addChannel(da, alpha)
	db := mat.NewSymDense(nbasis, nil)
	addChannel(db, beta)
	for i := 0; i < nbasis; i++ {
		for j := i; j < nbasis; j++ {
			result.SetSym(i, j, da.At(i, j)-db.At(i, j))
		}
	}
	return result, nil
}

// FromRecord builds the density matrix of rec's orbital sets.
func FromRecord(rec *wfn.Record) (*mat.SymDense, error) {
	return Build(rec.Alpha, rec.Beta)
}

// addChannel accumulates one rank-one update per orbital, so dm stays
// symmetric by construction.
func addChannel(dm *mat.SymDense, orbs *wfn.OrbitalSet) {
	for k, occ := range orbs.Occupations {
		dm.SymRankOne(dm, occ, orbs.Coefficients.ColView(k))
	}
}

func checkChannels(alpha, beta *wfn.OrbitalSet) (int, error) {
	const op = "density"
	if alpha == nil {
		return 0, qcerr.Shape(op, "orb_alpha sets", 1, 0)
	}
	if err := alpha.Validate(op + " orb_alpha"); err != nil {
		return 0, err
	}
	nbasis := alpha.NBasis()
	if beta != nil {
		if err := beta.Validate(op + " orb_beta"); err != nil {
			return 0, err
		}
		if beta.NBasis() != nbasis {
			return 0, qcerr.Shape(op, "orb_beta basis functions", nbasis, beta.NBasis())
		}
	}
	return nbasis, nil
}
