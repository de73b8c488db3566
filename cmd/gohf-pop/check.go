// check.go --  This file is part of goHF project.
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
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"example.com/gohf/orbcheck"
	"example.com/gohf/wfn"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <record>",
		Short: "Check that the orbitals are orthonormal and normalized",
		Long: `Check the alpha and, when present, beta orbitals of a record against
its stored overlap operator. Tolerances come from check.orthonormal_tol
and check.normalization_tol.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.load(args[0])
			if err != nil {
				return err
			}
			s, err := overlap(rec)
			if err != nil {
				return err
			}

			r := a.report(cmd)
			r.header("Orbital check: " + rec.Title)
			for _, ch := range []struct {
				name string
				orbs *wfn.OrbitalSet
			}{
				{"orb_alpha", rec.Alpha},
				{"orb_beta", rec.Beta},
			} {
				if ch.orbs == nil || ch.orbs.Coefficients == nil {
					continue
				}
				dev, err := orbcheck.Deviation(ch.orbs.Coefficients, s)
				if err != nil {
					return fmt.Errorf("%s: %w", ch.name, err)
				}
				r.printf("%-10s max |C'SC - I| = %.3e   rms = %.3e\n", ch.name, dev.MaxAbs, dev.RMS)
			}

			if err := orbcheck.CheckRecord(rec, s, a.cfg.Check); err != nil {
				a.log.Warn("orbital check failed", zap.Error(err))
				r.printf("FAILED: %v\n", err)
				r.delimiter()
				return err
			}
			r.printf("passed (orthonormal tol %g, normalization tol %g)\n",
				a.cfg.Check.Orthonormal, a.cfg.Check.Normalization)
			r.delimiter()
			return r.err
		},
	}
}
