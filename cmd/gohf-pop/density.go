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
package main

import (
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"example.com/gohf/density"
	"example.com/gohf/wfn"
)

func (a *app) densityCmd() *cobra.Command {
	var spin bool
	cmd := &cobra.Command{
		Use:   "density <record>",
		Short: "Print the total or spin density matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.load(args[0])
			if err != nil {
				return err
			}
			title := "Total density matrix: " + rec.Title
			build := density.Build
			if spin {
				title = "Spin density matrix: " + rec.Title
				build = density.Spin
			}
			dm, err := build(rec.Alpha, rec.Beta)
			if err != nil {
				return err
			}

			r := a.report(cmd)
			r.header(title)
			r.matrix(dm)
			if _, ok := rec.Operator(wfn.OpOverlap); ok {
				s, err := overlap(rec)
				if err != nil {
					return err
				}
				var ds mat.Dense
				ds.Mul(dm, s)
				label := "electrons"
				if spin {
					label = "unpaired electrons"
				}
				r.printf("%s: %s\n", label, r.number(mat.Trace(&ds)))
			}
			r.delimiter()
			return r.err
		},
	}
	cmd.Flags().BoolVar(&spin, "spin", false, "print the spin density Dα - Dβ")
	return cmd
}
