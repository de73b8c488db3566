// charges.go --  This file is part of goHF project.
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
	"gonum.org/v1/gonum/floats"

	"example.com/gohf/population"
	"example.com/gohf/wfn"
)

func (a *app) chargesCmd() *cobra.Command {
	var pseudo []float64
	cmd := &cobra.Command{
		Use:   "charges <record>",
		Short: "Mulliken charges of every atom",
		Long: `Compute the Mulliken charge of every atom from the record's orbitals
and its stored overlap operator (olp).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.load(args[0])
			if err != nil {
				return err
			}
			engine, err := population.RecordOverlap(rec)
			if err != nil {
				return err
			}
			opts := []population.Option{population.WithLogger(a.log)}
			if cmd.Flags().Changed("pseudo") {
				opts = append(opts, population.WithPseudoNumbers(pseudo))
			}
			charges, err := population.ChargesFromEngine(rec, engine, opts...)
			if err != nil {
				return err
			}

			r := a.report(cmd)
			r.header("Mulliken charges: " + rec.Title)
			r.printf("%-6s %-12s %16s\n", "atom", "element", "charge")
			for i, q := range charges {
				z := rec.Numbers[i]
				r.printf("%-6s %-12s %16s\n", wfn.AtomLabel(z, i), wfn.ElementName(z), r.number(q))
			}
			r.printf("%-19s %16s\n", "total", r.number(floats.Sum(charges)))
			r.delimiter()
			return r.err
		},
	}
	cmd.Flags().Float64SliceVar(&pseudo, "pseudo", nil, "core charge per atom, overriding the record's pseudo_numbers")
	return cmd
}
