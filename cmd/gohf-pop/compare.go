// compare.go --  This file is part of goHF project.
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
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"example.com/gohf/compare"
	"example.com/gohf/qcerr"
	"example.com/gohf/wfn"
)

// errRecordsDiffer makes compare exit non-zero without an error message,
// the way diff does.
var errRecordsDiffer = errors.New("records differ")

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Report the first field in which two records differ",
		Long: `Compare two records field by field: basis data within 1e-8, all other
fields exactly. Prints "identical", or the name of the first differing
field and exits with status 1.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ra, rb *wfn.Record
			var g errgroup.Group
			g.Go(func() (err error) {
				ra, err = a.load(args[0])
				return err
			})
			g.Go(func() (err error) {
				rb, err = a.load(args[1])
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			r := a.report(cmd)
			err := compare.Records(ra, rb)
			var mismatch *qcerr.MismatchError
			switch {
			case err == nil:
				r.printf("identical\n")
				return r.err
			case errors.As(err, &mismatch):
				a.log.Info("records differ", zap.Error(err))
				r.printf("%s\n", mismatch.Field)
				if r.err != nil {
					return r.err
				}
				return errRecordsDiffer
			default:
				return err
			}
		},
	}
}
