// report.go --  This file is part of goHF project.
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
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"example.com/gohf/internal/linalg"
)

const banner = "\n              __  __  ____      |\n             /\\ \\/\\ \\/\\  __\\    |" +
	" gohf-pop: population analysis\n   __     ___\\ \\ \\_\\ \\ \\ \\_/    | Author: Mirzaeva Irina Valerievna\n" +
	" /'_ `\\  / __`\\ \\  _  \\ \\  _\\   | Nikolaev Institute of Inorganic Chemistry SB RAS" +
	" (http://niic.nsc.ru/)\n/\\ \\L\\ \\/\\ \\L\\ \\ \\ \\ \\ \\ \\ \\/   | Novosibirsk, Russia" +
	"\n\\ \\____ \\ \\____/\\ \\_\\ \\_\\ \\_\\   | HF stands for Himicheskaya Fizika\n \\/___L\\" +
	" \\/___/  \\/_/\\/_/\\/_/   | Have Fun!!!\n   /\\____/                      |\n   \\_/__/                       |\n"

// report writes to the command output and keeps the first write error.
type report struct {
	w         io.Writer
	precision int
	err       error
}

func (a *app) report(cmd *cobra.Command) *report {
	return &report{w: cmd.OutOrStdout(), precision: a.cfg.Output.Precision}
}

func (r *report) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *report) header(title string) {
	r.printf("%s\n", banner)
	r.delimiter()
	r.printf("%s\n", title)
}

func (r *report) delimiter() {
	r.printf("%s\n", strings.Repeat("-", 70))
}

func (r *report) number(v float64) string {
	return fmt.Sprintf("%.*f", r.precision, v)
}

func (r *report) matrix(m mat.Matrix) {
	if r.err != nil {
		return
	}
	r.err = linalg.Fprint(r.w, m, r.precision)
}
