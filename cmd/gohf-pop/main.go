// main.go --  This file is part of goHF project.
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
	"fmt"
	"os"

	"example.com/gohf/qcerr"
)

// Exit statuses.
const (
	exitOK         = 0
	exitError      = 1 // also: records differ
	exitShape      = 2
	exitValidation = 3
)

func main() {
	a := newApp()
	err := a.command().Execute()
	a.close()
	if err != nil && !errors.Is(err, errRecordsDiffer) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errRecordsDiffer), qcerr.IsMismatch(err):
		return exitError
	case qcerr.IsShape(err):
		return exitShape
	case qcerr.IsValidation(err):
		return exitValidation
	}
	return exitError
}
