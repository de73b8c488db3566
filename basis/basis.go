// basis.go --  This file is part of goHF project.
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
package basis

import "example.com/gohf/qcerr"

// ShellNBasis returns the number of basis functions in a shell. A
// non-negative type is a Cartesian shell of angular momentum l = t with
// (l+1)(l+2)/2 functions, a negative type a pure shell with 2|t|+1.
func ShellNBasis(shellType int) int {
	if shellType >= 0 {
		return (shellType + 1) * (shellType + 2) / 2
	}
	return -2*shellType + 1
}

// NBasis is the total number of basis functions of the given shells.
func NBasis(shellTypes []int) int {
	n := 0
	for _, t := range shellTypes {
		n += ShellNBasis(t)
	}
	return n
}

// Centers expands the shell-to-atom map into a basis-function-to-atom
// map: shell i contributes ShellNBasis(shellTypes[i]) copies of
// shellMap[i].
func Centers(shellMap, shellTypes []int) ([]int, error) {
	if len(shellMap) != len(shellTypes) {
		return nil, qcerr.Shape("basis centers", "shell_types", len(shellMap), len(shellTypes))
	}
	result := make([]int, 0, NBasis(shellTypes))
	for i, atom := range shellMap {
		for k := 0; k < ShellNBasis(shellTypes[i]); k++ {
			result = append(result, atom)
		}
	}
	return result, nil
}
