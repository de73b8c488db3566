// elements.go --  This file is part of goHF project.
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
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

type Mendeleev struct {
	Z          []int
	Symb, Name []string
}

// ElemData is indexed so that ElemData.Symb[z] is the symbol of element z.
var ElemData Mendeleev

func init() {
	ElemData.build()
}

const mendeleevCSV = `Z,Symbol,Name
0,X,Ghost
1,H,Hydrogen
2,He,Helium
3,Li,Lithium
4,Be,Beryllium
5,B,Boron
6,C,Carbon
7,N,Nitrogen
8,O,Oxygen
9,F,Fluorine
10,Ne,Neon
11,Na,Sodium
12,Mg,Magnesium
13,Al,Aluminium
14,Si,Silicon
15,P,Phosphorus
16,S,Sulfur
17,Cl,Chlorine
18,Ar,Argon
19,K,Potassium
20,Ca,Calcium
21,Sc,Scandium
22,Ti,Titanium
23,V,Vanadium
24,Cr,Chromium
25,Mn,Manganese
26,Fe,Iron
27,Co,Cobalt
28,Ni,Nickel
29,Cu,Copper
30,Zn,Zinc
31,Ga,Gallium
32,Ge,Germanium
33,As,Arsenic
34,Se,Selenium
35,Br,Bromine
36,Kr,Krypton
37,Rb,Rubidium
38,Sr,Strontium
39,Y,Yttrium
40,Zr,Zirconium
41,Nb,Niobium
42,Mo,Molybdenum
43,Tc,Technetium
44,Ru,Ruthenium
45,Rh,Rhodium
46,Pd,Palladium
47,Ag,Silver
48,Cd,Cadmium
49,In,Indium
50,Sn,Tin
51,Sb,Antimony
52,Te,Tellurium
53,I,Iodine
54,Xe,Xenon`

func (m *Mendeleev) build() {
	for i, str := range strings.Split(mendeleevCSV, "\n") {
		if i == 0 {
			continue
		}
		words := strings.Split(str, ",")
		z, _ := strconv.Atoi(words[0])
		m.Z = append(m.Z, z)
		m.Symb = append(m.Symb, words[1])
		m.Name = append(m.Name, words[2])
	}
}

// Symbol returns the element symbol of z, or "X" outside the table.
func Symbol(z int) string {
	if z < 0 || z >= len(ElemData.Symb) {
		return ElemData.Symb[0]
	}
	return ElemData.Symb[z]
}

// AtomicNumber returns the atomic number of the symbol, matched
// case-insensitively, and false when the symbol is unknown.
func AtomicNumber(symb string) (int, bool) {
	i := slices.IndexFunc(ElemData.Symb, func(s string) bool { return strings.EqualFold(s, symb) })
	if i <= 0 {
		return 0, false
	}
	return ElemData.Z[i], true
}

// AtomLabel names the atom at zero-based index i, e.g. "O2".
func AtomLabel(z, i int) string {
	return Symbol(z) + strconv.Itoa(i+1)
}

// ElementName returns the English name of element z.
func ElementName(z int) string {
	if z < 0 || z >= len(ElemData.Name) {
		return ElemData.Name[0]
	}
	return ElemData.Name[z]
}
