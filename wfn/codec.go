// codec.go --  This file is part of goHF project.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"example.com/gohf/internal/linalg"
	"example.com/gohf/qcerr"
)

// Format selects a record codec.
type Format int

const (
	FormatYAML Format = iota
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatMsgpack:
		return "msgpack"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf picks the codec from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".msgpack", ".mpk":
		return FormatMsgpack, nil
	}
	return 0, fmt.Errorf("wfn: no record format for %q", path)
}

type recordDoc struct {
	Title         string                 `yaml:"title" msgpack:"title"`
	Numbers       []int                  `yaml:"atomic_numbers,omitempty,flow" msgpack:"atomic_numbers,omitempty"`
	Symbols       []string               `yaml:"symbols,omitempty,flow" msgpack:"symbols,omitempty"`
	Coordinates   [][]float64            `yaml:"atomic_coordinates,flow" msgpack:"atomic_coordinates"`
	PseudoNumbers []float64              `yaml:"pseudo_numbers,omitempty,flow" msgpack:"pseudo_numbers,omitempty"`
	Basis         *basisDoc              `yaml:"basis,omitempty" msgpack:"basis,omitempty"`
	Alpha         *orbitalDoc            `yaml:"orb_alpha,omitempty" msgpack:"orb_alpha,omitempty"`
	Beta          *orbitalDoc            `yaml:"orb_beta,omitempty" msgpack:"orb_beta,omitempty"`
	Operators     map[string][][]float64 `yaml:"operators,omitempty" msgpack:"operators,omitempty"`
}

type basisDoc struct {
	Centers    [][]float64 `yaml:"centers,omitempty,flow" msgpack:"centers,omitempty"`
	ShellMap   []int       `yaml:"shell_map,flow" msgpack:"shell_map"`
	NPrims     []int       `yaml:"nprims,omitempty,flow" msgpack:"nprims,omitempty"`
	ShellTypes []int       `yaml:"shell_types,flow" msgpack:"shell_types"`
	Alphas     []float64   `yaml:"alphas,omitempty,flow" msgpack:"alphas,omitempty"`
	ConCoeffs  []float64   `yaml:"con_coeffs,omitempty,flow" msgpack:"con_coeffs,omitempty"`
}

type orbitalDoc struct {
	Coefficients [][]float64 `yaml:"coefficients,flow" msgpack:"coefficients"`
	Energies     []float64   `yaml:"energies,flow" msgpack:"energies"`
	Occupations  []float64   `yaml:"occupations,flow" msgpack:"occupations"`
}

// ReadYAML decodes and validates a record.
func ReadYAML(r io.Reader) (*Record, error) {
	var doc recordDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("wfn: decode yaml: %w", err)
	}
	return doc.record()
}

// WriteYAML encodes rec as a YAML document.
func WriteYAML(w io.Writer, rec *Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newRecordDoc(rec)); err != nil {
		return fmt.Errorf("wfn: encode yaml: %w", err)
	}
	return enc.Close()
}

// ReadMsgpack decodes and validates a record.
func ReadMsgpack(r io.Reader) (*Record, error) {
	var doc recordDoc
	if err := msgpack.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("wfn: decode msgpack: %w", err)
	}
	return doc.record()
}

// WriteMsgpack encodes rec with the same document layout as WriteYAML.
func WriteMsgpack(w io.Writer, rec *Record) error {
	if err := msgpack.NewEncoder(w).Encode(newRecordDoc(rec)); err != nil {
		return fmt.Errorf("wfn: encode msgpack: %w", err)
	}
	return nil
}

// Read decodes a record in the given format.
func Read(r io.Reader, f Format) (*Record, error) {
	switch f {
	case FormatYAML:
		return ReadYAML(r)
	case FormatMsgpack:
		return ReadMsgpack(r)
	}
	return nil, fmt.Errorf("wfn: unsupported format %v", f)
}

// Write encodes a record in the given format.
func Write(w io.Writer, rec *Record, f Format) error {
	switch f {
	case FormatYAML:
		return WriteYAML(w, rec)
	case FormatMsgpack:
		return WriteMsgpack(w, rec)
	}
	return fmt.Errorf("wfn: unsupported format %v", f)
}

// Load reads the record file at path; the format follows the extension.
func Load(path string) (*Record, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	rec, err := Read(bufio.NewReader(file), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// Save writes rec to path; the format follows the extension.
func Save(path string, rec *Record) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(file)
	if err := Write(w, rec, f); err != nil {
		file.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func newRecordDoc(r *Record) *recordDoc {
	doc := &recordDoc{
		Title:         r.Title,
		Numbers:       r.Numbers,
		Coordinates:   pointRows(r.Coordinates),
		PseudoNumbers: r.PseudoNumbers,
		Alpha:         newOrbitalDoc(r.Alpha),
		Beta:          newOrbitalDoc(r.Beta),
	}
	if b := r.Basis; b != nil {
		doc.Basis = &basisDoc{
			Centers:    pointRows(b.Centers),
			ShellMap:   b.ShellMap,
			NPrims:     b.NPrims,
			ShellTypes: b.ShellTypes,
			Alphas:     b.Alphas,
			ConCoeffs:  b.ConCoeffs,
		}
	}
	for _, key := range operatorKeys {
		if m, ok := r.Operator(key); ok {
			if doc.Operators == nil {
				doc.Operators = make(map[string][][]float64)
			}
			doc.Operators[string(key)] = linalg.Rows(m)
		}
	}
	return doc
}

func newOrbitalDoc(o *OrbitalSet) *orbitalDoc {
	if o == nil {
		return nil
	}
	doc := &orbitalDoc{Energies: o.Energies, Occupations: o.Occupations}
	if o.Coefficients != nil {
		doc.Coefficients = linalg.Rows(o.Coefficients)
	}
	return doc
}

func (d *recordDoc) record() (*Record, error) {
	const op = "wfn: decode"
	r := &Record{Title: d.Title, Numbers: d.Numbers}
	if len(d.Symbols) > 0 {
		if len(d.Numbers) > 0 {
			return nil, fmt.Errorf("%s: both atomic_numbers and symbols given", op)
		}
		r.Numbers = make([]int, len(d.Symbols))
		for i, s := range d.Symbols {
			z, ok := AtomicNumber(s)
			if !ok {
				return nil, fmt.Errorf("%s: unknown element %q", op, s)
			}
			r.Numbers[i] = z
		}
	}
	var err error
	if r.Coordinates, err = points(op+" atomic_coordinates", d.Coordinates); err != nil {
		return nil, err
	}
	r.PseudoNumbers = d.PseudoNumbers
	if r.PseudoNumbers == nil {
		// no pseudopotential: the core charge is the nuclear charge
		r.PseudoNumbers = make([]float64, len(r.Numbers))
		for i, z := range r.Numbers {
			r.PseudoNumbers[i] = float64(z)
		}
	}
	if b := d.Basis; b != nil {
		r.Basis = &Basis{
			ShellMap:   b.ShellMap,
			NPrims:     b.NPrims,
			ShellTypes: b.ShellTypes,
			Alphas:     b.Alphas,
			ConCoeffs:  b.ConCoeffs,
		}
		if r.Basis.Centers, err = points(op+" basis centers", b.Centers); err != nil {
			return nil, err
		}
	}
	if r.Alpha, err = d.Alpha.orbitals(op + " orb_alpha"); err != nil {
		return nil, err
	}
	if r.Beta, err = d.Beta.orbitals(op + " orb_beta"); err != nil {
		return nil, err
	}
	for name, rows := range d.Operators {
		key := OperatorKey(name)
		if !key.Valid() {
			return nil, fmt.Errorf("%s: unknown operator %q", op, name)
		}
		m, ok := linalg.FromRows(rows)
		if !ok {
			return nil, fmt.Errorf("%s: operator %s: empty or ragged matrix", op, name)
		}
		r.SetOperator(key, m)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (d *orbitalDoc) orbitals(op string) (*OrbitalSet, error) {
	if d == nil {
		return nil, nil
	}
	c, ok := linalg.FromRows(d.Coefficients)
	if !ok {
		return nil, fmt.Errorf("%s: coefficients: empty or ragged matrix", op)
	}
	return &OrbitalSet{Coefficients: c, Energies: d.Energies, Occupations: d.Occupations}, nil
}

func pointRows(pts [][3]float64) [][]float64 {
	if pts == nil {
		return nil
	}
	rows := make([][]float64, len(pts))
	for i := range pts {
		rows[i] = []float64{pts[i][0], pts[i][1], pts[i][2]}
	}
	return rows
}

func points(op string, rows [][]float64) ([][3]float64, error) {
	if rows == nil {
		return nil, nil
	}
	pts := make([][3]float64, len(rows))
	for i, row := range rows {
		if len(row) != 3 {
			return nil, qcerr.Shape(op, "cartesian components", 3, len(row))
		}
		copy(pts[i][:], row)
	}
	return pts, nil
}
