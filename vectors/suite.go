// Package vectors implements test vector suites for the fp32 engine.
// A suite is a list of operations with their operands and, optionally, expected results.
// Suites are stored as yaml (human-written) or cbor (recorded by tools) files.
package vectors

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/avdva/fp32"
)

// Format is a suite file format.
type Format int

const (
	// FormatYAML is a yaml document.
	FormatYAML Format = iota
	// FormatCBOR is a cbor encoded suite.
	FormatCBOR
)

// FormatOf returns the format for a file name by its extension.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cbor":
		return FormatCBOR, nil
	default:
		return 0, fmt.Errorf("unknown suite format %q", ext)
	}
}

// Case is a single operation.
// If Want is nil, the result is compared with fp32.Reference using fp32.LooseEqual,
// otherwise the result must match Want exactly.
type Case struct {
	Name string   `yaml:"name,omitempty" cbor:"1,keyasint,omitempty"`
	Op   string   `yaml:"op" cbor:"2,keyasint"`
	LH   Operand  `yaml:"lh" cbor:"3,keyasint"`
	RH   Operand  `yaml:"rh" cbor:"4,keyasint"`
	Want *Operand `yaml:"want,omitempty" cbor:"5,keyasint,omitempty"`
}

// Suite is a named list of cases.
type Suite struct {
	Name  string `yaml:"name" cbor:"1,keyasint"`
	Cases []Case `yaml:"cases" cbor:"2,keyasint"`
}

// Mismatch is returned for a case, which result differs from the expected one.
type Mismatch struct {
	Index     int
	Case      Case
	Got, Want fp32.Fields
	// Exact is true, if the case had an expected value.
	Exact bool
}

func (m *Mismatch) Error() string {
	name := m.Case.Name
	if name == "" {
		name = strconv.Itoa(m.Index)
	}
	cmp := "loosely"
	if m.Exact {
		cmp = "exactly"
	}
	return fmt.Sprintf("case %s: %#v %s %#v = %#v, want %s %#v",
		name, m.Case.LH.Fields(), m.Case.Op, m.Case.RH.Fields(), m.Got, cmp, m.Want)
}

// Load reads a suite from a file. The format is chosen by the file extension.
func Load(path string) (*Suite, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open suite: %w", err)
	}
	defer f.Close()
	s, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", path, err)
	}
	return s, nil
}

// Save writes a suite to a file. The format is chosen by the file extension.
func Save(path string, s *Suite) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, s, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("save suite: %w", err)
	}
	return nil
}

// Decode reads a suite in the given format.
func Decode(r io.Reader, format Format) (*Suite, error) {
	var s Suite
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	case FormatCBOR:
		if err := cbor.NewDecoder(r).Decode(&s); err != nil {
			return nil, fmt.Errorf("decoding cbor: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %d", format)
	}
	return &s, nil
}

// Encode writes a suite in the given format.
func Encode(w io.Writer, s *Suite, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatCBOR:
		if err := cbor.NewEncoder(w).Encode(s); err != nil {
			return fmt.Errorf("encoding cbor: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %d", format)
	}
}

// Record appends a case without an expected value.
func (s *Suite) Record(op fp32.Op, lh, rh fp32.Fields) {
	s.Cases = append(s.Cases, Case{Op: op.String(), LH: OperandOf(lh), RH: OperandOf(rh)})
}

// Run checks a single case.
// Returns a *Mismatch error, if the result is wrong.
func (c Case) Run(index int) error {
	op, err := fp32.ParseOp(c.Op)
	if err != nil {
		return fmt.Errorf("case %d: %w", index, err)
	}
	got := fp32.Apply(op, c.LH.Fields(), c.RH.Fields())
	if c.Want != nil {
		if want := c.Want.Fields(); got != want {
			return &Mismatch{Index: index, Case: c, Got: got, Want: want, Exact: true}
		}
		return nil
	}
	want := fp32.Decompose(fp32.Reference(op, c.LH.Float32(), c.RH.Float32()))
	if !fp32.LooseEqual(got, want) {
		return &Mismatch{Index: index, Case: c, Got: got, Want: want}
	}
	return nil
}

// Check runs all the cases.
// Returns a *multierror.Error with an error for every failed case, or nil.
func (s *Suite) Check() error {
	var result *multierror.Error
	for i, c := range s.Cases {
		if err := c.Run(i); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
