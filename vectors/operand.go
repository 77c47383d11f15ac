package vectors

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/avdva/fp32"
)

// Operand is a float32 stored as its bit pattern, so that any NaN encoding survives a round trip.
// In yaml files operands are written as floats (`1.5`, `-0`, `inf`, `nan`) or bit patterns (`0x7f800001`).
// In cbor files operands are plain integers.
type Operand uint32

// OperandOf returns an operand for given fields.
func OperandOf(f fp32.Fields) Operand {
	return Operand(f.Bits())
}

// FloatOperand returns an operand for a float32.
func FloatOperand(f float32) Operand {
	return Operand(math.Float32bits(f))
}

// Fields returns operand's fields.
func (o Operand) Fields() fp32.Fields {
	return fp32.FromBits(uint32(o))
}

// Float32 returns operand's value.
func (o Operand) Float32() float32 {
	return math.Float32frombits(uint32(o))
}

// ParseOperand parses a float or a bit pattern.
func ParseOperand(s string) (Operand, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return 0, fmt.Errorf("empty operand")
	case "nan", ".nan":
		return OperandOf(fp32.NaN), nil
	case "inf", "+inf", ".inf", "+.inf":
		return OperandOf(fp32.Inf), nil
	case "-inf", "-.inf":
		return OperandOf(fp32.NegInf), nil
	}
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		if b, err := strconv.ParseUint(s[2:], 16, 32); err == nil {
			return Operand(b), nil
		}
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("bad operand %q: %w", s, err)
	}
	return FloatOperand(float32(f)), nil
}

// String returns a float representation of the operand, or a bit pattern for NaNs.
// ParseOperand(o.String()) == o for any operand.
func (o Operand) String() string {
	if o.Fields().IsNaN() {
		return fmt.Sprintf("0x%08x", uint32(o))
	}
	return strconv.FormatFloat(float64(o.Float32()), 'g', -1, 32)
}

// MarshalYAML writes the operand as a string.
func (o Operand) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// UnmarshalYAML parses a scalar node with ParseOperand.
func (o *Operand) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: operand must be a scalar", node.Line)
	}
	v, err := ParseOperand(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*o = v
	return nil
}
