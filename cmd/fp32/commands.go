package main

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"

	"github.com/avdva/fp32"
	"github.com/avdva/fp32/vectors"
)

// AddCmd adds two operands.
type AddCmd struct {
	LH string `arg:"" help:"Left operand: a float, inf, nan or a 0x bit pattern."`
	RH string `arg:"" help:"Right operand: a float, inf, nan or a 0x bit pattern."`
}

// Run prints lh + rh.
func (c *AddCmd) Run(g *Globals) error {
	return runOp(g, fp32.OpAdd, c.LH, c.RH)
}

// MulCmd multiplies two operands.
type MulCmd struct {
	LH string `arg:"" help:"Left operand: a float, inf, nan or a 0x bit pattern."`
	RH string `arg:"" help:"Right operand: a float, inf, nan or a 0x bit pattern."`
}

// Run prints lh * rh.
func (c *MulCmd) Run(g *Globals) error {
	return runOp(g, fp32.OpMul, c.LH, c.RH)
}

func runOp(g *Globals, op fp32.Op, lhs, rhs string) error {
	ops, err := parseOperands([]string{lhs, rhs})
	if err != nil {
		return err
	}
	lh, rh := ops[0], ops[1]
	g.logger.Debug("operands", "lh", fmt.Sprintf("%#v", lh.Fields()), "rh", fmt.Sprintf("%#v", rh.Fields()))
	got, want, ok := fp32.Check(op, lh.Float32(), rh.Float32())
	fmt.Fprintf(g.out, "%v %v %v = %v\n", lh, op, rh, vectors.OperandOf(got))
	fmt.Fprintf(g.out, "engine:   %#v\n", got)
	fmt.Fprintf(g.out, "hardware: %#v\n", want)
	if !ok {
		return fmt.Errorf("engine and hardware results differ")
	}
	return nil
}

func parseOperands(values []string) ([]vectors.Operand, error) {
	result := make([]vectors.Operand, 0, len(values))
	for _, v := range values {
		o, err := vectors.ParseOperand(v)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, nil
}

// ShowCmd prints operands' fields.
type ShowCmd struct {
	Values []string `arg:"" help:"Operands to show."`
}

// Run prints fields, bits and the exact decimal value of every operand.
func (c *ShowCmd) Run(g *Globals) error {
	values, err := parseOperands(c.Values)
	if err != nil {
		return err
	}
	for _, v := range values {
		f := v.Fields()
		fmt.Fprintf(g.out, "%v\t0x%08x\tS:%d E:%d M:0x%06X\t%s\n", v, uint32(v), f.Sign, f.Exp, f.Mant, exactString(f))
	}
	return nil
}

// BF24Cmd reduces operands to the 24-bit format.
type BF24Cmd struct {
	Values []string `arg:"" help:"Operands to reduce."`
}

// Run prints the reduced value and its bit pattern.
func (c *BF24Cmd) Run(g *Globals) error {
	values, err := parseOperands(c.Values)
	if err != nil {
		return err
	}
	for _, v := range values {
		r := vectors.OperandOf(fp32.ToBF24(v.Fields()))
		fmt.Fprintf(g.out, "%v\t%v\t0x%08x\n", v, r, uint32(r))
	}
	return nil
}

// CheckCmd runs vector suites.
type CheckCmd struct {
	Files []string `arg:"" type:"existingfile" help:"Suite files (.yaml, .yml, .cbor)."`
}

// Run checks every suite and prints the failed cases.
func (c *CheckCmd) Run(g *Globals) error {
	var result *multierror.Error
	for _, path := range c.Files {
		suite, err := vectors.Load(path)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		err = suite.Check()
		var merr *multierror.Error
		if errors.As(err, &merr) {
			for _, e := range merr.Errors {
				fmt.Fprintf(g.out, "%s: %v\n", path, e)
			}
			result = multierror.Append(result, fmt.Errorf("%s: %d of %d cases failed", path, len(merr.Errors), len(suite.Cases)))
			continue
		}
		g.logger.Info("suite passed", "file", path, "name", suite.Name, "cases", len(suite.Cases))
	}
	return result.ErrorOrNil()
}

// exact returns the exact decimal value of a finite number.
func exact(f fp32.Fields) decimal.Decimal {
	sig, exp := big.NewInt(int64(f.Mant)), int(f.Exp)-150
	if f.Exp == 0 {
		exp = -149
	} else {
		sig.SetBit(sig, 23, 1)
	}
	var d decimal.Decimal
	if exp >= 0 {
		d = decimal.NewFromBigInt(sig.Lsh(sig, uint(exp)), 0)
	} else {
		// sig * 2^-k = sig * 5^k / 10^k
		k := int64(-exp)
		sig.Mul(sig, new(big.Int).Exp(big.NewInt(5), big.NewInt(k), nil))
		d = decimal.NewFromBigInt(sig, -int32(k))
	}
	if f.Sign != 0 {
		d = d.Neg()
	}
	return d
}

func exactString(f fp32.Fields) string {
	if !f.IsNumber() {
		return f.String()
	}
	return exact(f).String()
}
