package findzero

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
	"gopkg.in/inf.v0"
)

var errInvalidDecimal = errors.New("invalid decimal")

// Parse converts a string to a decimal.
// The scale of the result is the number of digits after the decimal point,
// trailing zeros included.
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
func Parse(s string) (*inf.Dec, error) {
	d, ok := new(inf.Dec).SetString(s)
	if !ok {
		return nil, fmt.Errorf("parsing %q: %w", s, errInvalidDecimal)
	}
	return d, nil
}

// DecimalFunc is like [Func] but operates on fixed-precision decimals
// from [github.com/govalues/decimal].
type DecimalFunc func(x decimal.Decimal) (decimal.Decimal, error)

// FromDecimal converts a fixed-precision decimal to an arbitrary-precision one.
// The conversion is exact and keeps the scale of d.
func FromDecimal(d decimal.Decimal) *inf.Dec {
	coef := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		coef.Neg(coef)
	}
	return inf.NewDecBig(coef, inf.Scale(d.Scale()))
}

// ToDecimal converts an arbitrary-precision decimal to a fixed-precision one.
// If x has more than [decimal.MaxScale] digits after the decimal point,
// the result is rounded to fit.
// ToDecimal returns an error if the integer part of x has more than
// [decimal.MaxPrec] digits.
func ToDecimal(x *inf.Dec) (decimal.Decimal, error) {
	d, err := decimal.Parse(x.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", x, err)
	}
	return d, nil
}

// Func returns a [Func] that evaluates fn.
// The argument is converted with [ToDecimal] and the value with [FromDecimal].
func (fn DecimalFunc) Func() Func {
	return func(x *inf.Dec) (*inf.Dec, error) {
		d, err := ToDecimal(x)
		if err != nil {
			return nil, err
		}
		y, err := fn(d)
		if err != nil {
			return nil, err
		}
		return FromDecimal(y), nil
	}
}

// SolveDecimal is like [Finder.Solve] but operates on fixed-precision decimals.
// The search itself runs on arbitrary-precision decimals, and every point is
// rounded to at most [decimal.MaxScale] digits after the decimal point before
// it is passed to fx or dfx.
// The returned root is the rounded point on which the final check was made.
func (f Finder) SolveDecimal(fx, dfx DecimalFunc, init decimal.Decimal) (decimal.Decimal, error) {
	x, err := f.Solve(fx.Func(), dfx.Func(), FromDecimal(init))
	if err != nil {
		return decimal.Decimal{}, err
	}
	return ToDecimal(x)
}
