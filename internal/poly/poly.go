// Package poly implements polynomials with arbitrary-precision decimal
// coefficients.
package poly

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/findzero"
	"gopkg.in/inf.v0"
)

var errNoCoefficients = errors.New("no coefficients")

// Poly is a polynomial of one variable.
// Coefficients are ordered from the highest degree to the constant term,
// so {1, -2, -4} represents x² - 2x - 4.
// The zero value is the zero polynomial.
type Poly struct {
	coef []*inf.Dec
}

// New returns a polynomial with the given coefficients.
// The coefficients are copied.
func New(coef ...*inf.Dec) Poly {
	p := Poly{coef: make([]*inf.Dec, len(coef))}
	for i, c := range coef {
		p.coef[i] = new(inf.Dec).Set(c)
	}
	return p
}

// Parse converts a comma separated list of decimals to a polynomial.
// Spaces around the decimals are ignored.
func Parse(s string) (Poly, error) {
	if strings.TrimSpace(s) == "" {
		return Poly{}, errNoCoefficients
	}
	fields := strings.Split(s, ",")
	p := Poly{coef: make([]*inf.Dec, len(fields))}
	for i, f := range fields {
		c, err := findzero.Parse(strings.TrimSpace(f))
		if err != nil {
			return Poly{}, fmt.Errorf("coefficient %v: %w", i, err)
		}
		p.coef[i] = c
	}
	return p, nil
}

// Degree returns the degree of p, ignoring leading zero coefficients.
// The degree of the zero polynomial is -1.
func (p Poly) Degree() int {
	for i, c := range p.coef {
		if c.Sign() != 0 {
			return len(p.coef) - 1 - i
		}
	}
	return -1
}

// Eval returns p(x) computed with Horner's rule.
// The result is exact.
func (p Poly) Eval(x *inf.Dec) *inf.Dec {
	y := new(inf.Dec)
	for _, c := range p.coef {
		y.Mul(y, x)
		y.Add(y, c)
	}
	return y
}

// Func returns p as a [findzero.Func].
func (p Poly) Func() findzero.Func {
	return func(x *inf.Dec) (*inf.Dec, error) {
		return p.Eval(x), nil
	}
}

// String returns p in the form "1x^2 - 2x - 4".
// Zero coefficients are omitted.
func (p Poly) String() string {
	var b strings.Builder
	for i, c := range p.coef {
		if c.Sign() == 0 {
			continue
		}
		abs := new(inf.Dec).Abs(c)
		switch {
		case b.Len() == 0 && c.Sign() < 0:
			b.WriteString("-")
		case b.Len() > 0 && c.Sign() < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		b.WriteString(abs.String())
		switch deg := len(p.coef) - 1 - i; deg {
		case 0:
		case 1:
			b.WriteString("x")
		default:
			fmt.Fprintf(&b, "x^%v", deg)
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}
