package findzero

import (
	"fmt"

	"gopkg.in/inf.v0"
)

// MustSolve is like [Finder.Solve] but panics if no root is found.
func (f Finder) MustSolve(fx, dfx Func, init *inf.Dec) *inf.Dec {
	x, err := f.Solve(fx, dfx, init)
	if err != nil {
		panic(fmt.Sprintf("MustSolve(%v) failed: %v", init, err))
	}
	return x
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) *inf.Dec {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}
