package findzero

import (
	"errors"
	"fmt"

	"gopkg.in/inf.v0"
)

// Func is a function of one decimal variable.
// It is used both for the target function f and for its derivative f'.
//
// A Func must be pure: it must not modify its argument or keep a reference
// to it, and it must return the same value for the same argument.
// A non-nil error aborts the search and is returned to the caller of
// [Finder.Solve] as is.
type Func func(x *inf.Dec) (*inf.Dec, error)

// Step describes a single update step of Newton's method.
// All fields are copies and may be retained by the receiver.
type Step struct {
	Iteration int      // zero-based index of the step
	X         *inf.Dec // the point before the update
	Y         *inf.Dec // f(X)
	Slope     *inf.Dec // f'(X)
	Next      *inf.Dec // X - Y / Slope
}

// TraceFunc is called by [Finder.Solve] after every update step.
type TraceFunc func(Step)

// Finder type searches for roots of functions using Newton's method.
// The zero value is not useful; use [Default] or [New].
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A finder is a struct with three parameters:
//
//   - Maximum iterations: an upper bound on the number of update steps.
//   - Margin: a non-negative decimal; a point x is accepted as a root when |f(x)| < margin.
//   - Scale: the number of digits after the decimal point kept when dividing f(x) by f'(x).
//
// Division is rounded using half-up rounding.
// Addition, subtraction and multiplication are exact.
type Finder struct {
	maxIter int       // maximum number of update steps
	margin  *inf.Dec  // never modified after construction
	scale   inf.Scale // scale of the quotient f(x) / f'(x)
	trace   TraceFunc
}

const (
	DefaultMaxIterations           = 100 // default maximum number of update steps
	DefaultScale         inf.Scale = 20  // default scale of the quotient
)

var (
	// ErrNotFound is returned when no root satisfying the margin was found.
	// Both [ErrZeroDerivative] and [ErrNotConverged] wrap it.
	ErrNotFound = errors.New("root not found")

	// ErrZeroDerivative is returned when the derivative is exactly 0
	// at one of the visited points.
	ErrZeroDerivative = fmt.Errorf("derivative is zero: %w", ErrNotFound)

	// ErrNotConverged is returned when the final point does not satisfy
	// the margin.
	ErrNotConverged = fmt.Errorf("margin not reached: %w", ErrNotFound)

	// ErrNilValue is returned when a [Func] returns a nil value without an error.
	ErrNilValue = errors.New("function returned nil value")
)

// defaultMargin is 0.0000000001.
var defaultMargin = inf.NewDec(1, 10)

// Default returns a finder with 100 maximum iterations, a margin of
// 0.0000000001, and a scale of 20.
func Default() Finder {
	return New(DefaultMaxIterations, defaultMargin, DefaultScale)
}

// New returns a finder with the given parameters.
// The parameters are not validated:
//
//   - If maxIter is 0 or negative, no update steps are performed and
//     only the initial guess is checked against the margin.
//   - If margin is nil, it is treated as 0, and no point is ever accepted.
//   - If margin is negative, no point is ever accepted.
//
// The margin is copied, so later changes to it do not affect the finder.
func New(maxIter int, margin *inf.Dec, scale inf.Scale) Finder {
	m := new(inf.Dec)
	if margin != nil {
		m.Set(margin)
	}
	return Finder{maxIter: maxIter, margin: m, scale: scale}
}

// MaxIterations returns the maximum number of update steps.
func (f Finder) MaxIterations() int {
	return f.maxIter
}

// Margin returns a copy of the convergence margin.
func (f Finder) Margin() *inf.Dec {
	if f.margin == nil {
		return new(inf.Dec)
	}
	return new(inf.Dec).Set(f.margin)
}

// Scale returns the number of digits after the decimal point kept when
// dividing f(x) by f'(x).
func (f Finder) Scale() inf.Scale {
	return f.scale
}

// WithTrace returns a copy of f that calls fn after every update step.
// A nil fn removes the hook.
func (f Finder) WithTrace(fn TraceFunc) Finder {
	f.trace = fn
	return f
}

// String implements the [fmt.Stringer] interface.
func (f Finder) String() string {
	return fmt.Sprintf("newton(max=%v, margin=%v, scale=%v)", f.maxIter, f.Margin(), f.scale)
}

// Solve searches for x such that |fx(x)| < margin, starting at init and
// repeatedly replacing x with x - fx(x) / dfx(x).
// The quotient is rounded to [Finder.Scale] digits after the decimal point
// using half-up rounding.
//
// The search stops early as soon as the current point satisfies the margin.
// Whatever the reason the search stopped, the final point is checked again,
// and it is returned only if it satisfies the margin.
//
// Solve returns an error if:
//
//   - dfx returns 0 at a visited point, see [ErrZeroDerivative];
//   - the final point does not satisfy the margin, see [ErrNotConverged];
//   - fx or dfx returns a nil value, see [ErrNilValue];
//   - fx or dfx returns an error; the error is returned unchanged.
//
// At most [Finder.MaxIterations] derivative evaluations are performed.
// The init value is not modified.
func (f Finder) Solve(fx, dfx Func, init *inf.Dec) (*inf.Dec, error) {
	if init == nil {
		return nil, fmt.Errorf("initial guess: %w", ErrNilValue)
	}
	x := new(inf.Dec).Set(init)
	for i := 0; i < f.maxIter; i++ {
		y, err := eval(fx, x)
		if err != nil {
			return nil, err
		}
		if f.within(y) {
			break
		}
		dy, err := eval(dfx, x)
		if err != nil {
			return nil, err
		}
		if dy.Sign() == 0 {
			return nil, fmt.Errorf("f'(%v) = 0 at step %v: %w", x, i, ErrZeroDerivative)
		}
		step := new(inf.Dec).QuoRound(y, dy, f.scale, inf.RoundHalfUp)
		next := new(inf.Dec).Sub(x, step)
		if f.trace != nil {
			f.trace(Step{
				Iteration: i,
				X:         new(inf.Dec).Set(x),
				Y:         new(inf.Dec).Set(y),
				Slope:     new(inf.Dec).Set(dy),
				Next:      new(inf.Dec).Set(next),
			})
		}
		x = next
	}
	y, err := eval(fx, x)
	if err != nil {
		return nil, err
	}
	if !f.within(y) {
		return nil, fmt.Errorf("|f(%v)| = %v, want less than %v: %w", x, new(inf.Dec).Abs(y), f.Margin(), ErrNotConverged)
	}
	return x, nil
}

// within reports whether |y| < margin.
func (f Finder) within(y *inf.Dec) bool {
	if f.margin == nil {
		return false
	}
	return new(inf.Dec).Abs(y).Cmp(f.margin) < 0
}

func eval(fn Func, x *inf.Dec) (*inf.Dec, error) {
	y, err := fn(x)
	if err != nil {
		return nil, err
	}
	if y == nil {
		return nil, fmt.Errorf("at %v: %w", x, ErrNilValue)
	}
	return y, nil
}
