/*
Package findzero implements Newton's method for finding roots of functions
of one decimal variable.
It is specifically designed for use where binary floating-point rounding
is unacceptable, such as financial systems.
All arithmetic is performed on arbitrary-precision decimals from [inf.Dec].

# Method

Given a function f, its derivative f', and an initial guess x₀,
[Finder.Solve] computes successive approximations of a root:

	xₙ₊₁ = xₙ - f(xₙ) / f'(xₙ)

The derivative is supplied by the caller; the package does not
differentiate functions.

# Parameters

[Finder] is a struct with three parameters:

  - Maximum iterations: the upper bound on the number of update steps.
    The default is 100.
  - Margin: a point x is accepted as a root when |f(x)| < margin.
    The comparison is strict, a point with |f(x)| equal to the margin is
    not accepted.
    The default is 0.0000000001.
  - Scale: the number of digits after the decimal point kept when
    computing f(x) / f'(x).
    The default is 20.

The parameters are fixed when a finder is created with [Default] or [New]
and cannot be changed afterwards.

# Rounding

Only the quotient f(x) / f'(x) is rounded.
It is rounded to the scale of the finder using half-up rounding,
that is, ties are rounded away from zero:

	| Quotient | Scale | Rounded |
	| -------- | ----- | ------- |
	|    0.25  |     1 |     0.3 |
	|   -0.25  |     1 |    -0.3 |
	|    0.249 |     1 |     0.2 |

Subtraction of the quotient from the current point is exact,
as are any additions and multiplications performed by [inf.Dec].

# Termination

Every search terminates after at most the maximum number of iterations.
The search stops early when the current point satisfies the margin,
and it is aborted when the derivative is exactly 0, since the quotient
is undefined.
In all other cases the last computed point is kept.
Whatever the reason the search stopped, the final point is checked against
the margin again, and it is returned only if it satisfies the margin.

# Errors

No result is returned that was not validated against the margin.
Errors are returned in the following cases:

  - Division by zero.
    The derivative is 0 at one of the visited points.
    See [ErrZeroDerivative].

  - No convergence.
    The final point does not satisfy the margin.
    See [ErrNotConverged].

Both errors wrap [ErrNotFound], so callers that do not care about the
difference can check for it with [errors.Is].
Errors returned by the caller's functions are returned unchanged and
are never retried.

# Concurrency

A [Finder] is immutable and holds no per-call state.
It can be shared and used concurrently by multiple goroutines.

# Fixed-precision decimals

[Finder.SolveDecimal] accepts functions over [decimal.Decimal].
The search is still carried out on arbitrary-precision decimals,
and each point is rounded to fit a [decimal.Decimal] before the functions
are evaluated.

[inf.Dec]: https://pkg.go.dev/gopkg.in/inf.v0#Dec
[decimal.Decimal]: https://pkg.go.dev/github.com/govalues/decimal#Decimal
*/
package findzero
