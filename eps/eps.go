package eps

import "math"

const (
	// PivotTol is the default strict-positivity threshold used by the
	// simplex driver: an entering column needs a reduced cost > PivotTol,
	// and a row participates in the min-ratio test only when its pivot
	// candidate is > PivotTol.
	PivotTol = 1e-10

	// IntTol is the default integrality tolerance: x counts as integral
	// when |x − round(x)| ≤ IntTol.
	IntTol = 1e-4
)

// IsZero reports whether |x| ≤ tol.
func IsZero(x, tol float64) bool { return math.Abs(x) <= tol }

// IsPos reports whether x is strictly positive beyond tol (x > tol).
// Strictness matters: a near-degenerate pivot candidate at exactly tol is
// rejected, which together with Bland's rule prevents cycling.
func IsPos(x, tol float64) bool { return x > tol }

// IsInt reports whether x is within tol of its nearest integer.
func IsInt(x, tol float64) bool { return math.Abs(x-math.Round(x)) <= tol }
