package curve

import "fmt"

// Quadratic holds the coefficients of y = A*x^2 + B*x + C.
type Quadratic struct {
	A float64 `json:"a" yaml:"a"`
	B float64 `json:"b" yaml:"b"`
	C float64 `json:"c" yaml:"c"`
}

// Reference is an upward parabola with its vertex at the origin.
var Reference = Quadratic{A: 0.01, B: 0, C: 0}

// At evaluates the polynomial at x.
func (q Quadratic) At(x float64) float64 {
	return q.A*x*x + q.B*x + q.C
}

func (q Quadratic) String() string {
	return fmt.Sprintf("y = %gx^2 + %gx + %g", q.A, q.B, q.C)
}
