// Package interpolation builds piecewise-linear curves and evaluates them
// against animated inputs.
//
// A [Table] is a list of knots with strictly increasing inputs. Evaluation
// interpolates linearly between the two bracketing knots and holds the
// boundary output outside the outermost knots.
//
// [Symmetric] builds the tables used by the wheel picker: knots at the
// integers -(rest+1)..(rest+1) with outputs taken from a generator function.
package interpolation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// Knot is one (input, output) pair of a table.
type Knot struct {
	In  float64
	Out float64
}

// Table is an immutable piecewise-linear curve. The zero Table evaluates to 0.
type Table struct {
	knots []Knot
	// fit is nil for tables with fewer than two knots.
	fit *interp.PiecewiseLinear
}

// NewTable returns a table over knots, which must have strictly increasing
// inputs. The slice is copied.
func NewTable(knots []Knot) (Table, error) {
	for i := 1; i < len(knots); i++ {
		if !(knots[i].In > knots[i-1].In) {
			return Table{}, fmt.Errorf("interpolation: knot %d input %v does not follow %v", i, knots[i].In, knots[i-1].In)
		}
	}
	return fit(append([]Knot(nil), knots...))
}

func fit(knots []Knot) (Table, error) {
	t := Table{knots: knots}
	if len(knots) < 2 {
		return t, nil
	}
	xs := make([]float64, len(knots))
	ys := make([]float64, len(knots))
	for i, k := range knots {
		xs[i], ys[i] = k.In, k.Out
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return Table{}, fmt.Errorf("interpolation: %w", err)
	}
	t.fit = &pl
	return t, nil
}

// Symmetric builds a table with inputs -(rest+1)..(rest+1) and outputs f(input).
//
// Construction starts from the center knot (0, f(0)) and, for i = 1..rest+1,
// prepends (-i, f(-i)) and appends (i, f(i)), giving exactly 2*(rest+1)+1
// knots. A negative rest is treated as 0.
func Symmetric(rest int, f func(float64) float64) Table {
	rest = max(rest, 0)
	n := rest + 1
	knots := make([]Knot, 2*n+1)
	knots[n] = Knot{In: 0, Out: f(0)}
	for i := 1; i <= n; i++ {
		x := float64(i)
		knots[n-i] = Knot{In: -x, Out: f(-x)}
		knots[n+i] = Knot{In: x, Out: f(x)}
	}
	t, err := fit(knots)
	if err != nil {
		// Integer knots are strictly increasing.
		panic(err)
	}
	return t
}

// Len returns the number of knots.
func (t Table) Len() int {
	return len(t.knots)
}

// Knots returns a copy of the table's knots.
func (t Table) Knots() []Knot {
	return append([]Knot(nil), t.knots...)
}

// Inputs returns the knot inputs in order.
func (t Table) Inputs() []float64 {
	in := make([]float64, len(t.knots))
	for i, k := range t.knots {
		in[i] = k.In
	}
	return in
}

// Outputs returns the knot outputs in order.
func (t Table) Outputs() []float64 {
	out := make([]float64, len(t.knots))
	for i, k := range t.knots {
		out[i] = k.Out
	}
	return out
}

// Evaluate returns the curve's value at x.
//
// Between knots the result is linearly interpolated; outside the outermost
// knots the boundary output is held. NaN evaluates to NaN.
func (t Table) Evaluate(x float64) float64 {
	switch {
	case len(t.knots) == 0:
		return 0
	case math.IsNaN(x):
		return math.NaN()
	case t.fit == nil:
		return t.knots[0].Out
	}
	return t.fit.Predict(x)
}
