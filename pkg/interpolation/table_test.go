package interpolation

import (
	"math"
	"testing"
)

const epsilon = 1e-12

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

func TestSymmetric_KnotLayout(t *testing.T) {
	for rest := 0; rest <= 8; rest++ {
		table := Symmetric(rest, Opacity)
		if got, want := table.Len(), 2*(rest+1)+1; got != want {
			t.Fatalf("rest=%d: %d knots, want %d", rest, got, want)
		}
		in := table.Inputs()
		if in[0] != -float64(rest+1) || in[len(in)-1] != float64(rest+1) {
			t.Errorf("rest=%d: domain [%v, %v]", rest, in[0], in[len(in)-1])
		}
		for i := 1; i < len(in); i++ {
			if !(in[i] > in[i-1]) {
				t.Errorf("rest=%d: inputs not strictly increasing at %d: %v", rest, i, in)
			}
			if in[i]+in[len(in)-1-i] != 0 {
				t.Errorf("rest=%d: inputs not symmetric: %v", rest, in)
			}
		}
	}
}

func TestSymmetric_NegativeRestIsZero(t *testing.T) {
	table := Symmetric(-3, Scale)
	want := []float64{-1, 0, 1}
	got := table.Inputs()
	if len(got) != len(want) {
		t.Fatalf("inputs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("inputs = %v, want %v", got, want)
		}
	}
	if c := BuildCurves(-1); c.VisibleRest != 0 || c.Rotation.Len() != 3 {
		t.Errorf("BuildCurves(-1) = rest %d with %d knots", c.VisibleRest, c.Rotation.Len())
	}
}

func TestBuildCurves_VisibleRestOne(t *testing.T) {
	c := BuildCurves(1)

	tests := []struct {
		name  string
		table Table
		want  []float64
	}{
		{"opacity", c.Opacity, []float64{1.0 / 3, 0.5, 1, 0.5, 1.0 / 3}},
		{"scale", c.Scale, []float64{0.8, 0.9, 1.0, 0.9, 0.8}},
		{"rotation", c.Rotation, []float64{-40, -20, 0, 20, 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.table.Inputs()
			wantIn := []float64{-2, -1, 0, 1, 2}
			out := tt.table.Outputs()
			for i := range wantIn {
				if in[i] != wantIn[i] {
					t.Errorf("input[%d] = %v, want %v", i, in[i], wantIn[i])
				}
				if !approxEqual(out[i], tt.want[i]) {
					t.Errorf("output[%d] = %v, want %v", i, out[i], tt.want[i])
				}
			}
		})
	}
}

func TestCurves_CenterValues(t *testing.T) {
	for rest := 0; rest <= 5; rest++ {
		o, s, r := BuildCurves(rest).At(0)
		if o != 1 || s != 1 || r != 0 {
			t.Errorf("rest=%d: At(0) = (%v, %v, %v), want (1, 1, 0)", rest, o, s, r)
		}
	}
}

func TestCurves_Symmetry(t *testing.T) {
	c := BuildCurves(3)
	for d := 0.0; d <= 6; d += 0.125 {
		o1, s1, r1 := c.At(d)
		o2, s2, r2 := c.At(-d)
		if !approxEqual(o1, o2) {
			t.Errorf("opacity(%v)=%v != opacity(-%v)=%v", d, o1, d, o2)
		}
		if !approxEqual(s1, s2) {
			t.Errorf("scale(%v)=%v != scale(-%v)=%v", d, s1, d, s2)
		}
		if !approxEqual(r1, -r2) {
			t.Errorf("rotation(%v)=%v != -rotation(-%v)=%v", d, r1, d, -r2)
		}
	}
}

func TestCurves_MonotoneThenFlat(t *testing.T) {
	c := BuildCurves(2)
	outer := 3.0
	prevO, prevS := math.Inf(1), math.Inf(1)
	for d := 0.0; d <= 10; d += 0.05 {
		o, s, _ := c.At(d)
		if o > prevO+epsilon || s > prevS+epsilon {
			t.Fatalf("increase at d=%v: opacity %v->%v scale %v->%v", d, prevO, o, prevS, s)
		}
		if d >= outer {
			if !approxEqual(o, 0.25) || !approxEqual(s, 0.7) {
				t.Errorf("d=%v beyond outer knot: opacity %v scale %v, want 0.25 and 0.7", d, o, s)
			}
		}
		prevO, prevS = o, s
	}

	if _, _, r := c.At(100); r != 60 {
		t.Errorf("rotation beyond outer knot = %v, want 60", r)
	}
	if _, _, r := c.At(-100); r != -60 {
		t.Errorf("rotation below outer knot = %v, want -60", r)
	}
}

func TestTable_EvaluateInterpolatesBetweenKnots(t *testing.T) {
	c := BuildCurves(1)
	// Halfway between (0, 1) and (1, 0.5).
	if got := c.Opacity.Evaluate(0.5); !approxEqual(got, 0.75) {
		t.Errorf("opacity(0.5) = %v, want 0.75", got)
	}
	if got := c.Rotation.Evaluate(-1.5); !approxEqual(got, -30) {
		t.Errorf("rotation(-1.5) = %v, want -30", got)
	}
	if got := c.Scale.Evaluate(1); !approxEqual(got, 0.9) {
		t.Errorf("scale(1) = %v, want 0.9", got)
	}
	if got := c.Scale.Evaluate(math.NaN()); !math.IsNaN(got) {
		t.Errorf("scale(NaN) = %v, want NaN", got)
	}
}

func TestNewTable(t *testing.T) {
	table, err := NewTable([]Knot{{0, 0}, {10, 100}})
	if err != nil {
		t.Fatal(err)
	}
	if got := table.Evaluate(2.5); got != 25 {
		t.Errorf("Evaluate(2.5) = %v, want 25", got)
	}
	if _, err := NewTable([]Knot{{0, 0}, {0, 1}}); err == nil {
		t.Error("expected error for non-increasing inputs")
	}
	if got := (Table{}).Evaluate(3); got != 0 {
		t.Errorf("zero table = %v, want 0", got)
	}

	single, err := NewTable([]Knot{{1, 7}})
	if err != nil {
		t.Fatal(err)
	}
	if got := single.Evaluate(-4); got != 7 {
		t.Errorf("single knot table = %v, want 7", got)
	}
}

func TestTable_HoldsBoundaryOutsideKnots(t *testing.T) {
	table, err := NewTable([]Knot{{-2, -40}, {-1, -20}, {0, 0}, {1, 20}, {2, 40}})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		x, want float64
	}{
		{-5, -40},
		{-2, -40},
		{-0.5, -10},
		{0.5, 10},
		{1, 20},
		{2, 40},
		{9, 40},
	}
	for _, tt := range tests {
		if got := table.Evaluate(tt.x); !approxEqual(got, tt.want) {
			t.Errorf("Evaluate(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestTable_KnotsIsCopy(t *testing.T) {
	table := Symmetric(0, Rotation)
	knots := table.Knots()
	knots[0].Out = 999
	if table.Evaluate(-5) == 999 {
		t.Error("Knots must return a copy")
	}
}
