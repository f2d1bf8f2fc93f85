package interpolation

import "math"

// RotationStep is the tilt in degrees applied per item of distance from center.
const RotationStep = 20.0

// Opacity fades items with distance from the center: 1/(1+|d|).
func Opacity(d float64) float64 {
	return 1 / (1 + math.Abs(d))
}

// Scale shrinks items by a tenth per item of distance: 1-0.1|d|.
func Scale(d float64) float64 {
	return 1 - 0.1*math.Abs(d)
}

// Rotation tilts items by RotationStep degrees per item of distance. The sign
// follows d, so items above and below the center tilt in opposite directions.
func Rotation(d float64) float64 {
	return RotationStep * d
}

// Curves holds the three wheel tables. All three share the same input knots.
// Curves is read-only after construction and may be shared by every item of
// a picker.
type Curves struct {
	VisibleRest int
	Opacity     Table
	Scale       Table
	Rotation    Table
}

// BuildCurves builds the opacity, scale and rotation tables for visibleRest
// neighbors on each side. A negative visibleRest is treated as 0.
func BuildCurves(visibleRest int) Curves {
	visibleRest = max(visibleRest, 0)
	return Curves{
		VisibleRest: visibleRest,
		Opacity:     Symmetric(visibleRest, Opacity),
		Scale:       Symmetric(visibleRest, Scale),
		Rotation:    Symmetric(visibleRest, Rotation),
	}
}

// At evaluates all three curves at relative distance d (item index minus the
// current center index).
func (c Curves) At(d float64) (opacity, scale, rotation float64) {
	return c.Opacity.Evaluate(d), c.Scale.Evaluate(d), c.Rotation.Evaluate(d)
}
