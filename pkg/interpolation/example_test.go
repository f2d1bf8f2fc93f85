package interpolation_test

import (
	"fmt"

	"github.com/go-drift/motion/pkg/interpolation"
)

// This example shows the wheel curves for one visible neighbor on each side.
func ExampleBuildCurves() {
	curves := interpolation.BuildCurves(1)

	fmt.Println(curves.Rotation.Inputs())
	fmt.Println(curves.Rotation.Outputs())

	opacity, scale, rotation := curves.At(-0.5)
	fmt.Printf("d=-0.5: opacity=%.2f scale=%.2f rotation=%.0f\n", opacity, scale, rotation)

	// Output:
	// [-2 -1 0 1 2]
	// [-40 -20 0 20 40]
	// d=-0.5: opacity=0.75 scale=0.95 rotation=-10
}
