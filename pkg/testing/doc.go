// Package testing provides deterministic frame stepping for motion tests.
//
// # Quick Start
//
// Install a frame driver, start an animation, and pump frames:
//
//	func TestOpen(t *testing.T) {
//	    driver := motiontest.NewFrameDriverWithT(t)
//	    ctrl := overlay.NewController(overlay.Options{Placement: overlay.Bottom})
//	    ctrl.OnLayout(overlay.Extent{Height: 300})
//	    ctrl.SetVisible(true)
//
//	    if err := driver.PumpAndSettle(5 * time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
// Each Pump advances the fake clock by one frame (16ms by default) and then
// steps every active animation ticker.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import motiontest "github.com/go-drift/motion/pkg/testing"
package testing
