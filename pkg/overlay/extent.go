package overlay

// Extent is the measured size of the overlay's content.
type Extent struct {
	Height float64
	Width  float64
}

// ExtentCell keeps the first non-zero measurement of each dimension for the
// lifetime of a mount. Later reports never rewrite a captured dimension, so an
// animation in flight keeps a stable target.
type ExtentCell struct {
	height, width float64
}

// Capture records the dimension of e that matters for axis if that dimension
// has not been captured yet and is positive. It reports whether the cell
// changed.
func (c *ExtentCell) Capture(e Extent, axis Axis) bool {
	switch axis {
	case Vertical:
		if c.height == 0 && e.Height > 0 {
			c.height = e.Height
			return true
		}
	case Horizontal:
		if c.width == 0 && e.Width > 0 {
			c.width = e.Width
			return true
		}
	}
	return false
}

// Extent returns the captured dimensions. Uncaptured dimensions are 0.
func (c *ExtentCell) Extent() Extent {
	return Extent{Height: c.height, Width: c.width}
}

// Captured reports whether the dimension for axis is known.
func (c *ExtentCell) Captured(axis Axis) bool {
	if axis == Horizontal {
		return c.width > 0
	}
	return c.height > 0
}
