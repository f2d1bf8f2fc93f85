package overlay

import (
	"errors"
	"fmt"
	"strings"
)

// Placement is the screen edge an overlay enters from and exits to.
type Placement int

const (
	// Bottom slides the overlay up from the bottom edge.
	Bottom Placement = iota
	// Top slides the overlay down from the top edge.
	Top
	// Left slides the overlay in from the left edge.
	Left
	// Right slides the overlay in from the right edge.
	Right
)

// Axis is the direction of overlay travel.
type Axis int

const (
	// Vertical travel moves along y and is sized by the overlay's height.
	Vertical Axis = iota
	// Horizontal travel moves along x and is sized by the overlay's width.
	Horizontal
)

// ErrInvalidPlacement is returned by ParsePlacement for an unknown name.
var ErrInvalidPlacement = errors.New("invalid placement")

func (p Placement) String() string {
	switch p {
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Placement(%d)", int(p))
	}
}

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParsePlacement parses top, right, bottom or left (case-insensitive).
func ParsePlacement(s string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bottom":
		return Bottom, nil
	case "top":
		return Top, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Bottom, fmt.Errorf("%w %q: want top, right, bottom or left", ErrInvalidPlacement, s)
	}
}

// Axis returns the axis the overlay travels along.
func (p Placement) Axis() Axis {
	if p == Left || p == Right {
		return Horizontal
	}
	return Vertical
}

// Offscreen returns the signed translation that places the overlay fully
// outside its edge: -height for top, +height for bottom, -width for left and
// +width for right. It is 0 when the relevant dimension is unknown.
func (p Placement) Offscreen(e Extent) float64 {
	switch p {
	case Top:
		return -e.Height
	case Bottom:
		return e.Height
	case Left:
		return -e.Width
	case Right:
		return e.Width
	default:
		return 0
	}
}
