// Package wheel implements the animation side of a wheel-style value picker.
//
// The picker owns one driver channel holding the current center position in
// item-index units. A scroll or drag collaborator writes to it through
// [Picker.Driver]; every item reads it through a read-only handle and maps its
// distance from the center to opacity, scale and rotation with the shared
// interpolation curves.
package wheel

import (
	"math"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/interpolation"
)

// Option is a selectable entry supplied by the host.
type Option[T comparable] struct {
	Label string
	Value T
}

// Item is an option placed at a fixed position in the wheel.
type Item[T comparable] struct {
	Label string
	Value T
	Index int
}

// Transform is the instantaneous appearance of one item.
type Transform struct {
	Opacity         float64
	Scale           float64
	RotationDegrees float64
}

// ItemMotion exposes an item's animated outputs. The values are derived from
// the picker's driver on every read, so they stay live whether or not the
// item's row is rebuilt.
type ItemMotion struct {
	Index    int
	Distance animation.ValueListenable
	Opacity  animation.ValueListenable
	Scale    animation.ValueListenable
	Rotation animation.ValueListenable
}

// Transform returns the item's current outputs.
func (m ItemMotion) Transform() Transform {
	return Transform{
		Opacity:         m.Opacity.Value(),
		Scale:           m.Scale.Value(),
		RotationDegrees: m.Rotation.Value(),
	}
}

// DefaultItemHeight is the row height used when Config.ItemHeight is not set.
const DefaultItemHeight = 40.0

// Config configures a Picker.
type Config struct {
	// VisibleRest is the number of partially visible neighbors on each side
	// of the center. Negative values are treated as 0.
	VisibleRest int
	// InitialIndex is the item centered at construction.
	InitialIndex int
	// ItemHeight is the row height that converts a scroll offset into item
	// units. Zero or negative uses DefaultItemHeight.
	ItemHeight float64
	// Motion drives SelectIndex animations. Nil uses animation.DefaultSpring.
	Motion animation.Motion
	// OnSelected is called when a SelectIndex animation settles.
	OnSelected func(index int)
}

// Picker maps a continuous center position to per-item transforms.
type Picker[T comparable] struct {
	items      []Item[T]
	curves     interpolation.Curves
	driver     *animation.Channel
	itemHeight float64
	onSelected func(int)
}

// NewPicker places options at indexes 0..len-1 and centers InitialIndex.
func NewPicker[T comparable](options []Option[T], cfg Config) *Picker[T] {
	items := make([]Item[T], len(options))
	for i, opt := range options {
		items[i] = Item[T]{Label: opt.Label, Value: opt.Value, Index: i}
	}
	itemHeight := cfg.ItemHeight
	if itemHeight <= 0 {
		itemHeight = DefaultItemHeight
	}
	p := &Picker[T]{
		items:      items,
		curves:     interpolation.BuildCurves(cfg.VisibleRest),
		itemHeight: itemHeight,
		onSelected: cfg.OnSelected,
	}
	p.driver = animation.NewChannel(float64(p.clampIndex(cfg.InitialIndex)), cfg.Motion)
	return p
}

// Items returns the wheel items in index order.
func (p *Picker[T]) Items() []Item[T] {
	return append([]Item[T](nil), p.items...)
}

// Len returns the number of items.
func (p *Picker[T]) Len() int {
	return len(p.items)
}

// VisibleRest returns the number of neighbors shown on each side.
func (p *Picker[T]) VisibleRest() int {
	return p.curves.VisibleRest
}

// SetVisibleRest rebuilds the interpolation curves. Item motions created
// earlier read the new curves from their next evaluation.
func (p *Picker[T]) SetVisibleRest(rest int) {
	rest = max(rest, 0)
	if rest == p.curves.VisibleRest {
		return
	}
	p.curves = interpolation.BuildCurves(rest)
}

// Curves returns the shared interpolation curves.
func (p *Picker[T]) Curves() interpolation.Curves {
	return p.curves
}

// Driver returns the write handle on the center position, for the scroll or
// drag collaborator. Item code should use Position instead.
func (p *Picker[T]) Driver() *animation.Channel {
	return p.driver
}

// ItemHeight returns the row height used for scroll offsets.
func (p *Picker[T]) ItemHeight() float64 {
	return p.itemHeight
}

// Offset returns the center position as a scroll offset.
func (p *Picker[T]) Offset() float64 {
	return p.driver.Value() * p.itemHeight
}

// ScrollTo moves the center to a scroll offset, as reported by a drag or
// scroll collaborator. Any running selection animation stops and its
// OnSelected is dropped. Call Settle when the drag is released.
func (p *Picker[T]) ScrollTo(offset float64) {
	p.driver.Set(offset / p.itemHeight)
}

// ScrollBy moves the center by delta in scroll offset units.
func (p *Picker[T]) ScrollBy(delta float64) {
	p.ScrollTo(p.Offset() + delta)
}

// Position returns a read-only handle on the center position.
func (p *Picker[T]) Position() animation.ValueListenable {
	return p.driver.ReadOnly()
}

// Transform returns the current outputs for the item at index.
func (p *Picker[T]) Transform(index int) Transform {
	o, s, r := p.curves.At(float64(index) - p.driver.Value())
	return Transform{Opacity: o, Scale: s, RotationDegrees: r}
}

// Motion returns the animated outputs of the item at index.
func (p *Picker[T]) Motion(index int) ItemMotion {
	position := p.driver.ReadOnly()
	at := float64(index)
	distance := animation.Derive(position, func(v float64) float64 { return at - v })
	return ItemMotion{
		Index:    index,
		Distance: distance,
		Opacity:  animation.Derive(distance, func(d float64) float64 { return p.curves.Opacity.Evaluate(d) }),
		Scale:    animation.Derive(distance, func(d float64) float64 { return p.curves.Scale.Evaluate(d) }),
		Rotation: animation.Derive(distance, func(d float64) float64 { return p.curves.Rotation.Evaluate(d) }),
	}
}

// Selected returns the index nearest to the center position.
func (p *Picker[T]) Selected() int {
	return p.clampIndex(int(math.Round(p.driver.Value())))
}

// SelectedItem returns the item nearest to the center position.
// ok is false when the picker has no items.
func (p *Picker[T]) SelectedItem() (item Item[T], ok bool) {
	if len(p.items) == 0 {
		return Item[T]{}, false
	}
	return p.items[p.Selected()], true
}

// SelectIndex animates the center to index, clamped to the item range.
// OnSelected runs when the animation settles; it does not run if the driver
// is moved again first.
func (p *Picker[T]) SelectIndex(index int) {
	index = p.clampIndex(index)
	p.driver.AnimateToThen(float64(index), func() {
		if p.onSelected != nil {
			p.onSelected(index)
		}
	})
}

// Settle animates the center to the nearest index, as after a drag ends.
func (p *Picker[T]) Settle() {
	p.SelectIndex(p.Selected())
}

// Visible returns the indexes within VisibleRest+1 items of the center, the
// range over which the curves are not yet flat.
func (p *Picker[T]) Visible() []int {
	if len(p.items) == 0 {
		return nil
	}
	reach := float64(p.curves.VisibleRest + 1)
	center := p.driver.Value()
	lo := p.clampIndex(int(math.Ceil(center - reach)))
	hi := p.clampIndex(int(math.Floor(center + reach)))
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}

// Dispose stops the driver and drops its listeners.
func (p *Picker[T]) Dispose() {
	p.driver.Dispose()
}

func (p *Picker[T]) clampIndex(i int) int {
	if len(p.items) == 0 {
		return 0
	}
	return min(max(i, 0), len(p.items)-1)
}
