// Package overlay animates a modal that slides in from one screen edge.
//
// A [Controller] owns two channels: the translation along the placement's
// axis and the opacity that dims the backdrop. Flipping the visibility intent
// runs both channels together; the controller moves through the phases
//
//	Exited ──SetVisible(true)──► Entering ──settled──► Entered
//	  ▲                                                   │
//	  └────settled──── Exiting ◄──SetVisible(false)───────┘
//
// and calls OnClosed once each time Exiting settles into Exited. Changing the
// intent mid-flight retargets the running channels; the superseded transition
// never completes.
//
// Travel distance comes from the first non-zero layout measurement. Until one
// arrives the controller records the intent and does not move.
package overlay

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-drift/motion/pkg/animation"
)

// Phase is the position of the controller in its open/close cycle.
type Phase int

const (
	// Exited means the overlay is fully hidden.
	Exited Phase = iota
	// Entering means the open animation is running.
	Entering
	// Entered means the overlay is fully shown.
	Entered
	// Exiting means the close animation is running.
	Exiting
)

func (p Phase) String() string {
	switch p {
	case Exited:
		return "exited"
	case Entering:
		return "entering"
	case Entered:
		return "entered"
	case Exiting:
		return "exiting"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is a snapshot of the controller's intent and phase.
type State struct {
	Visible bool
	Phase   Phase
}

// DefaultFadeDuration is the opacity transition length when Options.Fade is nil.
const DefaultFadeDuration = 150 * time.Millisecond

// Options configures a Controller.
type Options struct {
	// Placement is the edge the overlay enters from. Defaults to Bottom.
	Placement Placement
	// Translate drives the slide. Nil uses animation.DefaultSpring.
	Translate animation.Motion
	// Fade drives the opacity. Nil uses a DefaultFadeDuration ease-out timing.
	Fade animation.Motion
	// OnClosed is called once per completed close transition.
	OnClosed func()
	// Logger receives debug records for phase changes. Nil disables logging.
	Logger *slog.Logger
}

// Controller runs the open and close transitions of a directional overlay.
type Controller struct {
	placement   Placement
	cell        ExtentCell
	translation *animation.Channel
	opacity     *animation.Channel
	group       animation.Group

	visible  bool
	phase    Phase
	onClosed func()
	logger   *slog.Logger

	phaseListeners map[int]func(Phase)
	nextListenerID int
}

// NewController creates a hidden controller.
func NewController(opts Options) *Controller {
	fade := opts.Fade
	if fade == nil {
		fade = animation.TimingMotion{Duration: DefaultFadeDuration, Curve: animation.EaseOut}
	}
	translate := opts.Translate
	if translate == nil {
		translate = animation.DefaultSpring()
	}
	return &Controller{
		placement:      opts.Placement,
		translation:    animation.NewChannel(0, translate),
		opacity:        animation.NewChannel(0, fade),
		phase:          Exited,
		onClosed:       opts.OnClosed,
		logger:         opts.Logger,
		phaseListeners: make(map[int]func(Phase)),
	}
}

// Placement returns the edge the overlay enters from.
func (c *Controller) Placement() Placement {
	return c.placement
}

// Visible returns the most recent visibility intent.
func (c *Controller) Visible() bool {
	return c.visible
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// State returns the current intent and phase.
func (c *Controller) State() State {
	return State{Visible: c.visible, Phase: c.phase}
}

// Extent returns the captured layout extent.
func (c *Controller) Extent() Extent {
	return c.cell.Extent()
}

// Translation returns a read-only handle on the slide offset along the axis.
func (c *Controller) Translation() animation.ValueListenable {
	return c.translation.ReadOnly()
}

// Opacity returns a read-only handle on the overlay opacity.
func (c *Controller) Opacity() animation.ValueListenable {
	return c.opacity.ReadOnly()
}

// Backdrop returns the channel the backdrop dims with. It is the opacity
// channel; the backdrop and the content fade together.
func (c *Controller) Backdrop() animation.ValueListenable {
	return c.Opacity()
}

// Translate returns the current offset as (dx, dy).
func (c *Controller) Translate() (dx, dy float64) {
	if c.placement.Axis() == Horizontal {
		return c.translation.Value(), 0
	}
	return 0, c.translation.Value()
}

// IsAnimating reports whether either channel is moving.
func (c *Controller) IsAnimating() bool {
	return c.translation.IsAnimating() || c.opacity.IsAnimating()
}

// AddPhaseListener registers fn to run on every phase change.
// Returns an unsubscribe function.
func (c *Controller) AddPhaseListener(fn func(Phase)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.phaseListeners[id] = fn
	return func() {
		delete(c.phaseListeners, id)
	}
}

// OnLayout reports a measurement of the overlay content. Only the first
// positive size along the placement's axis is kept. If the intent is visible
// at that point the open transition starts.
func (c *Controller) OnLayout(e Extent) {
	axis := c.placement.Axis()
	if !c.cell.Capture(e, axis) {
		return
	}
	c.debug("overlay extent captured", "axis", axis.String(), "height", c.cell.Extent().Height, "width", c.cell.Extent().Width)

	if c.visible {
		c.transition()
		return
	}
	if c.phase == Exited {
		c.translation.Set(c.offscreen())
	}
}

// SetVisible records the visibility intent and starts the matching transition.
// Setting the intent it already holds does nothing.
func (c *Controller) SetVisible(visible bool) {
	if visible == c.visible {
		return
	}
	c.visible = visible
	c.transition()
}

// Show is SetVisible(true).
func (c *Controller) Show() {
	c.SetVisible(true)
}

// Dismiss is SetVisible(false). Backdrop taps and other dismiss gestures call it.
func (c *Controller) Dismiss() {
	c.SetVisible(false)
}

// Dispose stops both channels. No completion callback runs afterwards.
func (c *Controller) Dispose() {
	c.group.Cancel()
	c.translation.Dispose()
	c.opacity.Dispose()
	c.phaseListeners = nil
}

func (c *Controller) offscreen() float64 {
	return c.placement.Offscreen(c.cell.Extent())
}

func (c *Controller) transition() {
	offscreen := c.offscreen()
	if offscreen == 0 {
		c.debug("overlay transition skipped: extent not measured", "visible", c.visible)
		return
	}

	if c.visible {
		// Only a fresh open starts from the edge; reopening while closing
		// turns the channels around where they are.
		if c.phase == Exited {
			c.translation.Set(offscreen)
		}
		c.setPhase(Entering)
		c.group.Run(c.entered,
			animation.Move{Channel: c.translation, Target: 0},
			animation.Move{Channel: c.opacity, Target: 1},
		)
		return
	}

	c.setPhase(Exiting)
	c.group.Run(c.exited,
		animation.Move{Channel: c.translation, Target: offscreen},
		animation.Move{Channel: c.opacity, Target: 0},
	)
}

func (c *Controller) entered() {
	c.setPhase(Entered)
}

func (c *Controller) exited() {
	c.setPhase(Exited)
	if c.onClosed != nil {
		c.onClosed()
	}
}

func (c *Controller) setPhase(p Phase) {
	if p == c.phase {
		return
	}
	prev := c.phase
	c.phase = p
	c.debug("overlay phase", "from", prev.String(), "to", p.String())
	for _, fn := range c.phaseListeners {
		fn(p)
	}
}

func (c *Controller) debug(msg string, args ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Debug(msg, append([]any{"placement", c.placement.String()}, args...)...)
}
