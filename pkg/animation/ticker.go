// Package animation provides the frame-stepped animated values shared by the
// wheel picker and the directional overlay.
//
// # Core Components
//
//   - [Scalar]: a mutable number with change listeners. Consumers receive a
//     [ValueListenable] so that only the owner can write.
//
//   - [Channel]: a Scalar driven toward a target by a [Motion]. Retargeting an
//     animating channel updates the target in place and keeps its velocity.
//
//   - [Motion]: a step function. [SpringMotion] converges without overshoot,
//     [TimingMotion] follows a duration and easing curve.
//
//   - [Group]: runs several channels concurrently and reports completion once
//     every channel has settled, unless a newer run superseded it.
//
// # Scheduling
//
// Nothing in this package starts goroutines. The host calls [StepTickers] once
// per frame from its render loop; every active channel advances on that call.
// All mutation happens on that single path, so values need no locking.
package animation

import (
	"sync"
	"time"

	"github.com/go-drift/motion/pkg/errors"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start was called.
// Tickers are advanced by [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start activates the ticker. Starting an active ticker is a no-op.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers. The host calls it once per frame.
//
// A panicking callback is reported through the errors package and does not
// prevent the remaining tickers from stepping.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			stepTicker(ticker, now.Sub(ticker.start))
		}
	}
}

func stepTicker(t *Ticker, elapsed time.Duration) {
	defer errors.Recover("animation.StepTickers")
	t.callback(elapsed)
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}

// ActiveTickers returns the number of running tickers.
func ActiveTickers() int {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers)
}
