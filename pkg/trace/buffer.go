// Package trace records per-frame animation samples and exports them as
// JSON, YAML or CBOR.
package trace

import (
	"sync"
)

const defaultCapacity = 600

// Sample is a single frame of animation state.
type Sample struct {
	Frame       int          `json:"frame" yaml:"frame"`
	ElapsedMs   float64      `json:"elapsedMs" yaml:"elapsedMs"`
	Phase       string       `json:"phase,omitempty" yaml:"phase,omitempty"`
	Translation float64      `json:"translation" yaml:"translation"`
	Opacity     float64      `json:"opacity" yaml:"opacity"`
	Position    float64      `json:"position" yaml:"position"`
	Items       []ItemSample `json:"items,omitempty" yaml:"items,omitempty"`
}

// ItemSample is the transform of one wheel item in a frame.
type ItemSample struct {
	Index    int     `json:"index" yaml:"index"`
	Distance float64 `json:"distance" yaml:"distance"`
	Opacity  float64 `json:"opacity" yaml:"opacity"`
	Scale    float64 `json:"scale" yaml:"scale"`
	Rotation float64 `json:"rotation" yaml:"rotation"`
}

// Timeline is the exported shape of a recording.
type Timeline struct {
	Samples []Sample `json:"samples" yaml:"samples"`
	// Dropped counts samples overwritten once the buffer was full.
	Dropped int `json:"dropped" yaml:"dropped"`
}

// Buffer stores recent samples in a ring buffer.
type Buffer struct {
	mu      sync.RWMutex
	samples []Sample
	index   int
	count   int
	dropped int
}

// NewBuffer creates a buffer holding up to capacity samples.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Buffer{samples: make([]Sample, capacity)}
}

// Capacity returns the buffer capacity.
func (b *Buffer) Capacity() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.samples)
}

// Add records a sample, overwriting the oldest one when full.
func (b *Buffer) Add(sample Sample) {
	b.mu.Lock()
	b.samples[b.index] = sample
	b.index = (b.index + 1) % len(b.samples)
	if b.count < len(b.samples) {
		b.count++
	} else {
		b.dropped++
	}
	b.mu.Unlock()
}

// Len returns the number of samples held.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}

// Dropped returns the number of overwritten samples.
func (b *Buffer) Dropped() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dropped
}

// Samples returns a chronological copy of the held samples.
func (b *Buffer) Samples() []Sample {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.count == 0 {
		return nil
	}
	result := make([]Sample, b.count)
	if b.count < len(b.samples) {
		copy(result, b.samples[:b.count])
	} else {
		copy(result, b.samples[b.index:])
		copy(result[len(b.samples)-b.index:], b.samples[:b.index])
	}
	return result
}

// Snapshot returns the samples and drop count as a Timeline.
func (b *Buffer) Snapshot() Timeline {
	samples := b.Samples()
	return Timeline{Samples: samples, Dropped: b.Dropped()}
}

// Reset discards all samples.
func (b *Buffer) Reset() {
	b.mu.Lock()
	clear(b.samples)
	b.index, b.count, b.dropped = 0, 0, 0
	b.mu.Unlock()
}
