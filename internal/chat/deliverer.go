package chat

import (
	"context"
	"math/rand/v2"
	"sync/atomic"
	"time"
)

// Default pacing interval between chunk deliveries.
const (
	DefaultMinDelay = 1000 * time.Millisecond
	DefaultMaxDelay = 2500 * time.Millisecond
)

// Sink receives progressively delivered chunks and typing-indicator changes.
type Sink interface {
	AppendChunk(chunk string)
	SetTyping(typing bool)
}

// Deliverer paces chunk delivery with a randomized delay between chunks.
// Each Deliver call bumps an internal generation counter, so starting a new
// sequence implicitly invalidates any in-flight one: stale deliveries check
// the counter before every append and no-op once superseded.
type Deliverer struct {
	minDelay time.Duration
	maxDelay time.Duration
	gen      atomic.Uint64
}

// NewDeliverer creates a Deliverer. Non-positive bounds fall back to the
// defaults.
func NewDeliverer(minDelay, maxDelay time.Duration) *Deliverer {
	if minDelay <= 0 {
		minDelay = DefaultMinDelay
	}
	if maxDelay < minDelay {
		maxDelay = DefaultMaxDelay
	}
	return &Deliverer{minDelay: minDelay, maxDelay: maxDelay}
}

// Deliver appends chunks to sink one at a time, waiting a randomized delay
// after every chunk except the last. The typing indicator is raised before
// the first chunk and lowered when the sequence finishes, unless a newer
// sequence has taken over the sink in the meantime. Deliver blocks until the
// sequence completes, is superseded, or ctx is done.
func (d *Deliverer) Deliver(ctx context.Context, chunks []string, sink Sink) {
	gen := d.gen.Add(1)
	if len(chunks) == 0 {
		return
	}

	sink.SetTyping(true)
	defer func() {
		if d.gen.Load() == gen {
			sink.SetTyping(false)
		}
	}()

	for i, chunk := range chunks {
		if d.gen.Load() != gen || ctx.Err() != nil {
			return
		}
		sink.AppendChunk(chunk)
		if i == len(chunks)-1 {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(d.delay()):
		}
	}
}

// Cancel invalidates any in-flight delivery without starting a new one.
func (d *Deliverer) Cancel() {
	d.gen.Add(1)
}

func (d *Deliverer) delay() time.Duration {
	span := d.maxDelay - d.minDelay
	if span <= 0 {
		return d.minDelay
	}
	return d.minDelay + time.Duration(rand.Int64N(int64(span)))
}
