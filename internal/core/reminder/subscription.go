package reminder

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Source produces messages into out until ctx is done.
type Source interface {
	Run(ctx context.Context, out chan<- Message)
}

// Ticker emits Tick at a fixed interval.
type Ticker struct {
	interval time.Duration
}

// Every returns a Ticker firing once per interval. Non-positive intervals
// fall back to one second.
func Every(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{interval: interval}
}

// Run emits ticks until ctx is done.
func (ticker *Ticker) Run(ctx context.Context, out chan<- Message) {
	timer := time.NewTicker(ticker.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			if !send(ctx, out, Tick{}) {
				return
			}
		}
	}
}

// InputStream turns raw platform input events into messages.
type InputStream struct {
	events  chan InputEvent
	dropped atomic.Int64
}

// NewInputStream creates a stream holding up to buffer pending events.
func NewInputStream(buffer int) *InputStream {
	if buffer <= 0 {
		buffer = 1
	}
	return &InputStream{events: make(chan InputEvent, buffer)}
}

// Push queues an event without blocking the caller. It reports false when
// the buffer is full and the event was dropped.
func (stream *InputStream) Push(event InputEvent) bool {
	select {
	case stream.events <- event:
		return true
	default:
		stream.dropped.Add(1)
		return false
	}
}

// Dropped returns how many events were discarded because the buffer was full.
func (stream *InputStream) Dropped() int64 {
	return stream.dropped.Load()
}

// Run forwards one message per queued event until ctx is done.
func (stream *InputStream) Run(ctx context.Context, out chan<- Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-stream.events:
			if !send(ctx, out, MessageForInput(event)) {
				return
			}
		}
	}
}

// Batch runs several sources concurrently into the same queue. Order is kept
// within each source only.
type Batch []Source

// Run starts every source and waits for all of them to return.
func (batch Batch) Run(ctx context.Context, out chan<- Message) {
	var wg sync.WaitGroup
	for _, source := range batch {
		if source == nil {
			continue
		}
		wg.Add(1)
		go func(source Source) {
			defer wg.Done()
			source.Run(ctx, out)
		}(source)
	}
	wg.Wait()
}

func send(ctx context.Context, out chan<- Message, msg Message) bool {
	select {
	case <-ctx.Done():
		return false
	case out <- msg:
		return true
	}
}
