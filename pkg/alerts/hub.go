package alerts

import (
	"context"
	"sync"
)

// Hub fans alerts out to subscribers. Publishing is non-blocking: alerts are
// dropped for subscribers whose buffer is full. All methods are safe for
// concurrent use.
type Hub struct {
	subscribers map[chan Alert]struct{}
	bufferSize  int
	closed      bool
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup // tracks context-cancellation cleanup goroutines
}

// NewHub creates a hub whose subscribers buffer up to bufferSize alerts.
// A minimum buffer size of 1 is enforced; a zero-buffer channel would make
// every publish blocking and defeat the non-blocking design.
func NewHub(bufferSize int) *Hub {
	return &Hub{
		subscribers: make(map[chan Alert]struct{}),
		bufferSize:  max(bufferSize, 1),
	}
}

// Subscribe registers a new subscriber and returns its receive channel.
// The subscription is removed and the channel closed when ctx is cancelled
// or the hub is closed. Subscribing to a closed hub returns a closed channel.
func (h *Hub) Subscribe(ctx context.Context) <-chan Alert {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Alert, h.bufferSize)
	if h.closed {
		close(ch)
		return ch
	}

	h.subscribers[ch] = struct{}{}

	if ctx.Done() != nil {
		h.cleanupWg.Add(1)
		go func() {
			defer h.cleanupWg.Done()
			<-ctx.Done()
			h.unsubscribe(ch)
		}()
	}

	return ch
}

// Publish delivers the alert to all current subscribers, dropping it for any
// subscriber whose buffer is full. Publishing to a closed hub is a no-op.
func (h *Hub) Publish(a Alert) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}

	for ch := range h.subscribers {
		select {
		case ch <- a:
		default:
			// Slow consumer: drop rather than block the publisher.
		}
	}
}

// Close shuts down the hub and closes all subscriber channels.
// It is safe to call Close multiple times.
func (h *Hub) Close() {
	h.mu.Lock()

	if h.closed {
		h.mu.Unlock()
		return
	}

	h.closed = true
	for ch := range h.subscribers {
		close(ch)
	}
	clear(h.subscribers)
	h.mu.Unlock()

	// Wait for cleanup goroutines so late context cancellations cannot race
	// with a closed hub.
	h.cleanupWg.Wait()
}

func (h *Hub) unsubscribe(ch chan Alert) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[ch]; !ok {
		return
	}
	delete(h.subscribers, ch)
	close(ch)
}
