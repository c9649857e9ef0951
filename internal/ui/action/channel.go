package action

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrClosed is returned when sending on a channel whose consumer is gone.
	ErrClosed = errors.New("action channel closed")
	// ErrFull is returned when the channel buffer cannot take another message.
	ErrFull = errors.New("action channel full")
)

// Sender is the write side handed to rows and other producers.
type Sender interface {
	Send(Msg) error
}

// Channel is a buffered many-producer, single-consumer queue of action messages.
// Send never blocks. Close may be called from any goroutine, any number of times.
type Channel struct {
	mu     sync.RWMutex
	ch     chan Msg
	closed bool
}

// NewChannel creates a channel buffering up to size messages.
func NewChannel(size int) *Channel {
	if size < 1 {
		size = 1
	}
	return &Channel{ch: make(chan Msg, size)}
}

// Send enqueues m without blocking.
func (c *Channel) Send(m Msg) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClosed
	}
	select {
	case c.ch <- m:
		return nil
	default:
		return fmt.Errorf("%w (capacity %d)", ErrFull, cap(c.ch))
	}
}

// Receive returns the read side. It is closed after Close once drained.
func (c *Channel) Receive() <-chan Msg {
	return c.ch
}

// Close stops accepting messages.
func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.ch)
}

// Len returns the number of queued messages.
func (c *Channel) Len() int {
	return len(c.ch)
}
