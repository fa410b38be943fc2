// Package notice holds the short-lived status line the register shows after
// an action, such as "Sale #12 finalized". It carries no business state.
package notice

import (
	"sync"
	"time"
)

type Board struct {
	ttl time.Duration

	mu      sync.Mutex
	message string
	timer   *time.Timer
	gen     uint64
}

func NewBoard(ttl time.Duration) *Board {
	return &Board{ttl: ttl}
}

// Post shows msg until the ttl elapses or another message replaces it.
func (b *Board) Post(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
	}
	b.gen++
	gen := b.gen
	b.message = msg
	b.timer = time.AfterFunc(b.ttl, func() { b.expire(gen) })
}

func (b *Board) expire(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	// A newer Post may have raced with this timer firing.
	if b.gen == gen {
		b.message = ""
		b.timer = nil
	}
}

func (b *Board) Current() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.message
}

// Stop cancels any pending clear and empties the board.
func (b *Board) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.gen++
	b.message = ""
}
