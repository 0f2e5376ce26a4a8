package pipe

import (
	"sync"

	"github.com/google/uuid"
)

// Bag owns a set of Tokens for a component holding several independent
// subscriptions (a view model, a service). Releasing the bag releases
// every token exactly once; tokens added after release are released
// immediately. The zero value is ready to use.
type Bag struct {
	mu       sync.Mutex
	released bool
	tokens   map[uuid.UUID]*Token
}

// Add stores t in the bag. If the bag was already released, t is released
// on the spot.
func (b *Bag) Add(t *Token) {
	b.mu.Lock()
	if b.released {
		b.mu.Unlock()
		t.Release()
		return
	}
	if b.tokens == nil {
		b.tokens = make(map[uuid.UUID]*Token)
	}
	b.tokens[t.ID()] = t
	b.mu.Unlock()
}

// Release releases every stored token and marks the bag released.
// Token.Release is idempotent, so tokens whose subscriptions already
// completed are no-ops. Safe to call more than once and concurrently with
// completing pipelines.
func (b *Bag) Release() {
	b.mu.Lock()
	if b.released {
		b.mu.Unlock()
		return
	}
	b.released = true
	tokens := b.tokens
	b.tokens = nil
	b.mu.Unlock()

	for _, t := range tokens {
		t.Release()
	}
}

// Len returns the number of stored tokens.
func (b *Bag) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.tokens)
}
