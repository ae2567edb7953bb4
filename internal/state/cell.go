// Package state provides a small observable value shared across the UI.
package state

import "sync"

// Cell holds a value and notifies subscribers whenever it changes.
// Subscribers are called after the lock is released, in subscription order.
type Cell[T any] struct {
	mu     sync.RWMutex
	value  T
	subs   []subscriber[T]
	nextID int
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// NewCell creates a Cell holding initial.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set replaces the value and notifies subscribers.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	subs := c.snapshot()
	c.mu.Unlock()
	notify(subs, v)
}

// Update applies fn to the current value under the lock. Subscribers are
// notified only when fn reports a change.
func (c *Cell[T]) Update(fn func(T) (T, bool)) T {
	c.mu.Lock()
	next, changed := fn(c.value)
	if !changed {
		v := c.value
		c.mu.Unlock()
		return v
	}
	c.value = next
	subs := c.snapshot()
	c.mu.Unlock()
	notify(subs, next)
	return next
}

// Subscribe registers fn to receive every new value. The returned function
// removes the subscription.
func (c *Cell[T]) Subscribe(fn func(T)) (cancel func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs = append(c.subs, subscriber[T]{id: id, fn: fn})
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			for i, s := range c.subs {
				if s.id == id {
					c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// snapshot copies the subscriber list. Callers must hold mu.
func (c *Cell[T]) snapshot() []subscriber[T] {
	if len(c.subs) == 0 {
		return nil
	}
	out := make([]subscriber[T], len(c.subs))
	copy(out, c.subs)
	return out
}

func notify[T any](subs []subscriber[T], v T) {
	for _, s := range subs {
		s.fn(v)
	}
}
