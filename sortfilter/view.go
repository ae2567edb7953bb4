// Package sortfilter projects a collection for display: a case-insensitive
// substring filter over a few text fields followed by a single-key sort.
package sortfilter

import (
	"cmp"
	"slices"
	"strings"
	"sync"
)

// Direction is the order of a sort.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// Config is the active sort of a view.
type Config[K comparable] struct {
	Key       K
	Direction Direction
}

// Compare orders two items ascending on one key: negative when a < b,
// positive when a > b, zero otherwise.
type Compare[T any] func(a, b T) int

// Params configures a View.
type Params[T any, K comparable] struct {
	// Fields are the text fields matched by the search term.
	Fields []func(T) string
	// Keys maps each sortable key to its ascending comparison.
	Keys map[K]Compare[T]
}

// View holds a source collection, a search term and an optional sort, and
// produces the filtered and sorted rows. The source slice is never modified.
type View[T any, K comparable] struct {
	fields []func(T) string
	keys   map[K]Compare[T]

	mu    sync.Mutex
	items []T
	term  string
	sort  *Config[K]
	rows  []T
	stale bool
}

// New creates an empty View.
func New[T any, K comparable](p Params[T, K]) *View[T, K] {
	return &View[T, K]{
		fields: p.Fields,
		keys:   p.Keys,
		stale:  true,
	}
}

// SetItems replaces the source collection.
func (v *View[T, K]) SetItems(items []T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.items = items
	v.stale = true
}

// Items returns the source collection.
func (v *View[T, K]) Items() []T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.items
}

// SetSearchTerm replaces the search term.
func (v *View[T, K]) SetSearchTerm(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if term == v.term {
		return
	}
	v.term = term
	v.stale = true
}

// SearchTerm returns the current search term.
func (v *View[T, K]) SearchTerm() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.term
}

// RequestSort toggles the sort on key. A new key sorts ascending; repeating
// the active key flips between ascending and descending. Once a key has been
// chosen the view never returns to unsorted. Keys with no comparison are ignored.
func (v *View[T, K]) RequestSort(key K) {
	if _, ok := v.keys[key]; !ok {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sort = NextConfig(v.sort, key)
	v.stale = true
}

// SortConfig returns the active sort, if any.
func (v *View[T, K]) SortConfig() (Config[K], bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.sort == nil {
		return Config[K]{}, false
	}
	return *v.sort, true
}

// Rows returns the filtered and sorted projection. The result is cached until
// the items, term or sort change; callers must not modify it.
func (v *View[T, K]) Rows() []T {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.stale {
		rows := Filter(v.items, v.term, v.fields...)
		if v.sort != nil {
			Sort(rows, v.sort.Direction, v.keys[v.sort.Key])
		}
		v.rows = rows
		v.stale = false
	}
	return v.rows
}

// Len returns the number of projected rows.
func (v *View[T, K]) Len() int {
	return len(v.Rows())
}

// NextConfig applies the sort toggle rule to cur for a request on key.
func NextConfig[K comparable](cur *Config[K], key K) *Config[K] {
	dir := Ascending
	if cur != nil && cur.Key == key && cur.Direction == Ascending {
		dir = Descending
	}
	return &Config[K]{Key: key, Direction: dir}
}

// Filter returns a new slice holding the items where the lowercased term is a
// substring of at least one lowercased field. An empty term keeps every item.
func Filter[T any](items []T, term string, fields ...func(T) string) []T {
	out := make([]T, 0, len(items))
	if term == "" {
		return append(out, items...)
	}
	needle := strings.ToLower(term)
	for _, item := range items {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Sort orders items in place by compare. Descending inverts the comparison.
// Items with equal keys keep their relative order.
func Sort[T any](items []T, dir Direction, compare Compare[T]) {
	if compare == nil {
		return
	}
	if dir == Descending {
		slices.SortStableFunc(items, func(a, b T) int { return -compare(a, b) })
		return
	}
	slices.SortStableFunc(items, compare)
}

// By builds an ascending comparison from a key extractor. The key is derived
// on every comparison.
func By[T any, V cmp.Ordered](key func(T) V) Compare[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}
