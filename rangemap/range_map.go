package rangemap

import (
	"cmp"
	"fmt"
	"log"
	"log/slog"
	"strings"
)

// Breakpoint marks the start of an interval of constant value. The value
// holds from Key (inclusive) up to the next breakpoint's key.
type Breakpoint[K any, V any] struct {
	Key   K
	Value V
}

// breakpointStore is an ordered collection of breakpoints with unique keys.
type breakpointStore[K any, V any] interface {
	// floor returns the breakpoint with the greatest key <= key.
	floor(key K) (Breakpoint[K, V], bool)
	// lower returns the breakpoint with the greatest key < key.
	lower(key K) (Breakpoint[K, V], bool)
	get(key K) (Breakpoint[K, V], bool)

	// insert adds a breakpoint. The key must not be present.
	insert(bp Breakpoint[K, V])
	remove(key K) bool
	// removeRange deletes every breakpoint with a key in [begin, end), and
	// returns the number removed.
	removeRange(begin, end K) int

	ascend(iter func(Breakpoint[K, V]) bool)
	len() int
	clear()
}

// Map associates every key in K with a value. Values are assigned over
// half-open intervals, and stored as a canonical sequence of breakpoints:
// no breakpoint carries the same value as the interval to its left.
//
// Map is not safe for concurrent use.
type Map[K any, V comparable] struct {
	background V
	less       func(a, b K) bool
	store      breakpointStore[K, V]
	logger     *slog.Logger
}

// New returns a map where every key is associated with background, ordered
// by the natural order of K.
func New[K cmp.Ordered, V comparable](background V) *Map[K, V] {
	return NewFunc[K](background, cmp.Less[K])
}

// NewFunc is like New, but orders keys with less.
func NewFunc[K any, V comparable](background V, less func(a, b K) bool) *Map[K, V] {
	m, err := NewWithOptions[K](background, Options[K]{Less: less})
	if err != nil {
		panic(err)
	}
	return m
}

// Background returns the value of every key below the first breakpoint.
func (m *Map[K, V]) Background() V {
	return m.background
}

// Len returns the number of stored breakpoints.
func (m *Map[K, V]) Len() int {
	return m.store.len()
}

// Get returns the value associated with key.
func (m *Map[K, V]) Get(key K) V {
	bp, ok := m.store.floor(key)
	if !ok {
		return m.background
	}
	return bp.Value
}

// valueBefore returns the value of the interval immediately to the left of
// key.
func (m *Map[K, V]) valueBefore(key K) V {
	bp, ok := m.store.lower(key)
	if !ok {
		return m.background
	}
	return bp.Value
}

// Assign associates val with every key in [keyBegin, keyEnd). Keys outside
// that interval keep their value. If !(keyBegin < keyEnd), Assign does
// nothing.
func (m *Map[K, V]) Assign(keyBegin, keyEnd K, val V) {
	if !m.less(keyBegin, keyEnd) {
		return
	}

	// The value at keyEnd must survive the assignment. If a breakpoint starts
	// exactly at keyEnd, it already carries that value.
	tailVal := m.Get(keyEnd)
	_, endMarked := m.store.get(keyEnd)
	leftVal := m.valueBefore(keyBegin)

	removed := m.store.removeRange(keyBegin, keyEnd)

	beginInserted := false
	if val != leftVal {
		m.store.insert(Breakpoint[K, V]{Key: keyBegin, Value: val})
		beginInserted = true
	}

	endInserted, endRemoved := false, false
	if endMarked {
		if tailVal == val {
			if !m.store.remove(keyEnd) {
				log.Panicf("rangemap/Map.Assign: breakpoint at end key %v vanished", keyEnd)
			}
			endRemoved = true
		}
	} else if tailVal != val {
		m.store.insert(Breakpoint[K, V]{Key: keyEnd, Value: tailVal})
		endInserted = true
	}

	if m.logger != nil && (removed > 0 || beginInserted || endInserted || endRemoved) {
		m.logger.Debug("rangemap/Map.Assign: breakpoints updated",
			"begin", keyBegin, "end", keyEnd, "removed", removed,
			"beginInserted", beginInserted, "endInserted", endInserted,
			"endRemoved", endRemoved, "len", m.store.len())
	}
}

// Reset drops every breakpoint, so that every key is associated with
// background.
func (m *Map[K, V]) Reset(background V) {
	m.store.clear()
	m.background = background
}

// Iterate calls iter for each breakpoint in ascending key order, until iter
// returns false.
func (m *Map[K, V]) Iterate(iter func(Breakpoint[K, V]) bool) {
	m.store.ascend(iter)
}

// Breakpoints returns a copy of the stored breakpoints, in ascending key
// order.
func (m *Map[K, V]) Breakpoints() []Breakpoint[K, V] {
	bps := make([]Breakpoint[K, V], 0, m.store.len())
	m.store.ascend(func(bp Breakpoint[K, V]) bool {
		bps = append(bps, bp)
		return true
	})
	return bps
}

func (m *Map[K, V]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "{-inf: %v", m.background)
	m.store.ascend(func(bp Breakpoint[K, V]) bool {
		fmt.Fprintf(&b, ", %v: %v", bp.Key, bp.Value)
		return true
	})
	b.WriteString("}")
	return b.String()
}
