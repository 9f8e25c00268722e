package rangemap

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyOrder signals breakpoint keys that are not strictly increasing.
	ErrKeyOrder = errors.New("rangemap: breakpoint keys not strictly increasing")
	// ErrRedundantBreakpoint signals a breakpoint whose value equals the
	// value of the interval to its left.
	ErrRedundantBreakpoint = errors.New("rangemap: redundant breakpoint")
	// ErrStoreCount signals a breakpoint count that disagrees with the
	// stored breakpoints.
	ErrStoreCount = errors.New("rangemap: breakpoint count mismatch")
)

// Validate checks that the stored breakpoints are in canonical form, and
// returns the first violation found.
func (m *Map[K, V]) Validate() error {
	var err error
	var prev Breakpoint[K, V]
	count := 0
	m.store.ascend(func(bp Breakpoint[K, V]) bool {
		leftVal := m.background
		if count > 0 {
			if !m.less(prev.Key, bp.Key) {
				err = fmt.Errorf("%w: %v follows %v", ErrKeyOrder, bp.Key, prev.Key)
				return false
			}
			leftVal = prev.Value
		}
		if bp.Value == leftVal {
			err = fmt.Errorf("%w: %v at %v", ErrRedundantBreakpoint, bp.Value, bp.Key)
			return false
		}
		prev = bp
		count++
		return true
	})
	if err != nil {
		return err
	}
	if count != m.store.len() {
		return fmt.Errorf("%w: walked %d, len %d", ErrStoreCount, count, m.store.len())
	}
	return nil
}
