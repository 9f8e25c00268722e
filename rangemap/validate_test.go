package rangemap

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	for _, newMap := range []newMapFunc{newBtreeMap, newRadixMap} {
		m := newMap(0)
		m.Assign(10, 20, 1)
		if err := m.Validate(); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}

		// Same value as the background.
		m.store.insert(bp{Key: 5, Value: 0})
		if err := m.Validate(); !errors.Is(err, ErrRedundantBreakpoint) {
			t.Errorf("Validate() %v != ErrRedundantBreakpoint", err)
		}
		m.store.remove(5)

		// Same value as the previous breakpoint.
		m.store.insert(bp{Key: 15, Value: 1})
		if err := m.Validate(); !errors.Is(err, ErrRedundantBreakpoint) {
			t.Errorf("Validate() %v != ErrRedundantBreakpoint", err)
		}
		m.store.remove(15)

		if err := m.Validate(); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	}
}

func TestValidate_Count(t *testing.T) {
	m := NewUint64(0)
	m.Assign(10, 20, 1)
	m.store.(*radixStore[int]).count++
	if err := m.Validate(); !errors.Is(err, ErrStoreCount) {
		t.Errorf("Validate() %v != ErrStoreCount", err)
	}
}
