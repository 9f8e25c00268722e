package rangemap

import (
	"log"

	"github.com/akmistry/go-util/radix-tree"
)

var _ = (breakpointStore[uint64, int])((*radixStore[int])(nil))

type radixBreakpoint[V any] struct {
	key   uint64
	value V
}

func (b *radixBreakpoint[V]) Key() uint64 {
	return b.key
}

func (b *radixBreakpoint[V]) breakpoint() Breakpoint[uint64, V] {
	return Breakpoint[uint64, V]{Key: b.key, Value: b.value}
}

// radixStore keeps breakpoints keyed by uint64 in a radix tree. The zero
// value is an empty store.
type radixStore[V any] struct {
	tree  radix.Tree
	count int
}

func (s *radixStore[V]) floorItem(key uint64) (item *radixBreakpoint[V]) {
	s.tree.DescendLessOrEqualI(key, func(i radix.Item) bool {
		item = i.(*radixBreakpoint[V])
		return false
	})
	return
}

func (s *radixStore[V]) floor(key uint64) (Breakpoint[uint64, V], bool) {
	item := s.floorItem(key)
	if item == nil {
		return Breakpoint[uint64, V]{}, false
	}
	return item.breakpoint(), true
}

func (s *radixStore[V]) lower(key uint64) (Breakpoint[uint64, V], bool) {
	if key == 0 {
		return Breakpoint[uint64, V]{}, false
	}
	return s.floor(key - 1)
}

func (s *radixStore[V]) get(key uint64) (Breakpoint[uint64, V], bool) {
	item := s.floorItem(key)
	if item == nil || item.key != key {
		return Breakpoint[uint64, V]{}, false
	}
	return item.breakpoint(), true
}

func (s *radixStore[V]) insert(bp Breakpoint[uint64, V]) {
	item := &radixBreakpoint[V]{key: bp.Key, value: bp.Value}
	old := s.tree.ReplaceOrInsert(item)
	if old != nil {
		log.Panicf("rangemap/radixStore: unexpected old entry: %+v, adding new entry: %+v", old, item)
	}
	s.count++
}

func (s *radixStore[V]) deleteItem(item *radixBreakpoint[V]) {
	if s.tree.Delete(item) != item {
		log.Panicf("rangemap/radixStore: item not deleted: %+v", item)
	}
	s.count--
}

func (s *radixStore[V]) remove(key uint64) bool {
	item := s.floorItem(key)
	if item == nil || item.key != key {
		return false
	}
	s.deleteItem(item)
	return true
}

func (s *radixStore[V]) removeRange(begin, end uint64) int {
	var items []*radixBreakpoint[V]
	s.tree.AscendGreaterOrEqualI(begin, func(i radix.Item) bool {
		item := i.(*radixBreakpoint[V])
		if item.key >= end {
			return false
		}
		items = append(items, item)
		return true
	})
	for _, item := range items {
		s.deleteItem(item)
	}
	return len(items)
}

func (s *radixStore[V]) ascend(iter func(Breakpoint[uint64, V]) bool) {
	s.tree.Ascend(func(i radix.Item) bool {
		return iter(i.(*radixBreakpoint[V]).breakpoint())
	})
}

func (s *radixStore[V]) len() int {
	return s.count
}

func (s *radixStore[V]) clear() {
	s.tree = radix.Tree{}
	s.count = 0
}
