package rangemap

import (
	"log"

	"github.com/google/btree"
)

var _ = (breakpointStore[int, int])((*btreeStore[int, int])(nil))

type btreeStore[K any, V any] struct {
	tree *btree.BTreeG[Breakpoint[K, V]]
	less func(a, b K) bool
}

func newBtreeStore[K any, V any](degree int, less func(a, b K) bool) *btreeStore[K, V] {
	return &btreeStore[K, V]{
		tree: btree.NewG(degree, func(a, b Breakpoint[K, V]) bool {
			return less(a.Key, b.Key)
		}),
		less: less,
	}
}

func probe[K any, V any](key K) Breakpoint[K, V] {
	return Breakpoint[K, V]{Key: key}
}

func (s *btreeStore[K, V]) equal(a, b K) bool {
	return !s.less(a, b) && !s.less(b, a)
}

func (s *btreeStore[K, V]) floor(key K) (bp Breakpoint[K, V], ok bool) {
	s.tree.DescendLessOrEqual(probe[K, V](key), func(i Breakpoint[K, V]) bool {
		bp = i
		ok = true
		return false
	})
	return
}

func (s *btreeStore[K, V]) lower(key K) (bp Breakpoint[K, V], ok bool) {
	s.tree.DescendLessOrEqual(probe[K, V](key), func(i Breakpoint[K, V]) bool {
		if s.equal(i.Key, key) {
			return true
		}
		bp = i
		ok = true
		return false
	})
	return
}

func (s *btreeStore[K, V]) get(key K) (Breakpoint[K, V], bool) {
	return s.tree.Get(probe[K, V](key))
}

func (s *btreeStore[K, V]) insert(bp Breakpoint[K, V]) {
	old, replaced := s.tree.ReplaceOrInsert(bp)
	if replaced {
		log.Panicf("rangemap/btreeStore: unexpected old entry: %+v, adding new entry: %+v", old, bp)
	}
}

func (s *btreeStore[K, V]) remove(key K) bool {
	_, ok := s.tree.Delete(probe[K, V](key))
	return ok
}

func (s *btreeStore[K, V]) removeRange(begin, end K) int {
	var keys []K
	s.tree.AscendRange(probe[K, V](begin), probe[K, V](end), func(i Breakpoint[K, V]) bool {
		keys = append(keys, i.Key)
		return true
	})
	for _, k := range keys {
		if !s.remove(k) {
			log.Panicf("rangemap/btreeStore: breakpoint not deleted: %v", k)
		}
	}
	return len(keys)
}

func (s *btreeStore[K, V]) ascend(iter func(Breakpoint[K, V]) bool) {
	s.tree.Ascend(btree.ItemIteratorG[Breakpoint[K, V]](iter))
}

func (s *btreeStore[K, V]) len() int {
	return s.tree.Len()
}

func (s *btreeStore[K, V]) clear() {
	s.tree.Clear(false)
}
