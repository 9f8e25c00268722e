package rangemap

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"

	"github.com/akmistry/intervalmap/internal/util"
)

const (
	// DefaultDegree is the B-tree degree used when Options.Degree is zero.
	DefaultDegree = 16

	minDegree = 2
)

// Options configures a Map.
type Options[K any] struct {
	// Less orders keys. Required.
	Less func(a, b K) bool

	// Degree of the underlying B-tree. Defaults to DefaultDegree.
	Degree int

	// Logger receives debug logs of breakpoint changes. If nil, nothing is
	// logged.
	Logger *slog.Logger
}

// NewWithOptions returns a map where every key is associated with
// background.
func NewWithOptions[K any, V comparable](background V, opts Options[K]) (*Map[K, V], error) {
	if opts.Less == nil {
		return nil, errors.New("opts.Less must be non-nil")
	}
	opts.Degree = util.DefaultIfZero(opts.Degree, DefaultDegree)
	if opts.Degree < minDegree {
		return nil, fmt.Errorf("opts.Degree must be at least %d, got %d", minDegree, opts.Degree)
	}

	return &Map[K, V]{
		background: background,
		less:       opts.Less,
		store:      newBtreeStore[K, V](opts.Degree, opts.Less),
		logger:     opts.Logger,
	}, nil
}

// NewUint64 returns a map with uint64 keys where every key is associated
// with background. Breakpoints are kept in a radix tree rather than a
// B-tree.
func NewUint64[V comparable](background V) *Map[uint64, V] {
	return &Map[uint64, V]{
		background: background,
		less:       cmp.Less[uint64],
		store:      new(radixStore[V]),
	}
}
