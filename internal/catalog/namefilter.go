package catalog

import (
	"context"
	"sync"
)

// NameFilter is the two-input variant used by the category and size
// management lists: one source collection, one free-text facet over a
// name derived from each element.
type NameFilter[T any] struct {
	mu     sync.Mutex
	name   func(T) string
	source []T
	search string

	out chan []T
}

func NewNameFilter[T any](name func(T) string) *NameFilter[T] {
	return &NameFilter[T]{name: name, out: make(chan []T, 1)}
}

// SetSource replaces the unfiltered collection and recomputes.
func (f *NameFilter[T]) SetSource(elems []T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.source = elems
	f.recompute()
}

// SetSearch sets the free-text facet; blank clears it.
func (f *NameFilter[T]) SetSearch(query string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.search = query
	f.recompute()
}

// Results carries the filtered collection, latest view only.
func (f *NameFilter[T]) Results() <-chan []T {
	return f.out
}

// Current returns the filtered view as of now.
func (f *NameFilter[T]) Current() []T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filtered()
}

// Run feeds the filter from a Watch subscription until ctx is
// cancelled or the stream closes.
func (f *NameFilter[T]) Run(ctx context.Context, elems <-chan []T) {
	for {
		select {
		case <-ctx.Done():
			return
		case snapshot, ok := <-elems:
			if !ok {
				return
			}
			f.SetSource(snapshot)
		}
	}
}

func (f *NameFilter[T]) recompute() {
	filtered := f.filtered()
	select {
	case <-f.out:
	default:
	}
	f.out <- filtered
}

func (f *NameFilter[T]) filtered() []T {
	filtered := make([]T, 0, len(f.source))
	for _, elem := range f.source {
		if MatchName(f.name(elem), f.search) {
			filtered = append(filtered, elem)
		}
	}
	return filtered
}
