// Package catalog maintains live, filtered views over reactive
// collections. Filters hold the latest source snapshot plus the
// current facet values and recompute the view whenever either side
// changes.
package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/docetangerina/estoque/internal/model"
)

// ItemFilter composes three independent facets over the item catalog:
// size, category and free-text search. The facets are conjunctive, a
// zero value means "no constraint", and the order they are set in
// never changes the result. Source order is preserved; no sort is
// applied.
type ItemFilter struct {
	mu         sync.Mutex
	source     []model.ItemFull
	sizeID     int64 // 0 = no size constraint
	categoryID int64 // 0 = no category constraint
	search     string

	out chan []model.ItemFull
}

func NewItemFilter() *ItemFilter {
	return &ItemFilter{out: make(chan []model.ItemFull, 1)}
}

// SetSource replaces the unfiltered collection and recomputes.
func (f *ItemFilter) SetSource(items []model.ItemFull) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.source = items
	f.recompute()
}

// SetSize sets the size facet; zero clears it.
func (f *ItemFilter) SetSize(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sizeID = id
	f.recompute()
}

// SetCategory sets the category facet; zero clears it.
func (f *ItemFilter) SetCategory(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categoryID = id
	f.recompute()
}

// SetSearch sets the free-text facet; blank clears it.
func (f *ItemFilter) SetSearch(query string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.search = query
	f.recompute()
}

// Results carries the filtered collection. Only the latest view is
// retained; intermediate states may be skipped by a slow receiver.
func (f *ItemFilter) Results() <-chan []model.ItemFull {
	return f.out
}

// Current returns the filtered view as of now.
func (f *ItemFilter) Current() []model.ItemFull {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filtered()
}

// Run feeds the filter from a Watch subscription until ctx is
// cancelled or the stream closes.
func (f *ItemFilter) Run(ctx context.Context, items <-chan []model.ItemFull) {
	for {
		select {
		case <-ctx.Done():
			return
		case snapshot, ok := <-items:
			if !ok {
				return
			}
			f.SetSource(snapshot)
		}
	}
}

// recompute publishes a fresh filtered view. Caller holds f.mu, so the
// four inputs are never read torn.
func (f *ItemFilter) recompute() {
	filtered := f.filtered()
	select {
	case <-f.out:
	default:
	}
	f.out <- filtered
}

func (f *ItemFilter) filtered() []model.ItemFull {
	filtered := make([]model.ItemFull, 0, len(f.source))
	for _, item := range f.source {
		if MatchItem(item, f.sizeID, f.categoryID, f.search) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// MatchItem reports whether the item passes all three facets. Exported
// so one-shot queries can apply the same predicates without a filter
// instance.
func MatchItem(item model.ItemFull, sizeID, categoryID int64, search string) bool {
	return matchesSize(item, sizeID) &&
		matchesCategory(item, categoryID) &&
		MatchName(item.Item.Name, search)
}

func matchesSize(item model.ItemFull, sizeID int64) bool {
	return sizeID == 0 || (item.Item.SizeID != nil && *item.Item.SizeID == sizeID)
}

func matchesCategory(item model.ItemFull, categoryID int64) bool {
	return categoryID == 0 || (item.Item.CategoryID != nil && *item.Item.CategoryID == categoryID)
}

// MatchName is the free-text predicate: case-insensitive substring
// match, with a blank query passing everything.
func MatchName(name, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	return query == "" || strings.Contains(strings.ToLower(name), query)
}
