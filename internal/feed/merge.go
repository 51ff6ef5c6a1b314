// Package feed merges independently polled per-chain data streams into a
// single time-ordered view. The chains poll on their own intervals and are
// never synchronized; the merge is a pure function re-run on every tick.
package feed

import (
	"sort"
	"time"
)

// Item is anything the aggregator can order: blocks, transactions, pending
// transactions.
type Item interface {
	FeedTime() time.Time
}

// Merge concatenates the per-chain streams, orders the result newest
// first and truncates to limit. It holds no state between calls. The sort
// is stable, so equal timestamps keep the relative order of their source
// streams.
func Merge[T Item](streams [][]T, limit int) []T {
	var total int
	for _, s := range streams {
		total += len(s)
	}
	merged := make([]T, 0, total)
	for _, s := range streams {
		merged = append(merged, s...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].FeedTime().After(merged[j].FeedTime())
	})

	if limit >= 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
