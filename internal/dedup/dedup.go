// Package dedup provides the grouped-ordered-reduce primitives shared by the
// silver units: keep-latest-per-key deduplication and successor-based
// validity windows.
//
// Both primitives need a total order inside each partition. A row whose
// order value is missing sorts last deterministically; callers receive a
// count of such rows so they can surface the data-quality condition instead
// of silently producing nondeterministic output.
package dedup

import (
	"sort"
	"time"
)

// KeyFunc extracts the partition key for a row.
type KeyFunc[T any] func(T) string

// OrderFunc extracts the ordering value for a row. ok=false means the value
// is missing (null order).
type OrderFunc[T any] func(T) (time.Time, bool)

// LatestPerKey retains exactly one row per key: the one with the maximum
// order value. Ties and missing orders resolve first-seen, so the result is
// deterministic for a given input order. Output preserves first-seen key
// order. The second return value counts rows with a missing order value.
func LatestPerKey[T any](rows []T, key KeyFunc[T], order OrderFunc[T]) ([]T, int) {
	type best struct {
		row T
		ts  time.Time
		ok  bool
	}

	var nullOrder int
	index := make(map[string]int, len(rows))
	kept := make([]best, 0, len(rows))
	keys := make([]string, 0, len(rows))

	for _, r := range rows {
		ts, ok := order(r)
		if !ok {
			nullOrder++
		}
		k := key(r)

		i, seen := index[k]
		if !seen {
			index[k] = len(kept)
			kept = append(kept, best{row: r, ts: ts, ok: ok})
			keys = append(keys, k)
			continue
		}

		cur := kept[i]
		// Replace only on a strictly greater order value; missing orders
		// never win. Equal orders keep the first-seen row.
		if ok && (!cur.ok || ts.After(cur.ts)) {
			kept[i] = best{row: r, ts: ts, ok: ok}
		}
	}

	out := make([]T, 0, len(kept))
	for i := range keys {
		out = append(out, kept[i].row)
	}
	return out, nullOrder
}

// SuccessorWindow sorts each partition ascending by order and derives a
// validity-end for every row: the next row's order value minus one day. The
// last row of a partition has no successor, so setEnd is not called for it
// and its validity-end stays null.
//
// Rows with a missing order sort last within their partition and never
// receive a validity-end. The returned slice contains every input row,
// grouped by first-seen key order. The int counts missing-order rows.
func SuccessorWindow[T any](rows []T, key KeyFunc[T], order OrderFunc[T], setEnd func(*T, time.Time)) ([]T, int) {
	type member struct {
		row T
		ts  time.Time
		ok  bool
	}

	var nullOrder int
	groups := make(map[string][]member, len(rows))
	keys := make([]string, 0, len(rows))

	for _, r := range rows {
		ts, ok := order(r)
		if !ok {
			nullOrder++
		}
		k := key(r)
		if _, seen := groups[k]; !seen {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], member{row: r, ts: ts, ok: ok})
	}

	out := make([]T, 0, len(rows))
	for _, k := range keys {
		g := groups[k]
		// Ascending by order value, missing orders last, stable so equal
		// orders keep input order.
		sort.SliceStable(g, func(i, j int) bool {
			if g[i].ok != g[j].ok {
				return g[i].ok
			}
			if !g[i].ok {
				return false
			}
			return g[i].ts.Before(g[j].ts)
		})

		for i := range g {
			if i+1 < len(g) && g[i].ok && g[i+1].ok {
				setEnd(&g[i].row, g[i+1].ts.AddDate(0, 0, -1))
			}
			out = append(out, g[i].row)
		}
	}
	return out, nullOrder
}
