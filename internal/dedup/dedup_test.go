package dedup

import (
	"testing"
	"time"
)

type version struct {
	key   string
	start *time.Time
	end   *time.Time
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func versionKey(v version) string { return v.key }

func versionOrder(v version) (time.Time, bool) {
	if v.start == nil {
		return time.Time{}, false
	}
	return *v.start, true
}

// TestLatestPerKey verifies keep-latest semantics: exactly one survivor per
// key, picked by maximum order value.
func TestLatestPerKey(t *testing.T) {
	t.Parallel()

	rows := []version{
		{key: "1", start: dayPtr(2024, 1, 1)},
		{key: "2", start: dayPtr(2024, 5, 5)},
		{key: "1", start: dayPtr(2024, 2, 1)},
	}

	out, nulls := LatestPerKey(rows, versionKey, versionOrder)
	if nulls != 0 {
		t.Fatalf("null-order count = %d, want 0", nulls)
	}
	if len(out) != 2 {
		t.Fatalf("got %d rows, want 2", len(out))
	}
	// First-seen key order: key 1, then key 2.
	if out[0].key != "1" || !out[0].start.Equal(day(2024, 2, 1)) {
		t.Fatalf("key 1 survivor = %+v, want start 2024-02-01", out[0])
	}
	if out[1].key != "2" {
		t.Fatalf("out[1].key = %q, want 2", out[1].key)
	}
}

// TestLatestPerKeyTies verifies deterministic first-seen tiebreaking for
// equal and missing order values.
func TestLatestPerKeyTies(t *testing.T) {
	t.Parallel()

	a := version{key: "k", start: dayPtr(2024, 3, 1)}
	b := version{key: "k", start: dayPtr(2024, 3, 1)}
	c := version{key: "k", start: nil}

	out, nulls := LatestPerKey([]version{a, c, b}, versionKey, versionOrder)
	if nulls != 1 {
		t.Fatalf("null-order count = %d, want 1", nulls)
	}
	if len(out) != 1 {
		t.Fatalf("got %d rows, want 1", len(out))
	}
	// a and b tie; a was seen first. c has no order and never wins.
	if out[0].start == nil || !out[0].start.Equal(day(2024, 3, 1)) {
		t.Fatalf("survivor = %+v, want the first-seen dated row", out[0])
	}
}

// TestLatestPerKeyAllNull verifies that a key whose rows all lack an order
// value still yields exactly one (first-seen) survivor.
func TestLatestPerKeyAllNull(t *testing.T) {
	t.Parallel()

	rows := []version{
		{key: "k", start: nil},
		{key: "k", start: nil},
	}
	out, nulls := LatestPerKey(rows, versionKey, versionOrder)
	if len(out) != 1 || nulls != 2 {
		t.Fatalf("got %d rows / %d nulls, want 1 / 2", len(out), nulls)
	}
}

// TestSuccessorWindow verifies validity-window derivation: each row's end is
// the day before its successor's start, the last row stays open-ended, and
// the leap-day arithmetic is calendar-correct.
func TestSuccessorWindow(t *testing.T) {
	t.Parallel()

	rows := []version{
		{key: "A", start: dayPtr(2024, 3, 1)},
		{key: "A", start: dayPtr(2024, 1, 1)},
		{key: "B", start: dayPtr(2024, 6, 1)},
	}

	out, nulls := SuccessorWindow(rows, versionKey, versionOrder, func(v *version, end time.Time) {
		v.end = &end
	})
	if nulls != 0 {
		t.Fatalf("null-order count = %d, want 0", nulls)
	}
	if len(out) != 3 {
		t.Fatalf("got %d rows, want 3", len(out))
	}

	// Partition A sorted ascending: 2024-01-01 then 2024-03-01.
	if out[0].start == nil || !out[0].start.Equal(day(2024, 1, 1)) {
		t.Fatalf("out[0] = %+v, want start 2024-01-01", out[0])
	}
	if out[0].end == nil || !out[0].end.Equal(day(2024, 2, 29)) {
		t.Fatalf("out[0].end = %v, want 2024-02-29 (leap day)", out[0].end)
	}
	if out[1].end != nil {
		t.Fatalf("last row of partition A has end %v, want nil", out[1].end)
	}
	if out[2].key != "B" || out[2].end != nil {
		t.Fatalf("out[2] = %+v, want open-ended key B", out[2])
	}
}

// TestSuccessorWindowNullOrder verifies that missing-order rows sort last,
// are counted, and never produce or receive a validity end.
func TestSuccessorWindowNullOrder(t *testing.T) {
	t.Parallel()

	rows := []version{
		{key: "A", start: nil},
		{key: "A", start: dayPtr(2024, 1, 1)},
	}

	out, nulls := SuccessorWindow(rows, versionKey, versionOrder, func(v *version, end time.Time) {
		v.end = &end
	})
	if nulls != 1 {
		t.Fatalf("null-order count = %d, want 1", nulls)
	}
	// Dated row first; its successor has no order so no end is derived.
	if out[0].start == nil {
		t.Fatalf("out[0] = %+v, want the dated row first", out[0])
	}
	if out[0].end != nil || out[1].end != nil {
		t.Fatalf("no validity end should be derived across a null order: %+v %+v", out[0], out[1])
	}
}
