package clock

import (
	"slices"
)

// Interval is the half-open range [Start, End).
type Interval struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

func NewInterval(start, end TimeOfDay) (Interval, error) {
	if _, err := DurationMinutes(start, end); err != nil {
		return Interval{}, err
	}

	return Interval{Start: start, End: end}, nil
}

func (i Interval) Empty() bool {
	return i.End <= i.Start
}

func (i Interval) Minutes() int {
	if i.Empty() {
		return 0
	}

	return int(i.End - i.Start)
}

// Overlaps reports s1 < e2 && s2 < e1. Touching intervals do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// Contains reports whether other lies entirely inside i.
func (i Interval) Contains(other Interval) bool {
	return i.Start <= other.Start && other.End <= i.End
}

// Widen grows the interval by before and after minutes, clamped to the day.
func (i Interval) Widen(before, after int) Interval {
	start := i.Start - TimeOfDay(before)
	end := i.End + TimeOfDay(after)

	return Interval{Start: max(start, Midnight), End: min(end, EndOfDay)}
}

func (i Interval) String() string {
	return "[" + i.Start.String() + ", " + i.End.String() + ")"
}

// Normalize sorts intervals, drops empty ones and merges overlapping or touching neighbours.
func Normalize(intervals []Interval) []Interval {
	sorted := make([]Interval, 0, len(intervals))

	for _, in := range intervals {
		if !in.Empty() {
			sorted = append(sorted, in)
		}
	}

	slices.SortFunc(sorted, func(a, b Interval) int {
		if a.Start != b.Start {
			return int(a.Start - b.Start)
		}

		return int(a.End - b.End)
	})

	merged := make([]Interval, 0, len(sorted))

	for _, in := range sorted {
		last := len(merged) - 1
		if last >= 0 && in.Start <= merged[last].End {
			merged[last].End = max(merged[last].End, in.End)

			continue
		}

		merged = append(merged, in)
	}

	return merged
}

func Union(a, b []Interval) []Interval {
	return Normalize(append(slices.Clone(a), b...))
}

// Subtract removes every part of cut from base. The result is normalized.
func Subtract(base, cut []Interval) []Interval {
	result := Normalize(base)
	cuts := Normalize(cut)

	for _, c := range cuts {
		next := make([]Interval, 0, len(result))

		for _, in := range result {
			if !in.Overlaps(c) {
				next = append(next, in)

				continue
			}

			if in.Start < c.Start {
				next = append(next, Interval{Start: in.Start, End: c.Start})
			}

			if c.End < in.End {
				next = append(next, Interval{Start: c.End, End: in.End})
			}
		}

		result = next
	}

	return result
}

// Within reports whether candidate fits entirely inside one of the intervals.
func Within(intervals []Interval, candidate Interval) bool {
	for _, in := range intervals {
		if in.Contains(candidate) {
			return true
		}
	}

	return false
}
