// Package engine computes open intervals, conflicts and slots from data that has
// already been loaded. It performs no I/O.
package engine

import (
	"salon/internal/domains/availability/model"
	"salon/shared/clock"
	"time"
)

// OpenIntervals returns the sorted, disjoint intervals during which scope is open on date.
//
// Rule levels are applied from least to most specific. Within a level the open
// time is the union of available rules minus the union of unavailable ones, and
// that decision replaces whatever lower levels said about the time the level
// covers. A level holding a working hours rule covers the whole day; otherwise
// it covers only its own rule intervals. Blocked time is removed last.
func OpenIntervals(date time.Time, scope model.Scope, rules []model.AvailabilityRule, blocks []model.BlockedTime) []clock.Interval {
	open := []clock.Interval{}

	for _, level := range model.Precedence {
		var available, unavailable []clock.Interval

		matched, exhaustive := false, false

		for _, rule := range rules {
			if rule.Level() != level || !rule.AppliesTo(scope, date) {
				continue
			}

			matched = true

			if rule.RuleType == model.RuleTypeWorkingHours {
				exhaustive = true
			}

			if rule.IsAvailable {
				available = append(available, rule.Interval())
			} else {
				unavailable = append(unavailable, rule.Interval())
			}
		}

		if !matched {
			continue
		}

		decided := clock.Subtract(available, unavailable)

		if exhaustive {
			open = decided

			continue
		}

		covered := clock.Union(available, unavailable)
		open = clock.Union(clock.Subtract(open, covered), decided)
	}

	return clock.Subtract(open, Blocked(date, scope, blocks))
}

// Blocked returns the normalized time on date removed by blocks that apply to scope.
func Blocked(date time.Time, scope model.Scope, blocks []model.BlockedTime) []clock.Interval {
	var blocked []clock.Interval

	for _, block := range blocks {
		if !block.AppliesTo(scope) {
			continue
		}

		blocked = append(blocked, block.IntervalsOn(date)...)
	}

	return clock.Normalize(blocked)
}
