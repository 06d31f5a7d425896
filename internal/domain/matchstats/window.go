package matchstats

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/football-ai/internal/domain/match"
)

// TimeWindow scopes aggregation to part of a match.
type TimeWindow string

const (
	WholeMatch TimeWindow = "whole_match"
	FirstHalf  TimeWindow = "first_half"
	SecondHalf TimeWindow = "second_half"
	Overtime   TimeWindow = "overtime"
)

// Windows lists every accepted window in display order.
var Windows = []TimeWindow{WholeMatch, FirstHalf, SecondHalf, Overtime}

// ParseTimeWindow accepts the four window names; empty means WholeMatch.
func ParseTimeWindow(raw string) (TimeWindow, error) {
	value := TimeWindow(strings.ToLower(strings.TrimSpace(raw)))
	if value == "" {
		return WholeMatch, nil
	}
	for _, w := range Windows {
		if value == w {
			return w, nil
		}
	}
	return "", fmt.Errorf("unknown time window %q: valid values are whole_match, first_half, second_half, overtime", raw)
}

// Contains reports whether an event minute falls in the window.
// SecondHalf is minute > 45 and therefore also covers extra time, overlapping Overtime.
func (w TimeWindow) Contains(minute int) bool {
	switch w {
	case FirstHalf:
		return minute <= 45
	case SecondHalf:
		return minute > 45
	case Overtime:
		return minute > 90
	default:
		return true
	}
}

// Filter returns the events inside the window, preserving order.
func (w TimeWindow) Filter(events []match.Event) []match.Event {
	if w == WholeMatch || w == "" {
		return events
	}
	out := make([]match.Event, 0, len(events))
	for _, e := range events {
		if w.Contains(e.Minute) {
			out = append(out, e)
		}
	}
	return out
}
