package models

import (
	"sort"
	"time"
)

type EventType string

const (
	EventEarnings EventType = "earnings"
	EventDividend EventType = "dividend"
	EventSplit    EventType = "split"
	EventMeeting  EventType = "meeting"
)

// CalendarEvent is a market event (earnings report, dividend ex-date, ...)
// shown on the dashboard calendar.
type CalendarEvent struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Symbol string    `json:"symbol"`
	Market Market    `json:"market"`
	Type   EventType `json:"type"`
	Date   time.Time `json:"date"`
}

// EventFilter narrows calendar events by date range, market and type.
// Zero-valued fields do not filter.
type EventFilter struct {
	From   time.Time
	To     time.Time
	Market Market
	Types  []EventType
}

func (f EventFilter) Matches(e CalendarEvent) bool {
	if !f.From.IsZero() && e.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && e.Date.After(f.To) {
		return false
	}
	if f.Market != "" && e.Market != f.Market {
		return false
	}
	if len(f.Types) > 0 {
		found := false
		for _, t := range f.Types {
			if e.Type == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// FilterEvents returns the events matching the filter, ordered by date.
// The input slice is not modified.
func FilterEvents(events []CalendarEvent, filter EventFilter) []CalendarEvent {
	output := []CalendarEvent{}
	for _, e := range events {
		if filter.Matches(e) {
			output = append(output, e)
		}
	}
	sort.SliceStable(output, func(i, j int) bool {
		return output[i].Date.Before(output[j].Date)
	})
	return output
}
