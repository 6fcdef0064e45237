package models

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	assert.NoError(t, err)
	return parsed
}

func testEvents(t *testing.T) []CalendarEvent {
	return []CalendarEvent{
		{ID: "1", Symbol: "TEVA", Market: MarketIsrael, Type: EventEarnings, Date: day(t, "2024-03-05")},
		{ID: "2", Symbol: "AAPL", Market: MarketWorld, Type: EventDividend, Date: day(t, "2024-03-01")},
		{ID: "3", Symbol: "POLI", Market: MarketIsrael, Type: EventDividend, Date: day(t, "2024-03-10")},
		{ID: "4", Symbol: "MSFT", Market: MarketWorld, Type: EventEarnings, Date: day(t, "2024-04-02")},
	}
}

func TestFilterEventsEmptyFilterSortsByDate(t *testing.T) {
	filtered := FilterEvents(testEvents(t), EventFilter{})

	ids := []string{}
	for _, e := range filtered {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"2", "1", "3", "4"}, ids)
}

func TestFilterEventsByDateRange(t *testing.T) {
	filter := EventFilter{From: day(t, "2024-03-02"), To: day(t, "2024-03-31")}

	filtered := FilterEvents(testEvents(t), filter)

	expected := []CalendarEvent{
		{ID: "1", Symbol: "TEVA", Market: MarketIsrael, Type: EventEarnings, Date: day(t, "2024-03-05")},
		{ID: "3", Symbol: "POLI", Market: MarketIsrael, Type: EventDividend, Date: day(t, "2024-03-10")},
	}
	if diff := cmp.Diff(expected, filtered); diff != "" {
		t.Errorf("unexpected events (-want +got):\n%s", diff)
	}
}

func TestFilterEventsByMarketAndType(t *testing.T) {
	filter := EventFilter{Market: MarketIsrael, Types: []EventType{EventDividend}}

	filtered := FilterEvents(testEvents(t), filter)

	assert.Len(t, filtered, 1)
	assert.Equal(t, "3", filtered[0].ID)
}

func TestFilterEventsNoMatch(t *testing.T) {
	filter := EventFilter{Types: []EventType{EventSplit}}

	filtered := FilterEvents(testEvents(t), filter)

	assert.Empty(t, filtered)
}
