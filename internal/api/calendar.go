package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/folioview/folioview-cli/internal/models"
)

// CalendarEvents fetches the calendar for the filter's date range and applies
// the market/type narrowing locally, the way the dashboard calendar does.
func (c *Client) CalendarEvents(ctx context.Context, filter models.EventFilter) ([]models.CalendarEvent, error) {
	query := url.Values{}
	if !filter.From.IsZero() {
		query.Set("from", filter.From.Format(time.RFC3339))
	}
	if !filter.To.IsZero() {
		query.Set("to", filter.To.Format(time.RFC3339))
	}
	output := []models.CalendarEvent{}
	err := c.do(ctx, http.MethodGet, "/calendar/events", nil, &output, withQuery(query))
	if err != nil {
		return nil, err
	}
	return models.FilterEvents(output, filter), nil
}
