package api

import (
	"context"
	"net/http"

	"github.com/folioview/folioview-cli/internal/models"
)

func (c *Client) NotificationPreferences(ctx context.Context) (models.NotificationPreferences, error) {
	output := models.NotificationPreferences{}
	err := c.do(ctx, http.MethodGet, "/users/me/notifications", nil, &output)
	if err != nil {
		return models.NotificationPreferences{}, err
	}
	return output, nil
}

func (c *Client) UpdateNotificationPreferences(ctx context.Context, preferences models.NotificationPreferences) (models.NotificationPreferences, error) {
	output := models.NotificationPreferences{}
	err := c.do(ctx, http.MethodPut, "/users/me/notifications", preferences, &output)
	if err != nil {
		return models.NotificationPreferences{}, err
	}
	return output, nil
}
