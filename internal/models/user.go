package models

import "time"

// User is the account profile returned by the auth "me" endpoint.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationPreferences controls which calendar and price notifications
// the backend sends for a user.
type NotificationPreferences struct {
	EmailEnabled       bool `json:"emailEnabled"`
	EventReminders     bool `json:"eventReminders"`
	PriceAlerts        bool `json:"priceAlerts"`
	ReminderDaysBefore int  `json:"reminderDaysBefore"`
}
