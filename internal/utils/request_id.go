package utils

import "github.com/google/uuid"

// NewRequestID returns the value attached as X-Request-ID to outbound calls
// so a request can be correlated between client logs and backend logs.
func NewRequestID() string {
	return uuid.NewString()
}
