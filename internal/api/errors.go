package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/folioview/folioview-cli/internal/fverrors"
)

const maxErrorBodySize = 1 << 20

// APIError is any non-2xx backend answer that is not a recoverable 401.
// Message carries the backend-provided error text when present, the generic
// HTTP status text otherwise.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
	Payload    json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("the backend returned %d: %s", e.StatusCode, e.Message)
}

// Is lets errors.Is match the common sentinels without inspecting status codes
// at every call site.
func (e *APIError) Is(target error) bool {
	switch target {
	case fverrors.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case fverrors.ErrSessionExpired:
		return e.StatusCode == http.StatusUnauthorized
	}
	return false
}

// errorPayload is the error shape the backend responds with. Some endpoints
// use "error", the rest use "message".
type errorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func decodeAPIError(resp *http.Response) *APIError {
	output := &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
		RequestID:  resp.Header.Get("X-Request-ID"),
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil || len(raw) == 0 {
		return output
	}
	output.Payload = json.RawMessage(raw)
	payload := errorPayload{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return output
	}
	// the server-provided message takes precedence over the status text
	if payload.Message != "" {
		output.Message = payload.Message
	} else if payload.Error != "" {
		output.Message = payload.Error
	}
	return output
}
