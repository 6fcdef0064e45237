package models

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// IDGenerator generates the IDs used to correlate sessions and requests in logs.
type IDGenerator interface {
	ID() (string, error)
}

// ULIDGenerator implements IDGenerator and generates ULIDs for session IDs
type ULIDGenerator struct{}

func (ULIDGenerator) ID() (string, error) {
	now := time.Now()
	ms := ulid.Timestamp(now)
	id, err := ulid.New(ms, rand.Reader)
	if err != nil {
		return "", err
	}
	return id.String(), err
}
