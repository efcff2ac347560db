package handlers

import (
	"fmt"

	"github.com/google/uuid"
)

// parseOptionalUUID turns an optional id field into a *uuid.UUID. Empty
// input is valid and yields nil.
func parseOptionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid id %q", s)
	}
	return &id, nil
}
