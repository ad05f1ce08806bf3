package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidID is returned for identifiers that are not UUIDs
var ErrInvalidID = errors.New("invalid id")

// ValidateID checks that id is a canonical UUID. Rows are keyed by UUIDv7
// but older clients may send any version.
func ValidateID(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidID, id, err)
	}
	if parsed.String() != id {
		return fmt.Errorf("%w %q: not in canonical form", ErrInvalidID, id)
	}
	return nil
}

func validateIDs(ids []string) error {
	for _, id := range ids {
		if err := ValidateID(id); err != nil {
			return err
		}
	}
	return nil
}
