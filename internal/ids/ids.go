// Package ids validates externally supplied entity identifiers.
package ids

import (
	"github.com/google/uuid"

	"github.com/emilythestrangee/videotube/backend/internal/apperror"
)

// canonicalLen is the length of the hyphenated 8-4-4-4-12 form.
const canonicalLen = 36

// Parse validates raw as an entity id. Only the canonical hyphenated form
// is accepted, exactly as given. Padded input and the nil id are rejected.
func Parse(field, raw string) (uuid.UUID, error) {
	if len(raw) != canonicalLen {
		return uuid.Nil, apperror.InvalidReference(field)
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, apperror.InvalidReference(field)
	}
	return id, nil
}

// Valid reports whether raw would pass Parse.
func Valid(raw string) bool {
	_, err := Parse("id", raw)
	return err == nil
}
