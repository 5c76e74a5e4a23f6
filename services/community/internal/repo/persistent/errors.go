package persistent

import (
	"errors"

	"community-feed/pkg/database"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateLike     = errors.New("like already exists")
	ErrDuplicateUsername = errors.New("username already taken")
)

// translateNotFound also covers ids postgres cannot parse, which can never
// match a row.
func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) || database.IsInvalidInput(err) {
		return ErrNotFound
	}
	return err
}
