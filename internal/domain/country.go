package domain

import (
	"strings"
	"time"
)

// Country is the country a song originates from. A country has many songs.
type Country struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks if the Country has valid data.
func (c *Country) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError("name", "cannot be empty", ErrEmptyName)
	}
	return nil
}
