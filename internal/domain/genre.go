package domain

import (
	"strings"
	"time"
)

// Genre is a musical genre. Songs and genres are associated many-to-many.
type Genre struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks if the Genre has valid data.
func (g *Genre) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return NewValidationError("name", "cannot be empty", ErrEmptyName)
	}
	return nil
}

// UniqueGenreIDs returns ids with duplicates removed, keeping first-seen order.
// A genre set is a set: syncing [2, 2, 3] associates genres 2 and 3.
func UniqueGenreIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
