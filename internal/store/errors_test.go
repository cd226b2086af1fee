package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "ErrNotFound", err: ErrNotFound, expected: true},
		{name: "wrapped ErrNotFound", err: fmt.Errorf("lookup: %w", ErrNotFound), expected: true},
		{name: "ErrSongNotFound", err: ErrSongNotFound, expected: true},
		{name: "ErrCountryNotFound", err: ErrCountryNotFound, expected: true},
		{name: "wrapped ErrGenreNotFound", err: fmt.Errorf("sync: %w", ErrGenreNotFound), expected: true},
		{name: "StoreError wrapping not found", err: NewStoreError("song", "get", "missing", ErrSongNotFound), expected: true},
		{name: "ErrDuplicate", err: ErrDuplicate, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsNotFoundError(tc.err))
		})
	}
}

func TestEntityNotFoundErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrSongNotFound, ErrCountryNotFound))
	assert.False(t, errors.Is(ErrCountryNotFound, ErrGenreNotFound))
	assert.Equal(t, "entity not found: song", ErrSongNotFound.Error())
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(fmt.Errorf("%w: genre name", ErrDuplicate)))
	assert.False(t, IsDuplicateError(ErrNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection reset")

	err := NewStoreError("song", "create", "insert failed", cause)
	assert.Equal(t, "create operation on song failed: insert failed: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewStoreError("genre", "sync", "empty set", nil)
	assert.Equal(t, "sync operation on genre failed: empty set", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
