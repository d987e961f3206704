// Package favorites keeps the session's short list of saved cities. The list
// lives only for the lifetime of the process.
package favorites

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/avelhart/weather-cli/internal/domain"
)

// Capacity is the maximum number of favorite cities a session may hold.
const Capacity = 3

var (
	// ErrCapacityExceeded is returned when the list is already full.
	ErrCapacityExceeded = errors.New("favorites list is full")
	// ErrIndexOutOfBounds is returned when a delete position is outside the list.
	ErrIndexOutOfBounds = errors.New("number out of bounds")
	// ErrInvalidIndex is returned when a delete position is not a plain numeral.
	ErrInvalidIndex = errors.New("position must be a plain number")
)

// Store is an ordered, capacity-bounded list of favorite locations. It is
// owned by a single goroutine; no locking.
type Store struct {
	entries []domain.Location
}

// NewStore creates an empty favorites store.
func NewStore() *Store {
	return &Store{entries: make([]domain.Location, 0, Capacity)}
}

// Add appends a location, failing when the list is at capacity.
func (s *Store) Add(location domain.Location) error {
	if len(s.entries) >= Capacity {
		return fmt.Errorf("%w (capacity %d)", ErrCapacityExceeded, Capacity)
	}
	s.entries = append(s.entries, location)
	return nil
}

// DeleteAt removes the entry at a 1-based position given as raw user input.
// The input must consist only of digits and fall inside [1, len].
func (s *Store) DeleteAt(raw string) error {
	if !isNumeric(raw) {
		return ErrInvalidIndex
	}
	index, err := strconv.Atoi(raw)
	if err != nil {
		return ErrInvalidIndex
	}
	if index < 1 || index > len(s.entries) {
		return ErrIndexOutOfBounds
	}
	s.entries = append(s.entries[:index-1], s.entries[index:]...)
	return nil
}

// List returns current entries in insertion order.
func (s *Store) List() []domain.Location {
	out := make([]domain.Location, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// isNumeric reports whether raw is a non-empty run of ASCII digits. Signs
// and decimal points are rejected on purpose.
func isNumeric(raw string) bool {
	if raw == "" {
		return false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return false
		}
	}
	return true
}
