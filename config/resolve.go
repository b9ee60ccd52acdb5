package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/woxtom/cccript/internal/slug"
)

// ErrNotFound is returned when a token resolves to no stored profile.
var ErrNotFound = errors.New("configuration not found")

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Resolve maps a user-supplied token to a stored identifier. An all-digit
// token is always treated as a 1-based index, so purely numeric profile
// names are shadowed by index lookup; name tokens are slugified before the
// exact match.
func (s *Store) Resolve(token string) (string, error) {
	if token == "" {
		return "", ErrNotFound
	}

	if allDigits(token) {
		n, err := strconv.Atoi(token)
		if err != nil || n < 1 || n > len(s.Sequence) {
			return "", fmt.Errorf("%w: index %s out of range", ErrNotFound, token)
		}
		return s.Sequence[n-1], nil
	}

	identifier := slug.ToIdentifier(token)
	if _, ok := s.profiles[identifier]; ok {
		return identifier, nil
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, identifier)
}
