package config

import (
	"errors"
	"testing"
)

func storeWith(t *testing.T, names ...string) *Store {
	t.Helper()
	s := tempStore(t)
	for _, n := range names {
		if err := s.Append(Profile{Name: n, AuthToken: "tok"}); err != nil {
			t.Fatalf("Append(%s): %v", n, err)
		}
	}
	return s
}

func TestResolveIndex(t *testing.T) {
	s := storeWith(t, "alpha", "beta")

	cases := []struct {
		token string
		want  string
	}{
		{"1", "alpha"},
		{"2", "beta"},
	}
	for _, tc := range cases {
		got, err := s.Resolve(tc.token)
		if err != nil {
			t.Errorf("Resolve(%q): %v", tc.token, err)
		}
		if got != tc.want {
			t.Errorf("Resolve(%q) = %q, want %q", tc.token, got, tc.want)
		}
	}
}

func TestResolveIndexOutOfRange(t *testing.T) {
	s := storeWith(t, "alpha", "beta")

	for _, token := range []string{"0", "3", "99", "99999999999999999999"} {
		if _, err := s.Resolve(token); !errors.Is(err, ErrNotFound) {
			t.Errorf("Resolve(%q) = %v, want ErrNotFound", token, err)
		}
	}
}

func TestResolveName(t *testing.T) {
	s := storeWith(t, "my-proxy", "work")

	t.Run("exact identifier", func(t *testing.T) {
		got, err := s.Resolve("my-proxy")
		if err != nil || got != "my-proxy" {
			t.Errorf("Resolve = %q, %v", got, err)
		}
	})

	t.Run("display name is slugified", func(t *testing.T) {
		got, err := s.Resolve("My Proxy")
		if err != nil || got != "my-proxy" {
			t.Errorf("Resolve = %q, %v", got, err)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		if _, err := s.Resolve("nothing"); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("empty token", func(t *testing.T) {
		if _, err := s.Resolve(""); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

// An all-digit token is always an index, even when a profile carries that
// exact name. Documented behavior, relied on by startup selection.
func TestResolveDigitsPreferIndex(t *testing.T) {
	s := storeWith(t, "alpha", "2")

	got, err := s.Resolve("2")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "2" {
		t.Errorf("Resolve(\"2\") = %q, want the profile at index 2", got)
	}

	// Index 1 is alpha, not the profile literally named "2".
	got, err = s.Resolve("1")
	if err != nil || got != "alpha" {
		t.Errorf("Resolve(\"1\") = %q, %v", got, err)
	}
}
