package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/woxtom/cccript/config"
	"github.com/woxtom/cccript/internal/tui"
)

func TestRunAddSlugifiesName(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s := testStore(t)

	var stdout, stderr bytes.Buffer
	data := tui.FormData{Name: "My Proxy", AuthToken: "sk-x", BaseURL: "https://x.example.com/v1"}
	if err := runAdd(&stdout, &stderr, s, data); err != nil {
		t.Fatalf("runAdd: %v", err)
	}

	if _, ok := s.Lookup("my-proxy"); !ok {
		t.Error("profile my-proxy not stored")
	}
	if exports := parseExports(stdout.String()); exports["ANTHROPIC_ACTIVE_CONFIG_SLUG"] != "my-proxy" {
		t.Errorf("new profile should be activated, slug = %q", exports["ANTHROPIC_ACTIVE_CONFIG_SLUG"])
	}

	// The new profile survives a reload.
	if _, ok := config.Load(s.Path()).Lookup("my-proxy"); !ok {
		t.Error("profile missing after reload")
	}
}

func TestRunAddBlankNameDefaultsToHost(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s := testStore(t)

	data := tui.FormData{AuthToken: "sk-x", BaseURL: "https://x.example.com/v1"}

	var stdout, stderr bytes.Buffer
	if err := runAdd(&stdout, &stderr, s, data); err != nil {
		t.Fatalf("runAdd: %v", err)
	}
	if _, ok := s.Lookup("x-example-com"); !ok {
		t.Errorf("expected identifier x-example-com, have %v", s.Sequence)
	}
}

func TestRunAddDuplicateNamesGetSuffixes(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s := testStore(t)

	var stdout, stderr bytes.Buffer
	for i := 0; i < 3; i++ {
		data := tui.FormData{Name: "Test", AuthToken: "sk-x", BaseURL: "https://api.example.com"}
		if err := runAdd(&stdout, &stderr, s, data); err != nil {
			t.Fatalf("runAdd #%d: %v", i+1, err)
		}
	}

	want := []string{"test", "test-2", "test-3"}
	if len(s.Sequence) != len(want) {
		t.Fatalf("sequence = %v", s.Sequence)
	}
	for i, name := range want {
		if s.Sequence[i] != name {
			t.Errorf("Sequence[%d] = %q, want %q", i, s.Sequence[i], name)
		}
	}
}

func TestRunAddEmptyRequiredInput(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s := testStore(t)

	var stdout, stderr bytes.Buffer

	t.Run("missing token", func(t *testing.T) {
		data := tui.FormData{Name: "x", BaseURL: "https://api.example.com"}
		if err := runAdd(&stdout, &stderr, s, data); err == nil {
			t.Error("expected error for empty token")
		}
	})

	t.Run("missing url", func(t *testing.T) {
		data := tui.FormData{Name: "x", AuthToken: "sk-x"}
		if err := runAdd(&stdout, &stderr, s, data); err == nil {
			t.Error("expected error for empty URL")
		}
	})

	// No partial record may be persisted.
	if s.Len() != 0 {
		t.Errorf("store should be empty, has %v", s.Sequence)
	}
	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Error("store file should not exist after failed creation")
	}
}
