package shell

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/woxtom/cccript/config"
	"github.com/woxtom/cccript/config/session"
)

func activationFor(t *testing.T, p config.Profile) *session.Activation {
	t.Helper()
	s := config.Load(filepath.Join(t.TempDir(), "profiles.conf"))
	if err := s.Append(p); err != nil {
		t.Fatalf("Append: %v", err)
	}
	a, err := session.Activate(s, p.Name, true)
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	return a
}

func TestExportLinesCoverFullSurface(t *testing.T) {
	a := activationFor(t, config.Profile{Name: "work", BaseURL: "https://api.example.com", AuthToken: "tok"})
	out := ExportLines(a)

	for _, key := range []string{
		session.EnvBaseURL, session.EnvAuthToken, session.EnvAPIKey,
		session.EnvModel, session.EnvSmallFastModel,
		session.EnvActiveSlug, session.EnvActiveIndex, session.EnvActiveLegacy,
		session.EnvConfirmed,
	} {
		if !strings.Contains(out, "export "+key+"=") {
			t.Errorf("missing export for %s in:\n%s", key, out)
		}
	}

	// Empty fields are exported as empty strings, never omitted.
	if !strings.Contains(out, "export "+session.EnvModel+"=''") {
		t.Errorf("empty model should export '':\n%s", out)
	}
}

func TestExportLinesQuoting(t *testing.T) {
	a := activationFor(t, config.Profile{
		Name:      "tricky",
		BaseURL:   "https://api.example.com/$path",
		AuthToken: "it's a token",
	})
	out := ExportLines(a)

	if !strings.Contains(out, `export ANTHROPIC_BASE_URL='https://api.example.com/$path'`) {
		t.Errorf("dollar sign must be single-quoted:\n%s", out)
	}
	if !strings.Contains(out, `export ANTHROPIC_AUTH_TOKEN='it'\''s a token'`) {
		t.Errorf("embedded quote must be escaped:\n%s", out)
	}
}

func TestFindNextSkipsMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if got := FindNext("definitely-not-a-real-binary"); got != "" {
		t.Errorf("FindNext = %q, want empty", got)
	}
}
