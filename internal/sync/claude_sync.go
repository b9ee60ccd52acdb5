// Package sync mirrors the active profile into Claude Code's settings.json
// so the editor picks up the same endpoint without a restart of the shell.
package sync

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/woxtom/cccript/config"
)

// SettingsPath returns the global Claude Code settings file location.
func SettingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".claude", "settings.json"), nil
}

// UpdateEnvField rewrites the env object of a settings.json document for
// the given profile. Only ANTHROPIC_ keys are replaced; every other env
// entry and every other top-level field is preserved verbatim.
func UpdateEnvField(original string, p config.Profile) (string, error) {
	doc := gjson.Parse(original)
	if !doc.Exists() || !json.Valid([]byte(original)) {
		return "", fmt.Errorf("invalid JSON content")
	}

	env := make(map[string]string)
	doc.Get("env").ForEach(func(key, value gjson.Result) bool {
		if !strings.HasPrefix(strings.ToUpper(key.Str), "ANTHROPIC_") {
			env[key.Str] = value.Str
		}
		return true
	})

	if p.BaseURL != "" {
		env["ANTHROPIC_BASE_URL"] = p.BaseURL
	}
	if p.AuthToken != "" {
		env["ANTHROPIC_AUTH_TOKEN"] = p.AuthToken
		env["ANTHROPIC_API_KEY"] = p.AuthToken
	}
	if p.Model != "" {
		env["ANTHROPIC_MODEL"] = p.Model
	}
	if p.SmallFastModel != "" {
		env["ANTHROPIC_SMALL_FAST_MODEL"] = p.SmallFastModel
	}

	envJSON, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("failed to marshal env field: %w", err)
	}

	updated, err := sjson.SetRaw(original, "env", string(envJSON))
	if err != nil {
		return "", fmt.Errorf("failed to update env field: %w", err)
	}
	return updated, nil
}

// writeAtomic replaces path via a temp file and rename so a crash cannot
// leave settings.json half written.
func writeAtomic(path, content string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "settings.json.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0600); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}

// Settings syncs the profile into Claude Code's settings.json. Missing
// settings are a no-op; the caller treats any error as a warning.
func Settings(p config.Profile) error {
	path, err := SettingsPath()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	updated, err := UpdateEnvField(string(data), p)
	if err != nil {
		return err
	}
	return writeAtomic(path, updated)
}
