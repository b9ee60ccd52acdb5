// Package config persists named API endpoint profiles and resolves which
// one is active.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/woxtom/cccript/internal/slug"
)

// Field names as they appear in composite keys in the profile file.
const (
	FieldBaseURL        = "BASE_URL"
	FieldAuthToken      = "AUTH_TOKEN"
	FieldModel          = "MODEL"
	FieldSmallFastModel = "SMALL_FAST_MODEL"
)

// fieldOrder is the write order within a profile block. SMALL_FAST_MODEL
// must be matched before MODEL when parsing, since MODEL is a suffix of it.
var fieldOrder = []string{FieldBaseURL, FieldAuthToken, FieldModel, FieldSmallFastModel}

var parseOrder = []string{FieldSmallFastModel, FieldBaseURL, FieldAuthToken, FieldModel}

// Profile is a single stored configuration. Name is the slugified
// identifier, unique within the store.
type Profile struct {
	Name           string
	BaseURL        string
	AuthToken      string
	Model          string
	SmallFastModel string
}

// Field returns the named field value, or "" for an unknown field name.
func (p Profile) Field(field string) string {
	switch field {
	case FieldBaseURL:
		return p.BaseURL
	case FieldAuthToken:
		return p.AuthToken
	case FieldModel:
		return p.Model
	case FieldSmallFastModel:
		return p.SmallFastModel
	}
	return ""
}

// Store is an ordered collection of profiles backed by a flat file.
// Insertion order is display order and the basis for 1-based indexing.
type Store struct {
	path     string
	Sequence []string
	profiles map[string]Profile
}

// Load reads the store at path. A missing, unreadable or malformed file
// degrades to an empty store so a corrupt file never blocks the CLI;
// unreadable existing files produce a warning on stderr.
func Load(path string) *Store {
	s := &Store{path: path, profiles: make(map[string]Profile)}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to read %s: %v\n", path, err)
		}
		return s
	}

	s.parse(string(data))
	return s
}

// parse scans line-oriented profile blocks. Unrecognized lines are ignored
// so a hand-edited file with stray content still loads.
func (s *Store) parse(content string) {
	byFragment := make(map[string]string)

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if name, ok := strings.CutPrefix(line, "profile "); ok {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if _, dup := s.profiles[name]; dup {
				continue
			}
			s.Sequence = append(s.Sequence, name)
			s.profiles[name] = Profile{Name: name}
			byFragment[slug.StorageKey(name)] = name
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		s.setField(byFragment, strings.TrimSpace(key), unquote(value))
	}
}

func (s *Store) setField(byFragment map[string]string, key, value string) {
	for _, field := range parseOrder {
		fragment, ok := strings.CutSuffix(key, "_"+field)
		if !ok {
			continue
		}
		name, known := byFragment[fragment]
		if !known {
			return
		}
		p := s.profiles[name]
		switch field {
		case FieldBaseURL:
			p.BaseURL = value
		case FieldAuthToken:
			p.AuthToken = value
		case FieldModel:
			p.Model = value
		case FieldSmallFastModel:
			p.SmallFastModel = value
		}
		s.profiles[name] = p
		return
	}
}

func unquote(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, `"`) {
		if v, err := strconv.Unquote(raw); err == nil {
			return v
		}
	}
	return raw
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of stored profiles.
func (s *Store) Len() int {
	return len(s.Sequence)
}

// Lookup returns the profile for an identifier.
func (s *Store) Lookup(identifier string) (Profile, bool) {
	p, ok := s.profiles[identifier]
	return p, ok
}

// Get returns a single field value, or "" when the identifier or field is
// unknown.
func (s *Store) Get(identifier, field string) string {
	p, ok := s.profiles[identifier]
	if !ok {
		return ""
	}
	return p.Field(field)
}

// Index returns the 1-based position of an identifier, or 0 when absent.
func (s *Store) Index(identifier string) int {
	for i, name := range s.Sequence {
		if name == identifier {
			return i + 1
		}
	}
	return 0
}

// Profiles returns all profiles in insertion order.
func (s *Store) Profiles() []Profile {
	out := make([]Profile, 0, len(s.Sequence))
	for _, name := range s.Sequence {
		out = append(out, s.profiles[name])
	}
	return out
}

// EnsureUnique returns candidate unchanged if no stored profile uses it,
// otherwise the first free candidate-2, candidate-3, … variant. Uniqueness
// is checked on identifiers, before the storage-key transform.
func (s *Store) EnsureUnique(candidate string) string {
	if _, taken := s.profiles[candidate]; !taken {
		return candidate
	}
	for n := 2; ; n++ {
		variant := fmt.Sprintf("%s-%d", candidate, n)
		if _, taken := s.profiles[variant]; !taken {
			return variant
		}
	}
}

// encodeBlock renders one profile as its file block. All four fields are
// always written, empty values as "".
func encodeBlock(p Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "profile %s\n", p.Name)
	key := slug.StorageKey(p.Name)
	for _, field := range fieldOrder {
		fmt.Fprintf(&b, "%s_%s=%s\n", key, field, strconv.Quote(p.Field(field)))
	}
	b.WriteString("\n")
	return b.String()
}

// Append persists a new profile at the end of the store. The block is
// written with a single contiguous write so a crash cannot corrupt earlier
// records, and the file is created owner-only since it holds secrets.
func (s *Store) Append(p Profile) error {
	if p.Name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}
	if _, exists := s.profiles[p.Name]; exists {
		return fmt.Errorf("profile '%s' already exists", p.Name)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open profile store: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(encodeBlock(p)); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}

	s.Sequence = append(s.Sequence, p.Name)
	s.profiles[p.Name] = p
	return nil
}
