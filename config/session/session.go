// Package session models the per-shell active selection and the startup
// precedence that picks one.
package session

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/woxtom/cccript/config"
	"github.com/woxtom/cccript/internal/utils"
)

// Environment surface written by activation and read back on each
// invocation.
const (
	EnvBaseURL        = "ANTHROPIC_BASE_URL"
	EnvAuthToken      = "ANTHROPIC_AUTH_TOKEN"
	EnvAPIKey         = "ANTHROPIC_API_KEY"
	EnvModel          = "ANTHROPIC_MODEL"
	EnvSmallFastModel = "ANTHROPIC_SMALL_FAST_MODEL"
	EnvActiveSlug     = "ANTHROPIC_ACTIVE_CONFIG_SLUG"
	EnvActiveIndex    = "ANTHROPIC_ACTIVE_CONFIG_INDEX"
	// EnvActiveLegacy predates the split slug/index variables. It mirrors
	// the index on export and is honored as an override (index or name) on
	// startup.
	EnvActiveLegacy = "ANTHROPIC_ACTIVE_CONFIG"
	EnvConfirmed    = "ANTHROPIC_CONFIG_CONFIRMED"

	// EnvDefault selects the startup profile when no override is present.
	EnvDefault = "AE_DEFAULT"
)

// State is the active selection for this shell session, rebuilt from the
// environment on every invocation rather than kept in globals.
type State struct {
	Slug      string
	Index     int
	Confirmed bool
}

// Active reports whether any profile has been selected this session.
func (s State) Active() bool {
	return s.Slug != ""
}

// FromEnv rebuilds the session state from the process environment.
func FromEnv() State {
	index, _ := strconv.Atoi(os.Getenv(EnvActiveIndex))
	return State{
		Slug:      os.Getenv(EnvActiveSlug),
		Index:     index,
		Confirmed: os.Getenv(EnvConfirmed) == "1",
	}
}

// Var is a single environment assignment. Order matters for rendering.
type Var struct {
	Key   string
	Value string
}

// Activation is the full environment set for one selected profile.
type Activation struct {
	State State
	vars  []Var
}

// Vars returns the environment assignments in a fixed order. Every key is
// present on every activation, unset fields as empty strings.
func (a *Activation) Vars() []Var {
	return a.vars
}

// Activate builds the environment set for identifier. The identifier must
// already be resolved; an unknown one is an error and mutates nothing.
// confirmed is true only on explicit switch paths.
func Activate(store *config.Store, identifier string, confirmed bool) (*Activation, error) {
	p, ok := store.Lookup(identifier)
	if !ok {
		return nil, fmt.Errorf("unknown profile '%s'", identifier)
	}

	index := store.Index(identifier)
	state := State{Slug: identifier, Index: index, Confirmed: confirmed}

	confirmedVal := ""
	if confirmed {
		confirmedVal = "1"
	}

	return &Activation{
		State: state,
		vars: []Var{
			{EnvBaseURL, p.BaseURL},
			{EnvAuthToken, p.AuthToken},
			{EnvAPIKey, p.AuthToken},
			{EnvModel, p.Model},
			{EnvSmallFastModel, p.SmallFastModel},
			{EnvActiveSlug, identifier},
			{EnvActiveIndex, strconv.Itoa(index)},
			{EnvActiveLegacy, strconv.Itoa(index)},
			{EnvConfirmed, confirmedVal},
		},
	}, nil
}

// Select runs the startup precedence chain: explicit override, configured
// default, then the first stored profile. It returns nil when a selection
// already exists or the store is empty; it never re-runs within a session.
func Select(store *config.Store, current State) (*Activation, error) {
	if current.Active() {
		return nil, nil
	}
	if store.Len() == 0 {
		return nil, nil
	}

	for _, token := range []string{os.Getenv(EnvActiveLegacy), os.Getenv(EnvDefault)} {
		if token == "" {
			continue
		}
		identifier, err := store.Resolve(token)
		if err != nil {
			continue
		}
		return Activate(store, identifier, false)
	}

	identifier, err := store.Resolve("1")
	if err != nil {
		return nil, err
	}
	return Activate(store, identifier, false)
}

// Summary renders the active selection for display. The secret is always
// masked and never echoed literally.
func Summary(s State, getenv func(string) string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Active configuration: %s (#%d)\n", s.Slug, s.Index)

	if url := getenv(EnvBaseURL); url != "" {
		fmt.Fprintf(&b, "  Base URL:   %s\n", url)
	}
	if token := getenv(EnvAuthToken); token != "" {
		fmt.Fprintf(&b, "  Auth Token: %s\n", utils.MaskAPIKey(token))
	}
	if model := getenv(EnvModel); model != "" {
		fmt.Fprintf(&b, "  Model:      %s\n", model)
	}
	if fast := getenv(EnvSmallFastModel); fast != "" {
		fmt.Fprintf(&b, "  Fast Model: %s\n", fast)
	}
	if !s.Confirmed {
		b.WriteString("  (selected automatically, not yet confirmed)\n")
	}
	return b.String()
}
