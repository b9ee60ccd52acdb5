package utils

import (
	"strings"
	"testing"
)

func TestMaskAPIKey(t *testing.T) {
	cases := []struct {
		name string
		key  string
		want string
	}{
		{"long key keeps edges", "sk-ant-api03-abcdef", "sk-a****cdef"},
		{"short key fully masked", "secret", "****"},
		{"empty key", "", "****"},
		{"boundary length", "12345678", "****"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MaskAPIKey(tc.key); got != tc.want {
				t.Errorf("MaskAPIKey(%q) = %q, want %q", tc.key, got, tc.want)
			}
		})
	}
}

func TestMaskAPIKeyNeverLeaksFullSecret(t *testing.T) {
	secrets := []string{"sk-ant-REDACTED", "short", "0123456789abcdef"}
	for _, s := range secrets {
		if strings.Contains(MaskAPIKey(s), s) {
			t.Errorf("MaskAPIKey(%q) contains the literal secret", s)
		}
	}
}

func TestValidateURL(t *testing.T) {
	valid := []string{"https://api.anthropic.com", "http://localhost:8080", "https://x.example.com/v1"}
	for _, u := range valid {
		if !ValidateURL(u) {
			t.Errorf("ValidateURL(%q) = false, want true", u)
		}
	}

	invalid := []string{"", "not a url", "ftp://example.com", "https://"}
	for _, u := range invalid {
		if ValidateURL(u) {
			t.Errorf("ValidateURL(%q) = true, want false", u)
		}
	}
}

func TestExtractHost(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://x.example.com/v1", "x.example.com"},
		{"http://localhost:8080", "localhost"},
		{"garbage", ""},
	}

	for _, tc := range cases {
		if got := ExtractHost(tc.url); got != tc.want {
			t.Errorf("ExtractHost(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}
