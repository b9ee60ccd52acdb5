// Package slug normalizes human-entered configuration names into stable
// identifiers and storage keys.
package slug

import "strings"

// FallbackIdentifier is returned when a name slugifies to nothing.
const FallbackIdentifier = "config"

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// ToIdentifier converts a display name into its canonical identifier:
// lowercase, every run of non-alphanumeric characters collapsed into a
// single '-', leading and trailing separators stripped. The result is
// never empty and the transform is idempotent.
func ToIdentifier(name string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(name) {
		if isAlnum(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		} else {
			pendingSep = true
		}
	}
	if b.Len() == 0 {
		return FallbackIdentifier
	}
	return b.String()
}

// StorageKey converts an identifier into the uppercase fragment used to
// build composite keys in the profile file. Identifier uniqueness is
// enforced before this transform, so '-' and '_' collapsing to the same
// character cannot collide here.
func StorageKey(identifier string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(identifier) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
