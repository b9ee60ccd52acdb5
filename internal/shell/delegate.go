package shell

import (
	"os"
	"path/filepath"
)

func executable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode()&0111 != 0
}

// FindNext locates the next executable named name on PATH, skipping this
// binary itself. cccript is installed as a shim under the wrapped tool's
// name, so the real tool is whatever comes later in the search order.
// Returns "" when no delegate exists.
func FindNext(name string) string {
	self, _ := os.Executable()
	selfInfo, _ := os.Stat(self)

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, name)
		if !executable(candidate) {
			continue
		}
		if selfInfo != nil {
			if info, err := os.Stat(candidate); err == nil && os.SameFile(info, selfInfo) {
				continue
			}
		}
		return candidate
	}
	return ""
}
