package filesystem

import (
	"os"
	"path/filepath"
)

// UserHomeDir returns the current user's home directory, falling back to "."
// when it cannot be determined.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// ConfigDir returns the tool's dot directory under the user home.
func ConfigDir() string {
	return filepath.Join(UserHomeDir(), ".wtf")
}
