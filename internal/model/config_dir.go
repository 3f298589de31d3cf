package model

import (
	"os"
	"path/filepath"
)

// defaultCacheDir places the narrative cache under the user cache directory,
// falling back to a relative directory when the platform has none.
func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ".yojana-cache"
	}
	return filepath.Join(base, "yojana")
}
