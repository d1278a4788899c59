package config

import (
	"os"
	"path/filepath"
)

const defaultRuntimeDir = ".advogado"

// GetRuntimePath is the directory holding .env, the API key file and the
// SQLite database. Relative paths are taken from the home directory.
func GetRuntimePath() string {
	return resolveRuntimePath(os.Getenv("ADVOGADO_RUNTIME_PATH"))
}

func resolveRuntimePath(path string) string {
	if path == "" {
		path = defaultRuntimeDir
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
