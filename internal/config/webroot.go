package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// WebFolder is the name of the directory holding the front-end assets,
// looked up next to the running executable
const WebFolder = "web"

// executable is replaced in tests
var executable = os.Executable

// ResolveWebRoot returns the absolute directory to serve files from. An
// explicit path wins, otherwise the web folder next to the executable is
// used. The executable path has its symlinks evaluated so an installed
// symlink points at the real distribution directory.
func ResolveWebRoot(explicit string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}

	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("evaluating executable symlinks: %w", err)
	}

	return filepath.Join(filepath.Dir(exe), WebFolder), nil
}
