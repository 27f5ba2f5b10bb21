// Package platform reports operating-system facts and bootstraps the
// application's config directory. Values here are computed once from the
// environment; the rest of the program treats them as constants.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// IsWindows reports whether the current operating system is Windows.
var IsWindows = runtime.GOOS == "windows"

// appDirName is the subdirectory used under the user config directory.
const appDirName = "subtle"

// Family returns the OS family: "windows", "darwin" or "unix".
func Family() string {
	switch runtime.GOOS {
	case "windows":
		return "windows"
	case "darwin":
		return "darwin"
	default:
		return "unix"
	}
}

// PathSeparator returns the path separator for the current OS as a string.
func PathSeparator() string {
	return string(os.PathSeparator)
}

// ConfigDir returns the application's config directory, creating it on
// first use.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	dir := filepath.Join(base, appDirName)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create config dir: %w", err)
		}
	}
	return dir, nil
}
