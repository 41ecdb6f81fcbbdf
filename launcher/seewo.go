package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DetectSeewoPath probes the well-known EasiNote install locations and
// returns the first one that exists. The configured seewoPath always takes
// precedence; this is only consulted when the user has never set one and the
// default is missing.
func DetectSeewoPath() (string, error) {
	var possiblePaths []string

	switch runtime.GOOS {
	case "windows":
		possiblePaths = []string{
			"C:\\Program Files (x86)\\Seewo\\EasiNote5\\swenlauncher\\swenlauncher.exe",
			"C:\\Program Files\\Seewo\\EasiNote5\\swenlauncher\\swenlauncher.exe",
			filepath.Join(os.Getenv("PROGRAMFILES(X86)"), "Seewo", "EasiNote5", "swenlauncher", "swenlauncher.exe"),
			filepath.Join(os.Getenv("PROGRAMFILES"), "Seewo", "EasiNote5", "swenlauncher", "swenlauncher.exe"),
			filepath.Join(os.Getenv("LOCALAPPDATA"), "Seewo", "EasiNote5", "swenlauncher", "swenlauncher.exe"),
		}
	default:
		// EasiNote only ships for Windows; elsewhere the user must configure
		// a replacement whiteboard executable themselves.
		return "", fmt.Errorf("no known whiteboard install locations on %s", runtime.GOOS)
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("whiteboard installation not found")
}
