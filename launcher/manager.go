// Package launcher executes button actions: external programs, URLs, and
// in-process builtin tools.
package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"classlauncher/models"
)

// BuiltinFunc is a handler for one builtin tool identifier
type BuiltinFunc func()

// Manager dispatches button actions
type Manager struct {
	builtins map[string]BuiltinFunc
	// openURL overrides the OS browser launch, for tests
	openURL func(url string) error
}

// NewManager creates a launcher with no builtins registered
func NewManager() *Manager {
	m := &Manager{builtins: make(map[string]BuiltinFunc)}
	m.openURL = m.openInBrowser
	return m
}

// RegisterBuiltin registers the handler for a builtin identifier. Unknown
// identifiers are rejected here so a typo surfaces at wiring time, not when
// a teacher clicks the button mid-class.
func (m *Manager) RegisterBuiltin(id string, fn BuiltinFunc) error {
	if !models.IsKnownBuiltin(id) {
		return fmt.Errorf("unknown builtin identifier %q", id)
	}
	m.builtins[id] = fn
	return nil
}

// Launch executes the button's action. Settings supply the configured
// whiteboard path for the SEEWO sentinel and the external-link policy.
func (m *Manager) Launch(btn models.Button, settings models.Settings) error {
	switch btn.Action {
	case models.ActionExecutable:
		return m.launchExecutable(btn.Target, settings)
	case models.ActionURL:
		if !settings.AllowExternalLinks {
			return fmt.Errorf("external links are disabled in settings")
		}
		return m.openURL(btn.Target)
	case models.ActionBuiltin:
		fn, ok := m.builtins[btn.Target]
		if !ok {
			return fmt.Errorf("no handler registered for builtin %q", btn.Target)
		}
		fn()
		return nil
	}
	return fmt.Errorf("unknown action kind %q", btn.Action)
}

func (m *Manager) launchExecutable(target string, settings models.Settings) error {
	if target == models.SeewoTarget {
		target = settings.SeewoPath
	}
	executable := cleanPath(target)

	if _, err := os.Stat(executable); os.IsNotExist(err) {
		return fmt.Errorf("executable not found: %s", executable)
	}

	cmd := exec.Command(executable)
	cmd.Dir = filepath.Dir(executable)
	return cmd.Start()
}

// openInBrowser opens a URL with the platform's default handler
func (m *Manager) openInBrowser(url string) error {
	switch runtime.GOOS {
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		return exec.Command("open", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}

// cleanPath cleans and normalizes a file path
func cleanPath(path string) string {
	// Remove surrounding quotes
	path = strings.Trim(path, `"'`)

	return filepath.Clean(path)
}
