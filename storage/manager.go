package storage

import (
	"os"
	"path/filepath"
)

// Manager handles data persistence paths
type Manager struct {
	dataPath string
}

// NewManager creates a storage manager rooted at the per-user data directory
func NewManager() *Manager {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	dataPath := filepath.Join(homeDir, ".classlauncher")
	if err := os.MkdirAll(dataPath, 0755); err != nil {
		// Fallback to current directory
		dataPath = "."
	}

	return &Manager{
		dataPath: dataPath,
	}
}

// NewManagerAt creates a storage manager rooted at an explicit directory.
// Tests use this to keep state inside a temp dir.
func NewManagerAt(dataPath string) *Manager {
	_ = os.MkdirAll(dataPath, 0755)
	return &Manager{dataPath: dataPath}
}

// DataPath returns the data directory
func (m *Manager) DataPath() string {
	return m.dataPath
}

// ConfigPath returns the path of the single JSON config document
func (m *Manager) ConfigPath() string {
	return filepath.Join(m.dataPath, "config.json")
}

// IconCacheDir returns the icon cache directory, creating it if needed
func (m *Manager) IconCacheDir() string {
	dir := filepath.Join(m.dataPath, "icons")
	_ = os.MkdirAll(dir, 0755)
	return dir
}

// ReadConfig reads the raw config document from disk
func (m *Manager) ReadConfig() ([]byte, error) {
	return os.ReadFile(m.ConfigPath())
}

// WriteConfig overwrites the config document on disk
func (m *Manager) WriteConfig(data []byte) error {
	return os.WriteFile(m.ConfigPath(), data, 0644)
}
