// Package config owns the persisted application document: settings, the
// button list, and the student roster, loaded and saved as one JSON file.
package config

import (
	"encoding/json"
	"fmt"
	"log"

	"classlauncher/models"
	"classlauncher/registry"
	"classlauncher/roster"
	"classlauncher/storage"
)

// Service loads the config document once at startup and writes the whole
// document back after every mutation. Construct one per process and pass it
// to whatever needs configuration; there is no package-level instance.
type Service struct {
	store    *storage.Manager
	settings models.Settings
	buttons  []models.Button
	students []string
}

// NewService creates the service and performs the initial load. A missing or
// invalid file is replaced with compiled-in defaults and persisted
// immediately, so the file always exists after first run.
func NewService(store *storage.Manager) *Service {
	s := &Service{store: store}
	s.Load()
	return s
}

// Load re-reads the document from disk, discarding in-memory edits. Any
// failure to read or parse seeds defaults and persists them.
func (s *Service) Load() {
	data, err := s.store.ReadConfig()
	if err != nil {
		s.applyDefaults()
		if saveErr := s.Save(); saveErr != nil {
			log.Printf("could not write initial config: %v", saveErr)
		}
		return
	}

	doc, err := parseDocument(data)
	if err != nil {
		log.Printf("config unreadable, falling back to defaults: %v", err)
		s.applyDefaults()
		if saveErr := s.Save(); saveErr != nil {
			log.Printf("could not rewrite config: %v", saveErr)
		}
		return
	}

	s.settings = decodeSettings(doc)
	s.buttons = registry.Load(rawArray(doc, "buttons"))
	s.students = roster.Normalize(stringArray(doc, "students"))
	if len(s.students) == 0 {
		s.students = roster.DefaultStudents()
	}
}

// Save serializes the entire in-memory document and overwrites the file
func (s *Service) Save() error {
	doc := fileDocument{
		SchemaVersion: schemaVersion,
		Settings:      s.settings,
		Buttons:       s.buttons,
		Students:      s.students,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := s.store.WriteConfig(data); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (s *Service) applyDefaults() {
	s.settings = models.DefaultSettings()
	s.buttons = registry.DefaultButtons()
	s.students = roster.DefaultStudents()
}

// ResetToDefaults reinitializes settings, buttons and roster to compiled-in
// defaults, optionally preserving the first-run flag, then persists.
func (s *Service) ResetToDefaults(preserveFirstRun bool) error {
	firstRun := s.settings.FirstRunCompleted
	s.applyDefaults()
	if preserveFirstRun {
		s.settings.FirstRunCompleted = firstRun
	}
	return s.Save()
}

// Settings returns a copy of the current settings
func (s *Service) Settings() models.Settings {
	return s.settings
}

// UpdateSettings applies fn to the settings, clamps the result, and persists
func (s *Service) UpdateSettings(fn func(*models.Settings)) error {
	fn(&s.settings)
	s.settings.Clamp()
	return s.Save()
}

// Buttons returns a copy of the current button list
func (s *Service) Buttons() []models.Button {
	out := make([]models.Button, len(s.buttons))
	copy(out, s.buttons)
	return out
}

// SetButtons replaces the button list and persists. An empty list is
// replaced with the default set.
func (s *Service) SetButtons(buttons []models.Button) error {
	if len(buttons) == 0 {
		buttons = registry.DefaultButtons()
	}
	s.buttons = make([]models.Button, len(buttons))
	copy(s.buttons, buttons)
	return s.Save()
}

// RestoreDefaultButtons appends any missing default button and persists if
// anything was restored. Returns how many were restored.
func (s *Service) RestoreDefaultButtons() (int, error) {
	merged, restored := registry.RestoreMissingDefaults(s.buttons)
	if restored == 0 {
		return 0, nil
	}
	s.buttons = merged
	return restored, s.Save()
}

// Students returns a copy of the current roster
func (s *Service) Students() []string {
	out := make([]string, len(s.students))
	copy(out, s.students)
	return out
}

// SetStudents replaces the roster (normalized) and persists. An empty list
// falls back to the sample roster.
func (s *Service) SetStudents(students []string) error {
	students = roster.Normalize(students)
	if len(students) == 0 {
		students = roster.DefaultStudents()
	}
	s.students = students
	return s.Save()
}

// ImportStudents replaces the roster from a text file. On any import error
// the existing roster is left untouched.
func (s *Service) ImportStudents(filePath string) *roster.ImportError {
	names, impErr := roster.ImportFromText(filePath)
	if impErr != nil {
		return impErr
	}
	s.students = names
	if err := s.Save(); err != nil {
		log.Printf("roster imported but save failed: %v", err)
	}
	return nil
}
