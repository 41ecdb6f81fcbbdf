package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"classlauncher/models"
	"classlauncher/registry"
	"classlauncher/roster"
	"classlauncher/storage"
)

func newTestService(t *testing.T) (*Service, *storage.Manager) {
	t.Helper()
	store := storage.NewManagerAt(t.TempDir())
	return NewService(store), store
}

func TestMissingFileSeedsDefaultsAndPersists(t *testing.T) {
	svc, store := newTestService(t)

	if _, err := os.Stat(store.ConfigPath()); err != nil {
		t.Fatalf("config file should exist after first load: %v", err)
	}
	if got := svc.Settings(); got != models.DefaultSettings() {
		t.Errorf("settings should be defaults, got %+v", got)
	}
	if got := svc.Buttons(); len(got) != len(registry.DefaultButtons()) {
		t.Errorf("buttons should be the default set, got %d", len(got))
	}
	if got := svc.Students(); !reflect.DeepEqual(got, roster.DefaultStudents()) {
		t.Errorf("students should be the sample roster, got %v", got)
	}

	// The persisted file must be re-parseable and equivalent.
	data, err := store.ReadConfig()
	if err != nil {
		t.Fatalf("reading persisted config: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("persisted config is not valid JSON: %v", err)
	}
}

func TestCorruptFileSeedsDefaults(t *testing.T) {
	for _, content := range []string{"not json at all", `[1, 2, 3]`, `"just a string"`, `42`} {
		store := storage.NewManagerAt(t.TempDir())
		if err := store.WriteConfig([]byte(content)); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		svc := NewService(store)
		if got := svc.Settings(); got != models.DefaultSettings() {
			t.Errorf("content %q: expected default settings", content)
		}

		// And it rewrote the file into a loadable state.
		again := NewService(store)
		if got := again.Settings(); got != models.DefaultSettings() {
			t.Errorf("content %q: rewritten file did not load as defaults", content)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	svc, store := newTestService(t)

	err := svc.UpdateSettings(func(s *models.Settings) {
		s.IconSize = 60
		s.FloatingOpacity = 50
		s.StartCollapsed = true
		s.ClassNote = "明天早读检查背诵"
		s.FirstRunCompleted = true
	})
	if err != nil {
		t.Fatalf("updating settings: %v", err)
	}
	custom := models.NewButton("课件", "", models.ActionExecutable, "D:/lessons/run.exe")
	if err := svc.SetButtons(append(svc.Buttons(), custom)); err != nil {
		t.Fatalf("setting buttons: %v", err)
	}
	if err := svc.SetStudents([]string{"甲", "乙", "丙"}); err != nil {
		t.Fatalf("setting students: %v", err)
	}

	reloaded := NewService(store)
	if got, want := reloaded.Settings(), svc.Settings(); got != want {
		t.Errorf("settings did not round-trip:\n got %+v\nwant %+v", got, want)
	}
	if got, want := reloaded.Buttons(), svc.Buttons(); !reflect.DeepEqual(got, want) {
		t.Errorf("buttons did not round-trip:\n got %+v\nwant %+v", got, want)
	}
	if got, want := reloaded.Students(), []string{"甲", "乙", "丙"}; !reflect.DeepEqual(got, want) {
		t.Errorf("students did not round-trip: got %v want %v", got, want)
	}
}

func TestOutOfRangeValuesAreClampedOnLoad(t *testing.T) {
	store := storage.NewManagerAt(t.TempDir())
	fixture := `{
		"iconSize": 999,
		"floatingOpacity": -5,
		"sidebarWidth": "wide",
		"randomHistorySize": true,
		"startCollapsed": "yes",
		"buttons": [],
		"students": []
	}`
	if err := store.WriteConfig([]byte(fixture)); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	svc := NewService(store)
	s := svc.Settings()
	if s.IconSize != 72 {
		t.Errorf("iconSize = %d, want 72", s.IconSize)
	}
	if s.FloatingOpacity != 35 {
		t.Errorf("floatingOpacity = %d, want 35", s.FloatingOpacity)
	}
	// Type-mismatched fields fall back to their defaults without poisoning
	// the rest of the document.
	if s.SidebarWidth != models.DefaultSettings().SidebarWidth {
		t.Errorf("sidebarWidth = %d, want default", s.SidebarWidth)
	}
	if s.RandomHistorySize != models.DefaultSettings().RandomHistorySize {
		t.Errorf("randomHistorySize = %d, want default", s.RandomHistorySize)
	}
	if s.StartCollapsed != false {
		t.Error("mismatched bool should fall back to default")
	}
}

func TestButtonFilteringOnLoad(t *testing.T) {
	store := storage.NewManagerAt(t.TempDir())
	fixture := `{
		"buttons": [
			{"name": "保留", "icon": "a.png", "action": "url", "target": "https://keep.example"},
			{"name": "", "icon": "b.png", "action": "url", "target": "https://drop.example"},
			{"name": "弃用", "icon": "c.png", "action": "url", "target": "classisland://open"}
		],
		"students": ["某人"]
	}`
	if err := store.WriteConfig([]byte(fixture)); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	svc := NewService(store)
	buttons := svc.Buttons()
	if len(buttons) != 1 || buttons[0].Name != "保留" {
		t.Errorf("expected only the valid button to survive, got %+v", buttons)
	}
}

func TestSetButtonsEmptyRestoresDefaults(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.SetButtons(nil); err != nil {
		t.Fatalf("SetButtons: %v", err)
	}
	if got := svc.Buttons(); len(got) != len(registry.DefaultButtons()) {
		t.Errorf("empty button list should be replaced with defaults, got %d", len(got))
	}
}

func TestRestoreDefaultButtons(t *testing.T) {
	svc, _ := newTestService(t)

	// Drop everything but the first default.
	if err := svc.SetButtons(svc.Buttons()[:1]); err != nil {
		t.Fatalf("SetButtons: %v", err)
	}

	restored, err := svc.RestoreDefaultButtons()
	if err != nil {
		t.Fatalf("RestoreDefaultButtons: %v", err)
	}
	if want := len(registry.DefaultButtons()) - 1; restored != want {
		t.Errorf("restored = %d, want %d", restored, want)
	}

	// Second run is a no-op.
	restored, err = svc.RestoreDefaultButtons()
	if err != nil {
		t.Fatalf("second RestoreDefaultButtons: %v", err)
	}
	if restored != 0 {
		t.Errorf("second restore should be 0, got %d", restored)
	}
}

func TestResetToDefaultsPreservesFirstRun(t *testing.T) {
	svc, _ := newTestService(t)

	if err := svc.UpdateSettings(func(s *models.Settings) {
		s.FirstRunCompleted = true
		s.IconSize = 60
	}); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}

	if err := svc.ResetToDefaults(true); err != nil {
		t.Fatalf("ResetToDefaults: %v", err)
	}
	s := svc.Settings()
	if !s.FirstRunCompleted {
		t.Error("firstRunCompleted should be preserved")
	}
	if s.IconSize != models.DefaultSettings().IconSize {
		t.Errorf("iconSize should reset, got %d", s.IconSize)
	}

	if err := svc.ResetToDefaults(false); err != nil {
		t.Fatalf("ResetToDefaults: %v", err)
	}
	if svc.Settings().FirstRunCompleted {
		t.Error("firstRunCompleted should reset when not preserved")
	}
}

func TestImportStudentsReplacesRoster(t *testing.T) {
	svc, store := newTestService(t)

	path := filepath.Join(t.TempDir(), "class.txt")
	if err := os.WriteFile(path, []byte("甲,乙;丙\n甲"), 0644); err != nil {
		t.Fatalf("writing roster: %v", err)
	}

	if impErr := svc.ImportStudents(path); impErr != nil {
		t.Fatalf("import failed: %v", impErr)
	}
	want := []string{"甲", "乙", "丙"}
	if got := svc.Students(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Replacement persisted.
	reloaded := NewService(store)
	if got := reloaded.Students(); !reflect.DeepEqual(got, want) {
		t.Errorf("import not persisted: %v", got)
	}
}

func TestFailedImportKeepsExistingRoster(t *testing.T) {
	svc, _ := newTestService(t)
	before := svc.Students()

	impErr := svc.ImportStudents(filepath.Join(t.TempDir(), "roster.xlsx"))
	if impErr == nil || impErr.Kind != roster.UnsupportedFormat {
		t.Fatalf("expected UnsupportedFormat, got %v", impErr)
	}
	if got := svc.Students(); !reflect.DeepEqual(got, before) {
		t.Errorf("roster changed after failed import: %v", got)
	}
}

func TestLoadDiscardsInMemoryEdits(t *testing.T) {
	svc, _ := newTestService(t)

	if err := svc.UpdateSettings(func(s *models.Settings) { s.IconSize = 60 }); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}

	// Mutate in memory without saving, then reload.
	svc.settings.IconSize = 30
	svc.Load()
	if got := svc.Settings().IconSize; got != 60 {
		t.Errorf("Load should re-read persisted state, got iconSize %d", got)
	}
}

func TestUnknownKeysIgnored(t *testing.T) {
	store := storage.NewManagerAt(t.TempDir())
	fixture := `{"iconSize": 50, "futureFeature": {"nested": true}, "students": ["某人"], "buttons": []}`
	if err := store.WriteConfig([]byte(fixture)); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	svc := NewService(store)
	if got := svc.Settings().IconSize; got != 50 {
		t.Errorf("iconSize = %d, want 50", got)
	}
}
