package launcher

import (
	"strings"
	"testing"

	"classlauncher/models"
)

func TestRegisterBuiltinRejectsUnknownIDs(t *testing.T) {
	m := NewManager()
	if err := m.RegisterBuiltin("DANCE_PARTY", func() {}); err == nil {
		t.Error("unknown builtin id should be rejected")
	}
	for _, id := range models.KnownBuiltins() {
		if err := m.RegisterBuiltin(id, func() {}); err != nil {
			t.Errorf("known builtin %s rejected: %v", id, err)
		}
	}
}

func TestLaunchDispatchesBuiltin(t *testing.T) {
	m := NewManager()
	called := false
	if err := m.RegisterBuiltin(models.BuiltinRandomCall, func() { called = true }); err != nil {
		t.Fatalf("registering builtin: %v", err)
	}

	btn := models.Button{Name: "点名", Action: models.ActionBuiltin, Target: models.BuiltinRandomCall}
	if err := m.Launch(btn, models.DefaultSettings()); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if !called {
		t.Error("builtin handler was not invoked")
	}
}

func TestLaunchUnregisteredBuiltinFails(t *testing.T) {
	m := NewManager()
	btn := models.Button{Name: "考勤", Action: models.ActionBuiltin, Target: models.BuiltinAttendance}
	if err := m.Launch(btn, models.DefaultSettings()); err == nil {
		t.Error("dispatching an unregistered builtin should fail")
	}
}

func TestLaunchURLRespectsExternalLinkPolicy(t *testing.T) {
	m := NewManager()
	var opened string
	m.openURL = func(url string) error {
		opened = url
		return nil
	}

	btn := models.Button{Name: "AI", Action: models.ActionURL, Target: "https://example.com"}

	settings := models.DefaultSettings()
	settings.AllowExternalLinks = false
	if err := m.Launch(btn, settings); err == nil {
		t.Error("URL launch should be refused when external links are disabled")
	}
	if opened != "" {
		t.Error("no URL should have been opened")
	}

	settings.AllowExternalLinks = true
	if err := m.Launch(btn, settings); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if opened != "https://example.com" {
		t.Errorf("opened %q, want the button target", opened)
	}
}

func TestLaunchExecutableResolvesSeewoSentinel(t *testing.T) {
	m := NewManager()

	settings := models.DefaultSettings()
	settings.SeewoPath = "/nonexistent/board.exe"

	btn := models.Button{Name: "白板", Action: models.ActionExecutable, Target: models.SeewoTarget}
	err := m.Launch(btn, settings)
	if err == nil {
		t.Fatal("launching a missing executable should fail")
	}
	if !strings.Contains(err.Error(), "board.exe") {
		t.Errorf("error should mention the configured path, got: %v", err)
	}
}

func TestLaunchMissingExecutable(t *testing.T) {
	m := NewManager()
	btn := models.Button{Name: "工具", Action: models.ActionExecutable, Target: "/no/such/tool"}
	if err := m.Launch(btn, models.DefaultSettings()); err == nil {
		t.Error("missing executable should fail")
	}
}

func TestCleanPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`"/usr/bin/tool"`, "/usr/bin/tool"},
		{`'/usr/bin/tool'`, "/usr/bin/tool"},
		{"/usr//bin/../bin/tool", "/usr/bin/tool"},
	}
	for _, tc := range cases {
		if got := cleanPath(tc.in); got != tc.want {
			t.Errorf("cleanPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
