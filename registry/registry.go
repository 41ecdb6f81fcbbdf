// Package registry owns the ordered list of launchable buttons: loading with
// validation, the compiled-in default set, and the list mutations the
// settings surface performs.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"classlauncher/models"

	"github.com/google/uuid"
)

// legacySentinelTarget marks entries written by an abandoned integration;
// they are filtered out on load.
const legacySentinelTarget = "classisland://open"

// ErrProtected is returned when a removal policy refuses to delete a system
// button.
var ErrProtected = errors.New("button is protected")

// DefaultButtons returns the compiled-in default button set. IDs are stable
// so restored defaults round-trip identically.
func DefaultButtons() []models.Button {
	return []models.Button{
		{ID: "default_seewo", Name: "希沃白板", Icon: "icon_seewo.png", Action: models.ActionExecutable, Target: models.SeewoTarget, IsSystem: true},
		{ID: "default_attendance", Name: "班级考勤", Icon: "icon_attendance.png", Action: models.ActionBuiltin, Target: models.BuiltinAttendance, IsSystem: true},
		{ID: "default_random", Name: "随机点名", Icon: "icon_random.png", Action: models.ActionBuiltin, Target: models.BuiltinRandomCall, IsSystem: true},
		{ID: "default_ai", Name: "AI 助手", Icon: "icon_ai.png", Action: models.ActionURL, Target: "https://www.doubao.com/chat/", IsSystem: true},
		{ID: "default_settings", Name: "设置", Icon: "icon_settings.png", Action: models.ActionBuiltin, Target: models.BuiltinSettings, IsSystem: true},
	}
}

// wireButton matches the persisted button object shape
type wireButton struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Action   string `json:"action"`
	Target   string `json:"target"`
	IsSystem bool   `json:"isSystem"`
}

// Load parses a persisted buttons array. Entries with an empty name, action
// or target after trimming, an unknown action kind, or the legacy sentinel
// target are dropped. Bundled-resource prefixes on icon references are
// stripped. An empty result is replaced with the default set so the launcher
// never persists an empty actionable surface.
func Load(entries []json.RawMessage) []models.Button {
	var buttons []models.Button
	for _, raw := range entries {
		var w wireButton
		if err := json.Unmarshal(raw, &w); err != nil {
			continue
		}
		name := strings.TrimSpace(w.Name)
		target := strings.TrimSpace(w.Target)
		if name == "" || target == "" || target == legacySentinelTarget {
			continue
		}
		kind, err := models.ParseActionKind(w.Action)
		if err != nil {
			continue
		}
		id := strings.TrimSpace(w.ID)
		if id == "" {
			id = uuid.New().String()
		}
		buttons = append(buttons, models.Button{
			ID:       id,
			Name:     name,
			Icon:     models.NormalizeIconRef(w.Icon),
			Action:   kind,
			Target:   target,
			IsSystem: w.IsSystem,
		})
	}
	if len(buttons) == 0 {
		return DefaultButtons()
	}
	return buttons
}

// RestoreMissingDefaults appends every default button whose target is absent
// from current, preserving the order of existing entries. Idempotent: a
// second call with no intervening change restores nothing.
func RestoreMissingDefaults(current []models.Button) ([]models.Button, int) {
	present := make(map[string]bool, len(current))
	for _, b := range current {
		present[b.Target] = true
	}

	merged := make([]models.Button, len(current))
	copy(merged, current)

	restored := 0
	for _, def := range DefaultButtons() {
		if present[def.Target] {
			continue
		}
		merged = append(merged, def)
		restored++
	}
	return merged, restored
}

// Add appends a button to the list
func Add(buttons []models.Button, b models.Button) []models.Button {
	out := make([]models.Button, len(buttons))
	copy(out, buttons)
	return append(out, b)
}

// Remove deletes the button at index. It does not consult IsSystem; callers
// enforcing the protection policy use RemoveUnprotected.
func Remove(buttons []models.Button, index int) ([]models.Button, error) {
	if index < 0 || index >= len(buttons) {
		return buttons, fmt.Errorf("button index %d out of range", index)
	}
	out := make([]models.Button, 0, len(buttons)-1)
	out = append(out, buttons[:index]...)
	out = append(out, buttons[index+1:]...)
	return out, nil
}

// RemoveUnprotected deletes the button at index unless it is a system
// button, in which case ErrProtected is returned and the list is unchanged.
func RemoveUnprotected(buttons []models.Button, index int) ([]models.Button, error) {
	if index < 0 || index >= len(buttons) {
		return buttons, fmt.Errorf("button index %d out of range", index)
	}
	if buttons[index].IsSystem {
		return buttons, ErrProtected
	}
	return Remove(buttons, index)
}

// MoveUp swaps the button at index with its predecessor
func MoveUp(buttons []models.Button, index int) []models.Button {
	if index <= 0 || index >= len(buttons) {
		return buttons
	}
	out := make([]models.Button, len(buttons))
	copy(out, buttons)
	out[index-1], out[index] = out[index], out[index-1]
	return out
}

// MoveDown swaps the button at index with its successor
func MoveDown(buttons []models.Button, index int) []models.Button {
	if index < 0 || index >= len(buttons)-1 {
		return buttons
	}
	out := make([]models.Button, len(buttons))
	copy(out, buttons)
	out[index], out[index+1] = out[index+1], out[index]
	return out
}
