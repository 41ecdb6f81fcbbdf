package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"classlauncher/models"
)

// schemaVersion marks the document shape. There are no versioned migrations:
// anything unreadable is replaced with defaults wholesale.
const schemaVersion = 1

// rawDoc holds the config document keys before per-field decoding. Each key
// is decoded independently so one bad field never poisons the rest.
type rawDoc map[string]json.RawMessage

// fileDocument is the shape written to disk. Every known key is always
// emitted so the file stays a complete, self-describing snapshot.
type fileDocument struct {
	SchemaVersion int `json:"schemaVersion"`
	models.Settings
	Buttons  []models.Button `json:"buttons"`
	Students []string        `json:"students"`
}

// parseDocument returns the top-level object, or an error when the bytes are
// not a JSON object.
func parseDocument(data []byte) (rawDoc, error) {
	var doc rawDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config is not a JSON object: %w", err)
	}
	return doc, nil
}

func intField(doc rawDoc, key string, def int) int {
	raw, ok := doc[key]
	if !ok {
		return def
	}
	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

func boolField(doc rawDoc, key string, def bool) bool {
	raw, ok := doc[key]
	if !ok {
		return def
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

func stringField(doc rawDoc, key string, def string) string {
	raw, ok := doc[key]
	if !ok {
		return def
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

// rawArray returns the elements of an array-valued key, or nil
func rawArray(doc rawDoc, key string) []json.RawMessage {
	raw, ok := doc[key]
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

// stringArray returns the string elements of an array-valued key, skipping
// anything that is not a string
func stringArray(doc rawDoc, key string) []string {
	var out []string
	for _, raw := range rawArray(doc, key) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}

// decodeSettings reads each settings field independently, falling back to
// its default on a missing or type-mismatched key, then clamps the result.
func decodeSettings(doc rawDoc) models.Settings {
	s := models.DefaultSettings()

	s.SeewoPath = stringField(doc, "seewoPath", s.SeewoPath)
	s.IconSize = intField(doc, "iconSize", s.IconSize)
	s.FloatingOpacity = intField(doc, "floatingOpacity", s.FloatingOpacity)
	s.AttendanceSummaryWidth = intField(doc, "attendanceSummaryWidth", s.AttendanceSummaryWidth)
	s.SidebarWidth = intField(doc, "sidebarWidth", s.SidebarWidth)
	s.RandomHistorySize = intField(doc, "randomHistorySize", s.RandomHistorySize)
	s.AnimationDurationMs = intField(doc, "animationDurationMs", s.AnimationDurationMs)
	s.GroupSplitSize = intField(doc, "groupSplitSize", s.GroupSplitSize)

	s.StartCollapsed = boolField(doc, "startCollapsed", s.StartCollapsed)
	s.TrayClickToOpen = boolField(doc, "trayClickToOpen", s.TrayClickToOpen)
	s.ShowAttendanceSummaryOnStart = boolField(doc, "showAttendanceSummaryOnStart", s.ShowAttendanceSummaryOnStart)
	s.RandomNoRepeat = boolField(doc, "randomNoRepeat", s.RandomNoRepeat)
	s.AllowExternalLinks = boolField(doc, "allowExternalLinks", s.AllowExternalLinks)
	s.CompactMode = boolField(doc, "compactMode", s.CompactMode)
	s.CollapseHidesToolWindows = boolField(doc, "collapseHidesToolWindows", s.CollapseHidesToolWindows)
	s.FirstRunCompleted = boolField(doc, "firstRunCompleted", s.FirstRunCompleted)

	s.ScoreTeamAName = stringField(doc, "scoreTeamAName", s.ScoreTeamAName)
	s.ScoreTeamBName = stringField(doc, "scoreTeamBName", s.ScoreTeamBName)
	s.ClassNote = stringField(doc, "classNote", s.ClassNote)
	s.AIAPIKey = stringField(doc, "aiApiKey", s.AIAPIKey)
	s.AIModel = stringField(doc, "aiModel", s.AIModel)
	s.AIEndpoint = stringField(doc, "aiEndpoint", s.AIEndpoint)

	s.Clamp()
	return s
}
