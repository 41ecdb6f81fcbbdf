package models

import "strings"

// Settings represents application settings. Every numeric field is clamped
// into its documented range on load and on write, so in-memory state never
// holds an out-of-range value.
type Settings struct {
	SeewoPath                    string `json:"seewoPath"`
	IconSize                     int    `json:"iconSize"`
	FloatingOpacity              int    `json:"floatingOpacity"`
	AttendanceSummaryWidth       int    `json:"attendanceSummaryWidth"`
	SidebarWidth                 int    `json:"sidebarWidth"`
	RandomHistorySize            int    `json:"randomHistorySize"`
	AnimationDurationMs          int    `json:"animationDurationMs"`
	GroupSplitSize               int    `json:"groupSplitSize"`
	StartCollapsed               bool   `json:"startCollapsed"`
	TrayClickToOpen              bool   `json:"trayClickToOpen"`
	ShowAttendanceSummaryOnStart bool   `json:"showAttendanceSummaryOnStart"`
	RandomNoRepeat               bool   `json:"randomNoRepeat"`
	AllowExternalLinks           bool   `json:"allowExternalLinks"`
	CompactMode                  bool   `json:"compactMode"`
	CollapseHidesToolWindows     bool   `json:"collapseHidesToolWindows"`
	ScoreTeamAName               string `json:"scoreTeamAName"`
	ScoreTeamBName               string `json:"scoreTeamBName"`
	ClassNote                    string `json:"classNote"`
	AIAPIKey                     string `json:"aiApiKey"`
	AIModel                      string `json:"aiModel"`
	AIEndpoint                   string `json:"aiEndpoint"`
	FirstRunCompleted            bool   `json:"firstRunCompleted"`
}

// DefaultSeewoPath is the stock EasiNote install location on Windows.
const DefaultSeewoPath = "C:/Program Files (x86)/Seewo/EasiNote5/swenlauncher/swenlauncher.exe"

// Default AI collaborator endpoint and model, used until the user configures
// their own.
const (
	DefaultAIModel    = "gpt-4o-mini"
	DefaultAIEndpoint = "https://api.openai.com/v1/chat/completions"
)

// DefaultSettings returns default application settings
func DefaultSettings() Settings {
	return Settings{
		SeewoPath:                    DefaultSeewoPath,
		IconSize:                     46,
		FloatingOpacity:              85,
		AttendanceSummaryWidth:       360,
		SidebarWidth:                 92,
		RandomHistorySize:            5,
		AnimationDurationMs:          240,
		GroupSplitSize:               4,
		StartCollapsed:               false,
		TrayClickToOpen:              true,
		ShowAttendanceSummaryOnStart: true,
		RandomNoRepeat:               true,
		AllowExternalLinks:           true,
		CompactMode:                  false,
		CollapseHidesToolWindows:     false,
		ScoreTeamAName:               "A队",
		ScoreTeamBName:               "B队",
		ClassNote:                    "",
		AIAPIKey:                     "",
		AIModel:                      DefaultAIModel,
		AIEndpoint:                   DefaultAIEndpoint,
		FirstRunCompleted:            false,
	}
}

// Clamp forces every numeric field into its allowed range and trims string
// fields, substituting defaults for blank required values.
func (s *Settings) Clamp() {
	s.IconSize = clampInt(s.IconSize, 28, 72)
	s.FloatingOpacity = clampInt(s.FloatingOpacity, 35, 100)
	s.AttendanceSummaryWidth = clampInt(s.AttendanceSummaryWidth, 300, 520)
	s.SidebarWidth = clampInt(s.SidebarWidth, 84, 128)
	s.RandomHistorySize = clampInt(s.RandomHistorySize, 3, 10)
	s.AnimationDurationMs = clampInt(s.AnimationDurationMs, 120, 600)
	s.GroupSplitSize = clampInt(s.GroupSplitSize, 2, 12)

	s.SeewoPath = strings.TrimSpace(s.SeewoPath)
	if s.SeewoPath == "" {
		s.SeewoPath = DefaultSeewoPath
	}
	s.ScoreTeamAName = strings.TrimSpace(s.ScoreTeamAName)
	if s.ScoreTeamAName == "" {
		s.ScoreTeamAName = "A队"
	}
	s.ScoreTeamBName = strings.TrimSpace(s.ScoreTeamBName)
	if s.ScoreTeamBName == "" {
		s.ScoreTeamBName = "B队"
	}
	s.ClassNote = strings.TrimSpace(s.ClassNote)
	s.AIAPIKey = strings.TrimSpace(s.AIAPIKey)
	s.AIModel = strings.TrimSpace(s.AIModel)
	if s.AIModel == "" {
		s.AIModel = DefaultAIModel
	}
	s.AIEndpoint = strings.TrimSpace(s.AIEndpoint)
	if s.AIEndpoint == "" {
		s.AIEndpoint = DefaultAIEndpoint
	}
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
