package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ActionKind identifies what a button's target means.
type ActionKind string

const (
	ActionExecutable ActionKind = "exe"
	ActionURL        ActionKind = "url"
	ActionBuiltin    ActionKind = "func"
)

// ParseActionKind maps a persisted action tag to its kind. Unknown tags are
// an error so the loader can skip the entry instead of dispatch failing later.
func ParseActionKind(s string) (ActionKind, error) {
	switch ActionKind(strings.TrimSpace(s)) {
	case ActionExecutable:
		return ActionExecutable, nil
	case ActionURL:
		return ActionURL, nil
	case ActionBuiltin:
		return ActionBuiltin, nil
	}
	return "", fmt.Errorf("unknown action kind %q", s)
}

// SeewoTarget is the sentinel target meaning "launch the configured
// whiteboard executable" rather than a literal path.
const SeewoTarget = "SEEWO"

// Builtin function identifiers dispatched to in-process tool surfaces.
const (
	BuiltinAttendance  = "ATTENDANCE"
	BuiltinRandomCall  = "RANDOM_CALL"
	BuiltinClassTimer  = "CLASS_TIMER"
	BuiltinClassNote   = "CLASS_NOTE"
	BuiltinGroupSplit  = "GROUP_SPLIT"
	BuiltinScoreBoard  = "SCORE_BOARD"
	BuiltinAIAssistant = "AI_ASSISTANT"
	BuiltinSettings    = "SETTINGS"
)

// KnownBuiltins lists every builtin identifier a button may dispatch to.
func KnownBuiltins() []string {
	return []string{
		BuiltinAttendance,
		BuiltinRandomCall,
		BuiltinClassTimer,
		BuiltinClassNote,
		BuiltinGroupSplit,
		BuiltinScoreBoard,
		BuiltinAIAssistant,
		BuiltinSettings,
	}
}

// IsKnownBuiltin reports whether id is one of the fixed builtin identifiers.
func IsKnownBuiltin(id string) bool {
	for _, b := range KnownBuiltins() {
		if b == id {
			return true
		}
	}
	return false
}

// Button represents one launchable item on the sidebar
type Button struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Icon     string     `json:"icon"`
	Action   ActionKind `json:"action"`
	Target   string     `json:"target"`
	IsSystem bool       `json:"isSystem"`
}

// NewButton creates a user-added button with a unique ID
func NewButton(name, icon string, action ActionKind, target string) Button {
	return Button{
		ID:     uuid.New().String(),
		Name:   strings.TrimSpace(name),
		Icon:   strings.TrimSpace(icon),
		Action: action,
		Target: strings.TrimSpace(target),
	}
}
