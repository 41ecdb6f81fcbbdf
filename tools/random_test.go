package tools

import (
	"math/rand"
	"testing"
)

func TestPickEmptyRoster(t *testing.T) {
	p := NewRandomPicker(nil, true, 5, rand.New(rand.NewSource(1)))
	if got := p.Pick(); got != "" {
		t.Errorf("empty roster should pick nothing, got %q", got)
	}
}

func TestNoRepeatExhaustsRosterBeforeRepeating(t *testing.T) {
	roster := []string{"甲", "乙", "丙", "丁"}
	p := NewRandomPicker(roster, true, 10, rand.New(rand.NewSource(42)))

	seen := make(map[string]bool)
	for i := 0; i < len(roster); i++ {
		name := p.Pick()
		if seen[name] {
			t.Fatalf("name %q repeated before roster was exhausted", name)
		}
		seen[name] = true
	}
	if len(seen) != len(roster) {
		t.Errorf("expected every name drawn once, got %d", len(seen))
	}

	// Pool refills after exhaustion.
	if got := p.Pick(); got == "" {
		t.Error("picker should keep drawing after a full round")
	}
}

func TestHistoryNewestFirstAndCapped(t *testing.T) {
	roster := []string{"甲", "乙", "丙", "丁", "戊", "己"}
	p := NewRandomPicker(roster, false, 3, rand.New(rand.NewSource(7)))

	var draws []string
	for i := 0; i < 6; i++ {
		draws = append(draws, p.Pick())
	}

	history := p.History()
	if len(history) != 3 {
		t.Fatalf("history length = %d, want 3", len(history))
	}
	for i := 0; i < 3; i++ {
		if history[i] != draws[len(draws)-1-i] {
			t.Errorf("history[%d] = %q, want %q (newest first)", i, history[i], draws[len(draws)-1-i])
		}
	}
}

func TestRepeatModeDrawsFromFullRoster(t *testing.T) {
	roster := []string{"甲"}
	p := NewRandomPicker(roster, false, 5, rand.New(rand.NewSource(3)))
	for i := 0; i < 3; i++ {
		if got := p.Pick(); got != "甲" {
			t.Errorf("pick = %q, want 甲", got)
		}
	}
}
