// Package tools holds the non-UI logic of the builtin teaching tools.
package tools

import "math/rand"

// RandomPicker draws student names for the random-call tool. With noRepeat
// enabled, every name is drawn once before any repeats; the pool refills
// when exhausted. History keeps the most recent draws, newest first, capped
// at historySize.
type RandomPicker struct {
	roster      []string
	remaining   []string
	history     []string
	historySize int
	noRepeat    bool
	rng         *rand.Rand
}

// NewRandomPicker creates a picker over the roster
func NewRandomPicker(roster []string, noRepeat bool, historySize int, rng *rand.Rand) *RandomPicker {
	p := &RandomPicker{
		roster:      append([]string(nil), roster...),
		historySize: historySize,
		noRepeat:    noRepeat,
		rng:         rng,
	}
	p.refill()
	return p
}

// Pick draws one name, or "" when the roster is empty
func (p *RandomPicker) Pick() string {
	if len(p.roster) == 0 {
		return ""
	}

	var name string
	if p.noRepeat {
		if len(p.remaining) == 0 {
			p.refill()
		}
		i := p.rng.Intn(len(p.remaining))
		name = p.remaining[i]
		p.remaining = append(p.remaining[:i], p.remaining[i+1:]...)
	} else {
		name = p.roster[p.rng.Intn(len(p.roster))]
	}

	p.history = append([]string{name}, p.history...)
	if len(p.history) > p.historySize {
		p.history = p.history[:p.historySize]
	}
	return name
}

// History returns recent draws, newest first
func (p *RandomPicker) History() []string {
	return append([]string(nil), p.history...)
}

func (p *RandomPicker) refill() {
	p.remaining = append([]string(nil), p.roster...)
}
