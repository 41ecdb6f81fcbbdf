package tools

import "math/rand"

// SplitGroups shuffles the roster and chunks it into groups of groupSize.
// The last group may be smaller. A non-positive groupSize or empty roster
// yields no groups.
func SplitGroups(roster []string, groupSize int, rng *rand.Rand) [][]string {
	if groupSize <= 0 || len(roster) == 0 {
		return nil
	}

	shuffled := append([]string(nil), roster...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	var groups [][]string
	for start := 0; start < len(shuffled); start += groupSize {
		end := start + groupSize
		if end > len(shuffled) {
			end = len(shuffled)
		}
		groups = append(groups, shuffled[start:end])
	}
	return groups
}
