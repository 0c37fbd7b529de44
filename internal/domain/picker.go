package domain

import "math/rand"

// PickNext selects the next question from the pool: questions already
// asked are excluded, the rest are bucketed by difficulty, and a
// uniformly random question is drawn from the first non-empty bucket in
// the resolution order [target, medium, easy, hard, unknown]
// (deduplicated by first occurrence). Returns nil when the pool is
// exhausted. Pure apart from the random draw.
func PickNext(pool []*Question, asked map[string]struct{}, target Difficulty) *Question {
	remaining := make([]*Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := asked[q.ID]; ok {
			continue
		}
		remaining = append(remaining, q)
	}
	if len(remaining) == 0 {
		return nil
	}

	buckets := make(map[Difficulty][]*Question, 4)
	for _, q := range remaining {
		buckets[q.Difficulty] = append(buckets[q.Difficulty], q)
	}

	for _, d := range resolutionOrder(target) {
		if candidates := buckets[d]; len(candidates) > 0 {
			return candidates[rand.Intn(len(candidates))]
		}
	}

	// Unreachable while remaining is non-empty, kept as a safety net.
	return remaining[0]
}

func resolutionOrder(target Difficulty) []Difficulty {
	order := make([]Difficulty, 0, 5)
	seen := make(map[Difficulty]struct{}, 5)
	for _, d := range []Difficulty{target, DifficultyMedium, DifficultyEasy, DifficultyHard, DifficultyUnknown} {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		order = append(order, d)
	}
	return order
}
