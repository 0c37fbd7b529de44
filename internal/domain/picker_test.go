package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func poolOf(difficulties ...Difficulty) []*Question {
	pool := make([]*Question, 0, len(difficulties))
	for i, d := range difficulties {
		pool = append(pool, &Question{ID: fmt.Sprintf("q%d", i), Difficulty: d})
	}
	return pool
}

func TestPickNextPrefersTargetBucket(t *testing.T) {
	pool := poolOf(DifficultyEasy, DifficultyHard, DifficultyMedium, DifficultyHard)

	for i := 0; i < 20; i++ {
		picked := PickNext(pool, nil, DifficultyHard)
		assert.NotNil(t, picked)
		assert.Equal(t, DifficultyHard, picked.Difficulty)
	}
}

func TestPickNextFallbackOrder(t *testing.T) {
	// Target bucket empty: medium comes first, then easy, then hard,
	// then unknown.
	pool := poolOf(DifficultyUnknown, DifficultyEasy)
	picked := PickNext(pool, nil, DifficultyHard)
	assert.NotNil(t, picked)
	assert.Equal(t, DifficultyEasy, picked.Difficulty, "easy outranks unknown")

	onlyUnknown := poolOf(DifficultyUnknown)
	picked = PickNext(onlyUnknown, nil, DifficultyMedium)
	assert.NotNil(t, picked)
	assert.Equal(t, DifficultyUnknown, picked.Difficulty)
}

func TestPickNextSkipsAsked(t *testing.T) {
	pool := poolOf(DifficultyMedium, DifficultyMedium, DifficultyMedium)
	asked := make(map[string]struct{})

	for i := 0; i < len(pool); i++ {
		picked := PickNext(pool, asked, DifficultyMedium)
		assert.NotNil(t, picked)
		_, seen := asked[picked.ID]
		assert.False(t, seen, "question repeated within a session")
		asked[picked.ID] = struct{}{}
	}

	assert.Nil(t, PickNext(pool, asked, DifficultyMedium), "exhausted pool returns nil")
}

func TestPickNextEmptyPool(t *testing.T) {
	assert.Nil(t, PickNext(nil, nil, DifficultyMedium))
}
