package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	assert.Equal(t, "quizflow:quiz:pool:math", GenerateCacheKey("quiz", "pool", "math"))
	assert.Equal(t, "quizflow:quiz:session:01HQ1", GenerateCacheKey("quiz", "session", "01HQ1"))
	assert.Equal(t, "quizflow:quiz:pool:math:p1_p2", GenerateCacheKey("quiz", "pool", "math", "p1", "p2"))
}
