package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected Difficulty
	}{
		{"exact easy", "easy", DifficultyEasy},
		{"exact medium", "medium", DifficultyMedium},
		{"exact hard", "hard", DifficultyHard},
		{"shorthand e", "e", DifficultyEasy},
		{"shorthand m", "m", DifficultyMedium},
		{"shorthand h", "h", DifficultyHard},
		{"uppercase", "EASY", DifficultyEasy},
		{"padded", "  Hard  ", DifficultyHard},
		{"substring easy", "super-easy", DifficultyEasy},
		{"normal maps to medium", "normal", DifficultyMedium},
		{"difficult maps to hard", "very difficult", DifficultyHard},
		{"unrecognized", "expert", DifficultyUnknown},
		{"empty", "", DifficultyUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDifficulty(tt.label))
		})
	}
}

func TestDifficultyStepping(t *testing.T) {
	assert.Equal(t, DifficultyMedium, DifficultyEasy.StepUp())
	assert.Equal(t, DifficultyHard, DifficultyMedium.StepUp())
	assert.Equal(t, DifficultyHard, DifficultyHard.StepUp(), "hard is clamped")
	assert.Equal(t, DifficultyMedium, DifficultyHard.StepDown())
	assert.Equal(t, DifficultyEasy, DifficultyMedium.StepDown())
	assert.Equal(t, DifficultyEasy, DifficultyEasy.StepDown(), "easy is clamped")
	assert.Equal(t, DifficultyUnknown, DifficultyUnknown.StepUp(), "unknown never adapts")
	assert.Equal(t, DifficultyUnknown, DifficultyUnknown.StepDown())
}

func TestClassifyKind(t *testing.T) {
	tests := []struct {
		name        string
		declared    string
		optionCount int
		expected    QuestionKind
	}{
		{"multiple choice", "multiple_choice", 4, KindChoice},
		{"choice wins without options", "single-choice", 0, KindChoice},
		{"options imply choice", "quiz", 3, KindChoice},
		{"short with options stays short", "short_answer", 2, KindShortAnswer},
		{"true false", "true_false", 0, KindBoolean},
		{"boolean", "boolean", 0, KindBoolean},
		{"plain short answer", "short_answer", 0, KindShortAnswer},
		{"unknown type", "essay", 0, KindShortAnswer},
		{"choice beats boolean", "true_false_choice", 0, KindChoice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyKind(tt.declared, tt.optionCount))
		})
	}
}

func TestQuestionValidate(t *testing.T) {
	q := NewQuestion("What is Go?", "short_answer", "easy", "go", nil, AnswerKey{Kind: KeyByText, Text: "a language"})
	assert.NoError(t, q.Validate())

	empty := NewQuestion("", "short_answer", "easy", "go", nil, AnswerKey{})
	assert.Error(t, empty.Validate())

	choice := NewQuestion("Pick one", "multiple_choice", "easy", "go", nil, AnswerKey{Kind: KeyByIndex})
	assert.Error(t, choice.Validate())
}
