package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int    { return &i }
func boolPtr(b bool) *bool { return &b }

func choiceQuestion(key AnswerKey) *Question {
	return &Question{
		Kind: KindChoice,
		Options: []Option{
			{Label: "Paris", Value: "a"},
			{Label: "London", Value: "b"},
			{Label: "Berlin", Value: "c"},
		},
		Answer: key,
	}
}

func TestEvaluateChoice(t *testing.T) {
	tests := []struct {
		name     string
		key      AnswerKey
		sub      Submission
		expected Verdict
	}{
		{"index match", AnswerKey{Kind: KeyByIndex, Index: 1}, Submission{SelectedOptionIndex: intPtr(1)}, VerdictCorrect},
		{"index mismatch", AnswerKey{Kind: KeyByIndex, Index: 1}, Submission{SelectedOptionIndex: intPtr(2)}, VerdictIncorrect},
		{"missing selection grades incorrect", AnswerKey{Kind: KeyByIndex, Index: 0}, Submission{}, VerdictIncorrect},
		{"value match", AnswerKey{Kind: KeyByValue, Value: "b"}, Submission{SelectedOptionIndex: intPtr(1)}, VerdictCorrect},
		{"bare value falls back to label", AnswerKey{Kind: KeyByValue, Value: "london"}, Submission{SelectedOptionIndex: intPtr(1)}, VerdictCorrect},
		{"value-only skips label fallback", AnswerKey{Kind: KeyByValue, Value: "london", ValueOnly: true}, Submission{SelectedOptionIndex: intPtr(1)}, VerdictIncorrect},
		{"label match is case-insensitive", AnswerKey{Kind: KeyByLabel, Label: "  PARIS "}, Submission{SelectedOptionIndex: intPtr(0)}, VerdictCorrect},
		{"label mismatch", AnswerKey{Kind: KeyByLabel, Label: "Paris"}, Submission{SelectedOptionIndex: intPtr(2)}, VerdictIncorrect},
		{"out of range index", AnswerKey{Kind: KeyByValue, Value: "a"}, Submission{SelectedOptionIndex: intPtr(9)}, VerdictIncorrect},
		{"negative index", AnswerKey{Kind: KeyByLabel, Label: "Paris"}, Submission{SelectedOptionIndex: intPtr(-1)}, VerdictIncorrect},
		{"malformed key stays ungraded", AnswerKey{Kind: KeyUnknown}, Submission{SelectedOptionIndex: intPtr(0)}, VerdictUngraded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Evaluate(choiceQuestion(tt.key), tt.sub))
		})
	}
}

func TestEvaluateBoolean(t *testing.T) {
	tests := []struct {
		name     string
		key      AnswerKey
		sub      Submission
		expected Verdict
	}{
		{"bool match", AnswerKey{Kind: KeyByBool, Bool: true, Value: "true"}, Submission{BoolValue: boolPtr(true)}, VerdictCorrect},
		{"bool mismatch", AnswerKey{Kind: KeyByBool, Bool: true, Value: "true"}, Submission{BoolValue: boolPtr(false)}, VerdictIncorrect},
		{"string key compares as text", AnswerKey{Kind: KeyByValue, Value: "True"}, Submission{BoolValue: boolPtr(true)}, VerdictCorrect},
		{"text key compares as text", AnswerKey{Kind: KeyByText, Text: "false"}, Submission{BoolValue: boolPtr(false)}, VerdictCorrect},
		{"missing value stays ungraded", AnswerKey{Kind: KeyByBool, Bool: true}, Submission{}, VerdictUngraded},
		{"malformed key stays ungraded", AnswerKey{Kind: KeyUnknown}, Submission{BoolValue: boolPtr(true)}, VerdictUngraded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &Question{Kind: KindBoolean, Answer: tt.key}
			assert.Equal(t, tt.expected, Evaluate(q, tt.sub))
		})
	}
}

func TestEvaluateFreeText(t *testing.T) {
	tests := []struct {
		name     string
		key      AnswerKey
		text     string
		expected Verdict
	}{
		{"normalized match", AnswerKey{Kind: KeyByText, Text: "blue   whale"}, "  Blue Whale ", VerdictCorrect},
		{"mismatch", AnswerKey{Kind: KeyByText, Text: "blue whale"}, "sperm whale", VerdictIncorrect},
		{"value key", AnswerKey{Kind: KeyByValue, Value: "42"}, "42", VerdictCorrect},
		{"empty submission grades incorrect", AnswerKey{Kind: KeyByText, Text: "blue whale"}, "   ", VerdictIncorrect},
		{"label key stays ungraded", AnswerKey{Kind: KeyByLabel, Label: "Paris"}, "paris", VerdictUngraded},
		{"malformed key stays ungraded", AnswerKey{Kind: KeyUnknown}, "anything", VerdictUngraded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &Question{Kind: KindShortAnswer, Answer: tt.key}
			assert.Equal(t, tt.expected, Evaluate(q, Submission{Text: tt.text}))
		})
	}
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "blue whale", NormalizeText("  Blue   Whale "))
	assert.Equal(t, "", NormalizeText("   "))
}
