package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Difficulty is the normalized difficulty bucket of a question.
type Difficulty int

const (
	DifficultyUnknown Difficulty = iota
	DifficultyEasy
	DifficultyMedium
	DifficultyHard
)

// ParseDifficulty maps a free-text difficulty label to a bucket.
// Matching is case-insensitive: single-letter shorthands first, then
// substring matches. Anything unrecognized lands in the unknown bucket.
func ParseDifficulty(label string) Difficulty {
	s := strings.ToLower(strings.TrimSpace(label))
	switch s {
	case "e":
		return DifficultyEasy
	case "m":
		return DifficultyMedium
	case "h":
		return DifficultyHard
	}
	switch {
	case strings.Contains(s, "easy"):
		return DifficultyEasy
	case strings.Contains(s, "medium"), strings.Contains(s, "normal"):
		return DifficultyMedium
	case strings.Contains(s, "hard"), strings.Contains(s, "difficult"):
		return DifficultyHard
	}
	return DifficultyUnknown
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// StepUp moves one step up the easy->medium->hard scale, clamped at hard.
// Unknown never adapts.
func (d Difficulty) StepUp() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	default:
		return d
	}
}

// StepDown moves one step down the scale, clamped at easy.
func (d Difficulty) StepDown() Difficulty {
	switch d {
	case DifficultyHard:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyEasy
	default:
		return d
	}
}

// MarshalJSON encodes the difficulty as its bucket name.
func (d Difficulty) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a bucket name back into a Difficulty.
func (d *Difficulty) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("difficulty must be a string: %w", err)
	}
	*d = ParseDifficulty(s)
	return nil
}

// QuestionKind is the evaluation shape of a question, derived once from
// the declared free-form type string.
type QuestionKind int

const (
	KindShortAnswer QuestionKind = iota
	KindChoice
	KindBoolean
)

// ClassifyKind categorizes a declared question type. Choice-like wins
// first: either the type mentions "choice", or options are present and
// the type does not mention "short". Boolean-like is next ("true" or
// "boolean"). Everything else is graded as free text.
func ClassifyKind(declaredType string, optionCount int) QuestionKind {
	t := strings.ToLower(declaredType)
	if strings.Contains(t, "choice") || (optionCount > 0 && !strings.Contains(t, "short")) {
		return KindChoice
	}
	if strings.Contains(t, "true") || strings.Contains(t, "boolean") {
		return KindBoolean
	}
	return KindShortAnswer
}

func (k QuestionKind) String() string {
	switch k {
	case KindChoice:
		return "choice"
	case KindBoolean:
		return "boolean"
	default:
		return "short_answer"
	}
}

// Option is a single answer option: a display label and the underlying
// value it stands for.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Question represents a quiz question in the domain. Classification of
// the declared type and decoding of the stored answer key happen at the
// data boundary, so a loaded Question is ready to evaluate.
type Question struct {
	ID              string
	Prompt          string
	Type            string // declared free-form type, kept for display
	Kind            QuestionKind
	DifficultyLabel string // raw stored label
	Difficulty      Difficulty
	Topic           string
	Options         []Option
	Answer          AnswerKey
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewQuestion creates a Question, deriving Kind and Difficulty from the
// raw fields.
func NewQuestion(prompt, declaredType, difficultyLabel, topic string, options []Option, answer AnswerKey) *Question {
	now := time.Now()
	return &Question{
		Prompt:          prompt,
		Type:            declaredType,
		Kind:            ClassifyKind(declaredType, len(options)),
		DifficultyLabel: difficultyLabel,
		Difficulty:      ParseDifficulty(difficultyLabel),
		Topic:           topic,
		Options:         options,
		Answer:          answer,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Validate validates the question
func (q *Question) Validate() error {
	if q.Prompt == "" {
		return NewInvalidInputError("prompt is required")
	}
	if q.Kind == KindChoice && len(q.Options) == 0 {
		return NewInvalidInputError("choice questions need at least one option")
	}
	return nil
}
