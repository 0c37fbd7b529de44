package domain

import (
	"strconv"
	"strings"
)

// Verdict is the three-valued outcome of grading a submission.
// Ungraded means the stored answer key's shape cannot decide
// correctness; callers must treat it as "not graded", never as an
// error.
type Verdict int

const (
	VerdictUngraded Verdict = iota
	VerdictCorrect
	VerdictIncorrect
)

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictIncorrect:
		return "incorrect"
	default:
		return "ungraded"
	}
}

// Submission is a user's ephemeral answer. Its populated field depends
// on the question kind: option index for choice, boolean for
// true/false, text for short answers.
type Submission struct {
	SelectedOptionIndex *int   `json:"selected_option_index,omitempty"`
	BoolValue           *bool  `json:"value,omitempty"`
	Text                string `json:"text,omitempty"`
}

// NormalizeText canonicalizes free text for comparison: trim, collapse
// internal whitespace runs to a single space, lowercase.
func NormalizeText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Evaluate grades a submission against a question's decoded answer key.
// It is a pure function; malformed keys degrade to VerdictUngraded.
func Evaluate(q *Question, sub Submission) Verdict {
	switch q.Kind {
	case KindChoice:
		return evaluateChoice(q, sub)
	case KindBoolean:
		return evaluateBoolean(q, sub)
	default:
		return evaluateFreeText(q, sub)
	}
}

func evaluateChoice(q *Question, sub Submission) Verdict {
	// A choice submission without a selected index grades as incorrect,
	// not ungraded. Forced grading is the documented behavior.
	if sub.SelectedOptionIndex == nil {
		return VerdictIncorrect
	}
	idx := *sub.SelectedOptionIndex

	switch q.Answer.Kind {
	case KeyByIndex:
		return verdictOf(idx == q.Answer.Index)
	case KeyByValue, KeyByBool:
		if idx < 0 || idx >= len(q.Options) {
			return VerdictIncorrect
		}
		opt := q.Options[idx]
		if opt.Value == q.Answer.Value {
			return VerdictCorrect
		}
		if !q.Answer.ValueOnly && NormalizeText(opt.Label) == NormalizeText(q.Answer.Value) {
			return VerdictCorrect
		}
		return VerdictIncorrect
	case KeyByLabel:
		if idx < 0 || idx >= len(q.Options) {
			return VerdictIncorrect
		}
		return verdictOf(NormalizeText(q.Options[idx].Label) == NormalizeText(q.Answer.Label))
	default:
		return VerdictUngraded
	}
}

func evaluateBoolean(q *Question, sub Submission) Verdict {
	if sub.BoolValue == nil {
		return VerdictUngraded
	}
	switch q.Answer.Kind {
	case KeyByBool:
		return verdictOf(*sub.BoolValue == q.Answer.Bool)
	case KeyByValue:
		return verdictOf(NormalizeText(q.Answer.Value) == strconv.FormatBool(*sub.BoolValue))
	case KeyByLabel:
		return verdictOf(NormalizeText(q.Answer.Label) == strconv.FormatBool(*sub.BoolValue))
	case KeyByText:
		return verdictOf(NormalizeText(q.Answer.Text) == strconv.FormatBool(*sub.BoolValue))
	default:
		return VerdictUngraded
	}
}

func evaluateFreeText(q *Question, sub Submission) Verdict {
	got := NormalizeText(sub.Text)
	if got == "" {
		return VerdictIncorrect
	}
	switch q.Answer.Kind {
	case KeyByValue, KeyByBool:
		return verdictOf(got == NormalizeText(q.Answer.Value))
	case KeyByText:
		return verdictOf(got == NormalizeText(q.Answer.Text))
	default:
		return VerdictUngraded
	}
}

func verdictOf(correct bool) Verdict {
	if correct {
		return VerdictCorrect
	}
	return VerdictIncorrect
}
