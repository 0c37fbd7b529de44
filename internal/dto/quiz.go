package dto

import "time"

// StartSessionRequest begins a new adaptive quiz run.
// @Description Request body for starting a session
type StartSessionRequest struct {
	Topic            string `json:"topic,omitempty"`
	TargetDifficulty string `json:"target_difficulty,omitempty"`
}

// SessionResponse represents session progress in the API response
type SessionResponse struct {
	ID               string  `json:"id"`
	Topic            string  `json:"topic,omitempty"`
	TargetDifficulty string  `json:"target_difficulty"`
	Answered         int     `json:"answered"`
	Correct          int     `json:"correct"`
	Score            float64 `json:"score"`
}

// OptionResponse is one selectable answer option. The underlying value
// is included; the answer key never is.
type OptionResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// QuestionResponse represents a question in the API response
// @Description Question information, without the answer key
type QuestionResponse struct {
	ID         string           `json:"id"`
	Prompt     string           `json:"prompt"`
	Type       string           `json:"type"`
	Difficulty string           `json:"difficulty"`
	Topic      string           `json:"topic,omitempty"`
	Options    []OptionResponse `json:"options,omitempty"`
}

// NextQuestionResponse carries the picked question, or Done when the
// session has exhausted the pool.
type NextQuestionResponse struct {
	Done             bool              `json:"done"`
	Question         *QuestionResponse `json:"question,omitempty"`
	TargetDifficulty string            `json:"target_difficulty"`
}

// SubmitAnswerRequest represents a user's answer in the API request
// @Description Request body for submitting an answer
type SubmitAnswerRequest struct {
	QuestionID          string `json:"question_id"`
	SelectedOptionIndex *int   `json:"selected_option_index,omitempty"`
	Value               *bool  `json:"value,omitempty"`
	Text                string `json:"text,omitempty"`
}

// SubmitAnswerResponse represents the grading result in the API response
type SubmitAnswerResponse struct {
	QuestionID           string  `json:"question_id"`
	Verdict              string  `json:"verdict"` // correct | incorrect | ungraded
	Score                float64 `json:"score"`
	NextTargetDifficulty string  `json:"next_target_difficulty"`
	Answered             int     `json:"answered"`
	Correct              int     `json:"correct"`
}

// AttemptResponse represents one past attempt in the API response
type AttemptResponse struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"question_id"`
	Verdict    string    `json:"verdict"`
	Score      float64   `json:"score"`
	AnsweredAt time.Time `json:"answered_at"`
}

// AttemptListResponse wraps a session's attempt history
type AttemptListResponse struct {
	Attempts []AttemptResponse `json:"attempts"`
}

// AlignRequest asks for a timestamp for highlight text within a raw
// transcript.
// @Description Request body for transcript alignment
type AlignRequest struct {
	Text       string `json:"text"`
	Transcript string `json:"transcript"`
}

// AlignResponse carries the inferred timestamp. Timestamp is null when
// nothing could be scored; Accepted reflects the confidence threshold.
type AlignResponse struct {
	Timestamp *float64 `json:"timestamp"`
	Score     float64  `json:"score"`
	Accepted  bool     `json:"accepted"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
