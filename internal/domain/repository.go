package domain

import (
	"context"
	"time"
)

// Attempt is one persisted answer record: which question was answered
// in which session, what was submitted, and how it graded. Verdict
// keeps its three values through persistence; ungraded attempts store a
// NULL correctness flag.
type Attempt struct {
	ID         string
	SessionID  string
	QuestionID string
	Submitted  Submission
	Verdict    Verdict
	Score      float64
	AnsweredAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewAttempt creates an attempt record for a graded submission.
func NewAttempt(sessionID, questionID string, sub Submission, v Verdict, score float64) *Attempt {
	return &Attempt{
		SessionID:  sessionID,
		QuestionID: questionID,
		Submitted:  sub,
		Verdict:    v,
		Score:      score,
		AnsweredAt: time.Now(),
	}
}

// QuestionRepository is the port for question pool persistence.
type QuestionRepository interface {
	GetQuestionByID(ctx context.Context, id string) (*Question, error)
	ListActiveQuestions(ctx context.Context, topic string) ([]*Question, error)
	SaveQuestion(ctx context.Context, q *Question) error
}

// AttemptRepository is the port for attempt persistence.
type AttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt *Attempt) error
	ListAttemptsBySession(ctx context.Context, sessionID string) ([]*Attempt, error)
}
