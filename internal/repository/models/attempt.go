package models

import (
	"database/sql"
	"time"
)

// Attempt is the persistence model for one answered question. The
// submitted answer is stored as JSON; IsCorrect is NULL for ungraded
// attempts, preserving the three-valued verdict.
type Attempt struct {
	ID         string          `db:"id"`
	SessionID  string          `db:"session_id"`
	QuestionID string          `db:"question_id"`
	Submitted  string          `db:"submitted"`
	IsCorrect  sql.NullBool    `db:"is_correct"`
	Score      sql.NullFloat64 `db:"score"`
	AnsweredAt time.Time       `db:"answered_at"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
	DeletedAt  sql.NullTime    `db:"deleted_at"`
}

func (Attempt) TableName() string {
	return "attempts"
}
