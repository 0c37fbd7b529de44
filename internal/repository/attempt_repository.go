package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"quizflow/internal/domain"
	"quizflow/internal/repository/models"
	"quizflow/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxAttemptRepository implements domain.AttemptRepository using sqlx.
type sqlxAttemptRepository struct {
	db *sqlx.DB
}

// NewSQLXAttemptRepository creates a new instance of sqlxAttemptRepository.
func NewSQLXAttemptRepository(db *sqlx.DB) domain.AttemptRepository {
	return &sqlxAttemptRepository{db: db}
}

// CreateAttempt inserts a new attempt record.
func (r *sqlxAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.Attempt) error {
	modelAttempt, err := fromDomainAttempt(attempt)
	if err != nil {
		return err
	}
	modelAttempt.ID = util.NewULID()
	if modelAttempt.AnsweredAt.IsZero() {
		modelAttempt.AnsweredAt = time.Now()
	}
	modelAttempt.CreatedAt = time.Now()
	modelAttempt.UpdatedAt = time.Now()

	query := `INSERT INTO attempts (
		id, session_id, question_id, submitted,
		is_correct, score, answered_at, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7, :8, :9
	)`

	_, err = r.db.ExecContext(ctx, query,
		modelAttempt.ID,
		modelAttempt.SessionID,
		modelAttempt.QuestionID,
		modelAttempt.Submitted,
		modelAttempt.IsCorrect,
		modelAttempt.Score,
		modelAttempt.AnsweredAt,
		modelAttempt.CreatedAt,
		modelAttempt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}

	attempt.ID = modelAttempt.ID
	attempt.AnsweredAt = modelAttempt.AnsweredAt
	attempt.CreatedAt = modelAttempt.CreatedAt
	attempt.UpdatedAt = modelAttempt.UpdatedAt
	return nil
}

// ListAttemptsBySession returns a session's attempts in answer order.
func (r *sqlxAttemptRepository) ListAttemptsBySession(ctx context.Context, sessionID string) ([]*domain.Attempt, error) {
	var modelAttempts []models.Attempt
	query := `SELECT
		id "id",
		session_id "session_id",
		question_id "question_id",
		submitted "submitted",
		is_correct "is_correct",
		score "score",
		answered_at "answered_at",
		created_at "created_at",
		updated_at "updated_at",
		deleted_at "deleted_at"
	FROM attempts
	WHERE session_id = :1
	AND deleted_at IS NULL
	ORDER BY answered_at`

	if err := r.db.SelectContext(ctx, &modelAttempts, query, sessionID); err != nil {
		return nil, fmt.Errorf("failed to list attempts for session %s: %w", sessionID, err)
	}

	attempts := make([]*domain.Attempt, 0, len(modelAttempts))
	for i := range modelAttempts {
		attempt, err := toDomainAttempt(&modelAttempts[i])
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, attempt)
	}
	return attempts, nil
}

func fromDomainAttempt(attempt *domain.Attempt) (*models.Attempt, error) {
	if attempt == nil {
		return nil, fmt.Errorf("cannot convert nil attempt")
	}

	submitted, err := json.Marshal(attempt.Submitted)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submitted answer: %w", err)
	}

	// Ungraded verdicts persist as NULL, keeping the three-valued
	// outcome intact.
	var isCorrect sql.NullBool
	switch attempt.Verdict {
	case domain.VerdictCorrect:
		isCorrect = sql.NullBool{Bool: true, Valid: true}
	case domain.VerdictIncorrect:
		isCorrect = sql.NullBool{Bool: false, Valid: true}
	}

	return &models.Attempt{
		ID:         attempt.ID,
		SessionID:  attempt.SessionID,
		QuestionID: attempt.QuestionID,
		Submitted:  string(submitted),
		IsCorrect:  isCorrect,
		Score:      sql.NullFloat64{Float64: attempt.Score, Valid: true},
		AnsweredAt: attempt.AnsweredAt,
		CreatedAt:  attempt.CreatedAt,
		UpdatedAt:  attempt.UpdatedAt,
	}, nil
}

func toDomainAttempt(m *models.Attempt) (*domain.Attempt, error) {
	if m == nil {
		return nil, nil
	}

	var submitted domain.Submission
	if m.Submitted != "" {
		if err := json.Unmarshal([]byte(m.Submitted), &submitted); err != nil {
			return nil, fmt.Errorf("failed to unmarshal submitted answer for attempt %s: %w", m.ID, err)
		}
	}

	verdict := domain.VerdictUngraded
	if m.IsCorrect.Valid {
		if m.IsCorrect.Bool {
			verdict = domain.VerdictCorrect
		} else {
			verdict = domain.VerdictIncorrect
		}
	}

	return &domain.Attempt{
		ID:         m.ID,
		SessionID:  m.SessionID,
		QuestionID: m.QuestionID,
		Submitted:  submitted,
		Verdict:    verdict,
		Score:      m.Score.Float64,
		AnsweredAt: m.AnsweredAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}, nil
}
