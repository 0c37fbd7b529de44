package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"quizflow/internal/domain"
	"quizflow/internal/repository/models"
	"quizflow/internal/util"

	"github.com/jmoiron/sqlx"
)

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.DB
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

const questionColumns = `
		id "id",
		prompt "prompt",
		qtype "qtype",
		difficulty "difficulty",
		topic "topic",
		options "options",
		answer_key "answer_key",
		created_at "created_at",
		updated_at "updated_at",
		deleted_at "deleted_at"`

// GetQuestionByID implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetQuestionByID(ctx context.Context, id string) (*domain.Question, error) {
	var modelQuestion models.Question
	query := `SELECT ` + questionColumns + `
	FROM questions
	WHERE id = :1
	AND deleted_at IS NULL`

	err := a.db.GetContext(ctx, &modelQuestion, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by ID %s: %w", id, err)
	}
	return toDomainQuestion(&modelQuestion), nil
}

// ListActiveQuestions implements domain.QuestionRepository. An empty
// topic returns the whole active pool.
func (a *QuestionDatabaseAdapter) ListActiveQuestions(ctx context.Context, topic string) ([]*domain.Question, error) {
	var modelQuestions []models.Question
	var err error

	if topic == "" {
		query := `SELECT ` + questionColumns + `
		FROM questions
		WHERE deleted_at IS NULL
		ORDER BY created_at`
		err = a.db.SelectContext(ctx, &modelQuestions, query)
	} else {
		query := `SELECT ` + questionColumns + `
		FROM questions
		WHERE deleted_at IS NULL
		AND LOWER(topic) = LOWER(:1)
		ORDER BY created_at`
		err = a.db.SelectContext(ctx, &modelQuestions, query, topic)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list active questions: %w", err)
	}

	questions := make([]*domain.Question, 0, len(modelQuestions))
	for i := range modelQuestions {
		questions = append(questions, toDomainQuestion(&modelQuestions[i]))
	}
	return questions, nil
}

// SaveQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) SaveQuestion(ctx context.Context, q *domain.Question) error {
	modelQuestion, err := toModelQuestion(q)
	if err != nil {
		return err
	}
	modelQuestion.ID = util.NewULID()
	modelQuestion.CreatedAt = time.Now()
	modelQuestion.UpdatedAt = time.Now()

	query := `INSERT INTO questions (
		id, prompt, qtype, difficulty, topic,
		options, answer_key, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7, :8, :9
	)`

	_, err = a.db.ExecContext(ctx, query,
		modelQuestion.ID,
		modelQuestion.Prompt,
		modelQuestion.QType,
		modelQuestion.Difficulty,
		modelQuestion.Topic,
		modelQuestion.Options,
		modelQuestion.AnswerKey,
		modelQuestion.CreatedAt,
		modelQuestion.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}

	q.ID = modelQuestion.ID
	q.CreatedAt = modelQuestion.CreatedAt
	q.UpdatedAt = modelQuestion.UpdatedAt
	return nil
}

// toDomainQuestion is the data boundary: the declared type is
// classified and the raw answer key decoded exactly once, here.
func toDomainQuestion(m *models.Question) *domain.Question {
	if m == nil {
		return nil
	}

	options := make([]domain.Option, 0, len(m.Options))
	for _, opt := range m.Options {
		options = append(options, domain.Option{Label: opt.Label, Value: opt.Value})
	}

	kind := domain.ClassifyKind(m.QType, len(options))
	return &domain.Question{
		ID:              m.ID,
		Prompt:          m.Prompt,
		Type:            m.QType,
		Kind:            kind,
		DifficultyLabel: m.Difficulty,
		Difficulty:      domain.ParseDifficulty(m.Difficulty),
		Topic:           m.Topic.String,
		Options:         options,
		Answer:          domain.DecodeAnswerKey([]byte(m.AnswerKey), kind),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toModelQuestion(q *domain.Question) (*models.Question, error) {
	if q == nil {
		return nil, fmt.Errorf("cannot convert nil question")
	}

	options := make(models.OptionSlice, 0, len(q.Options))
	for _, opt := range q.Options {
		options = append(options, models.OptionRecord{Label: opt.Label, Value: opt.Value})
	}

	rawKey, err := domain.EncodeAnswerKey(q.Answer)
	if err != nil {
		return nil, fmt.Errorf("failed to encode answer key: %w", err)
	}

	var topic sql.NullString
	if q.Topic != "" {
		topic = sql.NullString{String: q.Topic, Valid: true}
	}

	return &models.Question{
		ID:         q.ID,
		Prompt:     q.Prompt,
		QType:      q.Type,
		Difficulty: q.DifficultyLabel,
		Topic:      topic,
		Options:    options,
		AnswerKey:  string(rawKey),
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}, nil
}
