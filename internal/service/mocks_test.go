package service

import (
	"context"
	"time"

	"quizflow/internal/domain"

	"github.com/stretchr/testify/mock"
)

type mockQuestionRepository struct {
	mock.Mock
}

func (m *mockQuestionRepository) GetQuestionByID(ctx context.Context, id string) (*domain.Question, error) {
	args := m.Called(ctx, id)
	if q := args.Get(0); q != nil {
		return q.(*domain.Question), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockQuestionRepository) ListActiveQuestions(ctx context.Context, topic string) ([]*domain.Question, error) {
	args := m.Called(ctx, topic)
	if qs := args.Get(0); qs != nil {
		return qs.([]*domain.Question), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockQuestionRepository) SaveQuestion(ctx context.Context, q *domain.Question) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

type mockAttemptRepository struct {
	mock.Mock
}

func (m *mockAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.Attempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *mockAttemptRepository) ListAttemptsBySession(ctx context.Context, sessionID string) ([]*domain.Attempt, error) {
	args := m.Called(ctx, sessionID)
	if attempts := args.Get(0); attempts != nil {
		return attempts.([]*domain.Attempt), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type mockFallbackGrader struct {
	mock.Mock
}

func (m *mockFallbackGrader) GradeFreeText(ctx context.Context, prompt, reference, userAnswer string) (domain.Verdict, float64, error) {
	args := m.Called(ctx, prompt, reference, userAnswer)
	return args.Get(0).(domain.Verdict), args.Get(1).(float64), args.Error(2)
}
