package service

import (
	"context"

	"quizflow/internal/config"
	"quizflow/internal/domain"
	"quizflow/internal/dto"
	"quizflow/internal/logger"
	"quizflow/internal/util"

	"go.uber.org/zap"
)

// QuizService drives adaptive quiz sessions: picking the next question
// for the session's target difficulty, grading submissions, persisting
// attempts, and stepping the difficulty after each answer.
type QuizService interface {
	StartSession(ctx context.Context, req *dto.StartSessionRequest) (*dto.SessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	NextQuestion(ctx context.Context, sessionID string) (*dto.NextQuestionResponse, error)
	SubmitAnswer(ctx context.Context, sessionID string, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	ListAttempts(ctx context.Context, sessionID string) (*dto.AttemptListResponse, error)
	GetQuestion(ctx context.Context, questionID string) (*dto.QuestionResponse, error)
}

// quizService implements QuizService
type quizService struct {
	questions domain.QuestionRepository
	attempts  domain.AttemptRepository
	pool      PoolCacheService
	sessions  SessionStore
	fallback  domain.FallbackGrader // nil when the LLM grader is disabled
	cfg       *config.Config
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	questions domain.QuestionRepository,
	attempts domain.AttemptRepository,
	pool PoolCacheService,
	sessions SessionStore,
	fallback domain.FallbackGrader,
	cfg *config.Config,
) QuizService {
	return &quizService{
		questions: questions,
		attempts:  attempts,
		pool:      pool,
		sessions:  sessions,
		fallback:  fallback,
		cfg:       cfg,
	}
}

// StartSession implements QuizService
func (s *quizService) StartSession(ctx context.Context, req *dto.StartSessionRequest) (*dto.SessionResponse, error) {
	target := domain.ParseDifficulty(req.TargetDifficulty)
	if target == domain.DifficultyUnknown {
		target = domain.ParseDifficulty(s.cfg.Session.DefaultTarget)
	}
	if target == domain.DifficultyUnknown {
		target = domain.DifficultyMedium
	}

	session := domain.NewSession(util.NewULID(), target)
	session.Topic = req.Topic

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	logger.Get().Info("Started adaptive session",
		zap.String("session_id", session.ID),
		zap.String("target", session.Target.String()),
		zap.String("topic", session.Topic))

	return toSessionResponse(session), nil
}

// GetSession implements QuizService
func (s *quizService) GetSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	session, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// NextQuestion implements QuizService. The picked question is added to
// the session's asked-set immediately, so repeated calls walk through
// the pool without repeats.
func (s *quizService) NextQuestion(ctx context.Context, sessionID string) (*dto.NextQuestionResponse, error) {
	session, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	pool, err := s.pool.GetPool(ctx, session.Topic)
	if err != nil {
		return nil, err
	}

	question := domain.PickNext(pool, session.Asked(), session.Target)
	if question == nil {
		return &dto.NextQuestionResponse{
			Done:             true,
			TargetDifficulty: session.Target.String(),
		}, nil
	}

	session = session.WithAsked(question.ID)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	return &dto.NextQuestionResponse{
		Question:         toQuestionResponse(question),
		TargetDifficulty: session.Target.String(),
	}, nil
}

// SubmitAnswer implements QuizService
func (s *quizService) SubmitAnswer(ctx context.Context, sessionID string, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	if req.QuestionID == "" {
		return nil, domain.NewInvalidAnswerError("question_id is required")
	}

	session, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	question, err := s.questions.GetQuestionByID(ctx, req.QuestionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get question", err)
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(req.QuestionID)
	}

	submission := domain.Submission{
		SelectedOptionIndex: req.SelectedOptionIndex,
		BoolValue:           req.Value,
		Text:                req.Text,
	}

	verdict := domain.Evaluate(question, submission)
	score := scoreFor(verdict)

	// The heuristic verdict is final; the LLM only weighs in where the
	// heuristic could not decide a free-text answer.
	if verdict == domain.VerdictUngraded && s.fallback != nil &&
		question.Kind == domain.KindShortAnswer && domain.NormalizeText(req.Text) != "" {
		llmVerdict, llmScore, llmErr := s.fallback.GradeFreeText(ctx, question.Prompt, question.Answer.Text, req.Text)
		if llmErr != nil {
			logger.Get().Warn("Fallback grader failed, keeping answer ungraded",
				zap.String("question_id", question.ID),
				zap.Error(llmErr))
		} else {
			verdict = llmVerdict
			score = llmScore
		}
	}

	attempt := domain.NewAttempt(session.ID, question.ID, submission, verdict, score)
	if err := s.attempts.CreateAttempt(ctx, attempt); err != nil {
		return nil, domain.NewInternalError("Failed to persist attempt", err)
	}

	session = session.Advance(verdict, score)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	return &dto.SubmitAnswerResponse{
		QuestionID:           question.ID,
		Verdict:              verdict.String(),
		Score:                score,
		NextTargetDifficulty: session.Target.String(),
		Answered:             session.Answered,
		Correct:              session.Correct,
	}, nil
}

// ListAttempts implements QuizService
func (s *quizService) ListAttempts(ctx context.Context, sessionID string) (*dto.AttemptListResponse, error) {
	if _, err := s.sessions.Load(ctx, sessionID); err != nil {
		return nil, err
	}

	attempts, err := s.attempts.ListAttemptsBySession(ctx, sessionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list attempts", err)
	}

	responses := make([]dto.AttemptResponse, 0, len(attempts))
	for _, attempt := range attempts {
		responses = append(responses, dto.AttemptResponse{
			ID:         attempt.ID,
			QuestionID: attempt.QuestionID,
			Verdict:    attempt.Verdict.String(),
			Score:      attempt.Score,
			AnsweredAt: attempt.AnsweredAt,
		})
	}
	return &dto.AttemptListResponse{Attempts: responses}, nil
}

// GetQuestion implements QuizService
func (s *quizService) GetQuestion(ctx context.Context, questionID string) (*dto.QuestionResponse, error) {
	question, err := s.questions.GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get question", err)
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(questionID)
	}
	return toQuestionResponse(question), nil
}

func scoreFor(v domain.Verdict) float64 {
	if v == domain.VerdictCorrect {
		return 1.0
	}
	return 0.0
}

func toSessionResponse(session domain.Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		ID:               session.ID,
		Topic:            session.Topic,
		TargetDifficulty: session.Target.String(),
		Answered:         session.Answered,
		Correct:          session.Correct,
		Score:            session.Score,
	}
}

func toQuestionResponse(q *domain.Question) *dto.QuestionResponse {
	options := make([]dto.OptionResponse, 0, len(q.Options))
	for _, opt := range q.Options {
		options = append(options, dto.OptionResponse{Label: opt.Label, Value: opt.Value})
	}
	return &dto.QuestionResponse{
		ID:         q.ID,
		Prompt:     q.Prompt,
		Type:       q.Type,
		Difficulty: q.Difficulty.String(),
		Topic:      q.Topic,
		Options:    options,
	}
}
