package handler

import (
	"quizflow/internal/domain"
	"quizflow/internal/dto"
	"quizflow/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler handles adaptive session HTTP requests
type SessionHandler struct {
	service service.QuizService
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(service service.QuizService) *SessionHandler {
	return &SessionHandler{service: service}
}

// StartSession godoc
// @Summary Start an adaptive quiz session
// @Description Creates a session with the given topic and target difficulty
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body dto.StartSessionRequest true "Session options"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) StartSession(c *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("invalid request body")
		}
	}

	session, err := h.service.StartSession(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// GetSession godoc
// @Summary Get session progress
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	session, err := h.service.GetSession(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(session)
}

// NextQuestion godoc
// @Summary Pick the next question for a session
// @Description Returns a question from the first non-empty difficulty bucket, or done=true when the pool is exhausted
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.NextQuestionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/next [get]
func (h *SessionHandler) NextQuestion(c *fiber.Ctx) error {
	resp, err := h.service.NextQuestion(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitAnswer godoc
// @Summary Submit an answer for grading
// @Description Grades the submission, persists the attempt, and advances the session's target difficulty
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param answer body dto.SubmitAnswerRequest true "Answer"
// @Success 200 {object} dto.SubmitAnswerResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/answers [post]
func (h *SessionHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	resp, err := h.service.SubmitAnswer(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListAttempts godoc
// @Summary List a session's attempt history
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.AttemptListResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/attempts [get]
func (h *SessionHandler) ListAttempts(c *fiber.Ctx) error {
	resp, err := h.service.ListAttempts(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
