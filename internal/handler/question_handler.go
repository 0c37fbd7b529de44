package handler

import (
	"quizflow/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles question HTTP requests
type QuestionHandler struct {
	service service.QuizService
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuizService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// GetQuestion godoc
// @Summary Get a question by ID
// @Description Returns the question without its answer key
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c *fiber.Ctx) error {
	question, err := h.service.GetQuestion(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(question)
}
