package handler

import (
	"quizflow/internal/domain"
	"quizflow/internal/dto"
	"quizflow/internal/service"

	"github.com/gofiber/fiber/v2"
)

// TranscriptHandler handles transcript alignment HTTP requests
type TranscriptHandler struct {
	service service.TranscriptService
}

// NewTranscriptHandler creates a new TranscriptHandler instance
func NewTranscriptHandler(service service.TranscriptService) *TranscriptHandler {
	return &TranscriptHandler{service: service}
}

// AlignHighlight godoc
// @Summary Infer a timestamp for highlight text
// @Description Parses the transcript and returns the best-matching segment's start time with a confidence score
// @Tags transcripts
// @Accept json
// @Produce json
// @Param request body dto.AlignRequest true "Highlight text and raw transcript"
// @Success 200 {object} dto.AlignResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /transcripts/align [post]
func (h *TranscriptHandler) AlignHighlight(c *fiber.Ctx) error {
	var req dto.AlignRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	resp, err := h.service.AlignHighlight(&req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
