package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"quizflow/internal/config"
	"quizflow/internal/domain"
	"quizflow/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "info", Env: "test"}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestApp(handler fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/test", handler)
	return app
}

func doRequest(t *testing.T, app *fiber.App) (int, ErrorResponse) {
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	return resp.StatusCode, errResp
}

func TestErrorHandlerDomainErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"session not found", domain.NewSessionNotFoundError("s1"), http.StatusNotFound, "SESSION_NOT_FOUND"},
		{"question not found", domain.NewQuestionNotFoundError("q1"), http.StatusNotFound, "QUESTION_NOT_FOUND"},
		{"invalid input", domain.NewInvalidInputError("bad"), http.StatusBadRequest, "INVALID_INPUT"},
		{"invalid answer", domain.NewInvalidAnswerError("bad"), http.StatusBadRequest, "INVALID_ANSWER"},
		{"llm unavailable", domain.NewLLMServiceError(nil), http.StatusServiceUnavailable, "LLM_SERVICE_ERROR"},
		{"internal", domain.NewInternalError("boom", nil), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(func(c *fiber.Ctx) error { return tt.err })

			status, errResp := doRequest(t, app)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedCode, errResp.Code)
			assert.Equal(t, tt.expectedStatus, errResp.Status)
		})
	}
}

func TestErrorHandlerFiberError(t *testing.T) {
	app := newTestApp(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	status, errResp := doRequest(t, app)
	assert.Equal(t, fiber.StatusTeapot, status)
	assert.Equal(t, "HTTP_ERROR", errResp.Code)
}

func TestErrorHandlerUnknownError(t *testing.T) {
	app := newTestApp(func(c *fiber.Ctx) error {
		return assert.AnError
	})

	status, errResp := doRequest(t, app)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", errResp.Code)
}
