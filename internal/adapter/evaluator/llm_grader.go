package evaluator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"quizflow/internal/config"
	"quizflow/internal/domain"
	"quizflow/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// llmGrader implements domain.FallbackGrader against a local Ollama
// server. It is only consulted for short-answer submissions the
// heuristic evaluator returned ungraded for.
type llmGrader struct {
	llm     *ollama.LLM
	timeout time.Duration
}

// NewLLMGrader creates a fallback grader from the LLM configuration.
func NewLLMGrader(cfg config.LLMConfig) (domain.FallbackGrader, error) {
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     10 * time.Second,
		},
	}

	llm, err := ollama.New(
		ollama.WithServerURL(cfg.ServerURL),
		ollama.WithModel(cfg.Model),
		ollama.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, domain.NewLLMServiceError(err)
	}

	return &llmGrader{llm: llm, timeout: cfg.Timeout}, nil
}

const gradePromptTemplate = `You are a quiz answer grader. Respond with ONLY a JSON object in the following format:
{
    "correct": true,
    "score": 0.0
}

Question: %s
Reference Answer: %s
User's Answer: %s

Rules:
1. "correct" is true only when the user's answer expresses the same fact as the reference answer
2. "score" must be between 0 and 1 (1 is a perfect answer)
3. Ignore spelling, casing and punctuation differences`

// GradeFreeText implements domain.FallbackGrader.
func (g *llmGrader) GradeFreeText(ctx context.Context, prompt, reference, userAnswer string) (domain.Verdict, float64, error) {
	l := logger.Get()
	l.Info("Grading free-text answer with LLM",
		zap.String("question", prompt),
		zap.String("reference", reference))

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	fullPrompt := fmt.Sprintf(gradePromptTemplate, prompt, reference, userAnswer)
	response, err := g.llm.Call(ctx, fullPrompt, llms.WithTemperature(0.1))
	if err != nil {
		l.Error("Failed to get response from LLM", zap.Error(err))
		return domain.VerdictUngraded, 0, domain.NewLLMServiceError(err)
	}

	var graded struct {
		Correct bool    `json:"correct"`
		Score   float64 `json:"score"`
	}
	if err := json.Unmarshal([]byte(cleanResponse(response)), &graded); err != nil {
		return domain.VerdictUngraded, 0, domain.NewLLMServiceError(err)
	}

	if graded.Correct {
		return domain.VerdictCorrect, graded.Score, nil
	}
	return domain.VerdictIncorrect, graded.Score, nil
}

// cleanResponse strips reasoning tags and markdown fences some models
// wrap their JSON output in.
func cleanResponse(response string) string {
	s := strings.TrimSpace(response)
	if thinkStart := strings.Index(s, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(s, "</think>"); thinkEnd != -1 {
			s = s[:thinkStart] + s[thinkEnd+len("</think>"):]
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
