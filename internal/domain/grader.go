package domain

import "context"

// FallbackGrader grades free-text answers the heuristic evaluator could
// not decide. Implementations may call out to an LLM; a returned error
// leaves the attempt ungraded.
type FallbackGrader interface {
	GradeFreeText(ctx context.Context, prompt, reference, userAnswer string) (Verdict, float64, error)
}
