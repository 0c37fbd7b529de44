package domain

import (
	"strings"
	"unicode"
)

// Weights of the combined token-similarity score, and the minimum score
// at which callers should trust an inferred timestamp.
const (
	containmentWeight = 0.7
	jaccardWeight     = 0.3

	MinAlignScore = 0.18
)

// Segment is one span of a parsed transcript: a start time in seconds,
// an optional end time (zero when absent), and the spoken text. The
// sequence is immutable once parsed.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end,omitempty"`
	Text  string  `json:"text"`
}

// Alignment is the best-scoring segment for a piece of highlight text.
// Matched is false when no segment could be scored at all.
type Alignment struct {
	Start   float64 `json:"start"`
	Score   float64 `json:"score"`
	Matched bool    `json:"matched"`
}

// TokenizeText lowercases, strips punctuation and symbol runes, and
// splits on whitespace.
func TokenizeText(s string) []string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Fields(b.String())
}

// BestMatch scores every segment against the query text and returns the
// highest-scoring one. The score is a weighted blend of containment
// (fraction of query tokens present in the segment) and Jaccard
// similarity of the two token sets. Ties keep the first segment
// encountered. Empty queries or segment lists yield a zero-confidence
// result.
func BestMatch(text string, segments []Segment) Alignment {
	queryTokens := tokenSet(TokenizeText(text))
	if len(queryTokens) == 0 || len(segments) == 0 {
		return Alignment{}
	}

	best := Alignment{}
	for _, seg := range segments {
		segTokens := tokenSet(TokenizeText(seg.Text))
		if len(segTokens) == 0 {
			continue
		}

		inter := 0
		for tok := range queryTokens {
			if _, ok := segTokens[tok]; ok {
				inter++
			}
		}
		union := len(queryTokens) + len(segTokens) - inter

		containment := float64(inter) / float64(len(queryTokens))
		jaccard := float64(inter) / float64(union)
		score := containmentWeight*containment + jaccardWeight*jaccard

		if !best.Matched || score > best.Score {
			best = Alignment{Start: seg.Start, Score: score, Matched: true}
		}
	}
	return best
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}
