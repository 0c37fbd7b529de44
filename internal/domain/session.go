package domain

import "time"

// Session is the immutable state of one adaptive quiz run: the target
// difficulty, the asked-set, and running counters. Every transition
// returns a new value; callers thread the result through each
// interaction and persist it between requests. The asked-set is
// append-only and dies with the session.
type Session struct {
	ID        string     `json:"id"`
	Topic     string     `json:"topic,omitempty"`
	Target    Difficulty `json:"target"`
	AskedIDs  []string   `json:"asked_ids"`
	Answered  int        `json:"answered"`
	Correct   int        `json:"correct"`
	Score     float64    `json:"score"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewSession creates a fresh session aiming at the given difficulty.
func NewSession(id string, target Difficulty) Session {
	return Session{
		ID:        id,
		Target:    target,
		AskedIDs:  []string{},
		CreatedAt: time.Now(),
	}
}

// Asked returns the asked-set as a lookup map for the picker.
func (s Session) Asked() map[string]struct{} {
	m := make(map[string]struct{}, len(s.AskedIDs))
	for _, id := range s.AskedIDs {
		m[id] = struct{}{}
	}
	return m
}

// WithAsked returns a copy of the session with the question id appended
// to the asked-set.
func (s Session) WithAsked(questionID string) Session {
	next := s
	next.AskedIDs = make([]string, 0, len(s.AskedIDs)+1)
	next.AskedIDs = append(next.AskedIDs, s.AskedIDs...)
	next.AskedIDs = append(next.AskedIDs, questionID)
	return next
}

// Advance applies the adaptive difficulty policy for one graded answer:
// one step up on correct, one step down on incorrect, unchanged on
// ungraded. Counters and the running score move accordingly.
func (s Session) Advance(v Verdict, score float64) Session {
	next := s
	next.Answered++
	switch v {
	case VerdictCorrect:
		next.Correct++
		next.Score += score
		next.Target = s.Target.StepUp()
	case VerdictIncorrect:
		next.Target = s.Target.StepDown()
	case VerdictUngraded:
		next.Score += score
	}
	return next
}
