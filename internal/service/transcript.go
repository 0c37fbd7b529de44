package service

import (
	"regexp"
	"strconv"
	"strings"

	"quizflow/internal/domain"
	"quizflow/internal/dto"
)

// TranscriptService parses raw transcript text into timed segments and
// aligns highlight text against them to infer a timestamp.
type TranscriptService interface {
	AlignHighlight(req *dto.AlignRequest) (*dto.AlignResponse, error)
	ParseTranscript(raw string) []domain.Segment
}

type transcriptService struct{}

// NewTranscriptService creates a new TranscriptService.
func NewTranscriptService() TranscriptService {
	return &transcriptService{}
}

// AlignHighlight implements TranscriptService. The inferred timestamp
// is only marked accepted at or above the confidence threshold; the
// raw best score is always returned.
func (s *transcriptService) AlignHighlight(req *dto.AlignRequest) (*dto.AlignResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, domain.NewInvalidInputError("text is required")
	}

	segments := s.ParseTranscript(req.Transcript)
	match := domain.BestMatch(req.Text, segments)

	resp := &dto.AlignResponse{Score: match.Score}
	if match.Matched {
		start := match.Start
		resp.Timestamp = &start
		resp.Accepted = match.Score >= domain.MinAlignScore
	}
	return resp, nil
}

var (
	bracketLineRe = regexp.MustCompile(`^\s*\[(\d{1,2}(?::\d{2}){1,2}(?:[.,]\d{1,3})?)\]\s*(.*)$`)
	cueLineRe     = regexp.MustCompile(`^\s*(\d{1,2}(?::\d{2}){1,2}(?:[.,]\d{1,3})?)\s*-->\s*(\d{1,2}(?::\d{2}){1,2}(?:[.,]\d{1,3})?)\s*$`)
	indexLineRe   = regexp.MustCompile(`^\s*\d+\s*$`)
)

// ParseTranscript implements TranscriptService. Two line-oriented
// shapes are recognized and may be mixed:
//
//	[mm:ss] spoken text
//	hh:mm:ss.mmm --> hh:mm:ss.mmm   (SRT/VTT cue, text on following lines)
//
// Lines that fit neither shape extend the text of the open cue, if
// any; otherwise they are dropped. The result is ordered as read.
func (s *transcriptService) ParseTranscript(raw string) []domain.Segment {
	var segments []domain.Segment
	var open *domain.Segment

	flush := func() {
		if open != nil {
			open.Text = strings.TrimSpace(open.Text)
			if open.Text != "" {
				segments = append(segments, *open)
			}
			open = nil
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")

		if m := bracketLineRe.FindStringSubmatch(line); m != nil {
			flush()
			start, ok := parseClock(m[1])
			if !ok {
				continue
			}
			text := strings.TrimSpace(m[2])
			if text != "" {
				segments = append(segments, domain.Segment{Start: start, Text: text})
			}
			continue
		}

		if m := cueLineRe.FindStringSubmatch(line); m != nil {
			flush()
			start, okStart := parseClock(m[1])
			if !okStart {
				continue
			}
			seg := domain.Segment{Start: start}
			if end, okEnd := parseClock(m[2]); okEnd {
				seg.End = end
			}
			open = &seg
			continue
		}

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if indexLineRe.MatchString(line) || strings.EqualFold(strings.TrimSpace(line), "WEBVTT") {
			continue
		}
		if open != nil {
			if open.Text != "" {
				open.Text += " "
			}
			open.Text += strings.TrimSpace(line)
		}
	}
	flush()

	return segments
}

// parseClock converts "ss", "mm:ss" or "hh:mm:ss" clocks, with an
// optional ".mmm"/",mmm" fraction, into seconds.
func parseClock(clock string) (float64, bool) {
	clock = strings.ReplaceAll(clock, ",", ".")

	var fraction float64
	if dot := strings.Index(clock, "."); dot != -1 {
		f, err := strconv.ParseFloat(clock[dot:], 64)
		if err != nil {
			return 0, false
		}
		fraction = f
		clock = clock[:dot]
	}

	parts := strings.Split(clock, ":")
	if len(parts) > 3 {
		return 0, false
	}

	var seconds float64
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, false
		}
		seconds = seconds*60 + float64(n)
	}
	return seconds + fraction, true
}
