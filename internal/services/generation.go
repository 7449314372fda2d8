package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"tinta/internal/domain"
	"tinta/internal/logging"
	"tinta/internal/ports"
)

// Generation stages in priority order
const (
	StageColors      = "colors"
	StageDescription = "description"
	StageTitle       = "title"
)

// GenerationState is the aggregate progress of one generation run
type GenerationState struct {
	Colors      []string
	Description string
	// Error is the stage-specific message of the first failed call
	Error   string
	Loading bool
	// Stage is the first still-pending call: colors, description, title
	Stage string
	Title string
}

// StageLabel returns a human-readable progress label
func (s GenerationState) StageLabel() string {
	if s.Stage == "" {
		return ""
	}
	return fmt.Sprintf("Generating %s...", s.Stage)
}

// GenerationService turns a prompt into colors, a description and a title
// through three text generation calls
type GenerationService struct {
	generator ports.TextGenerator
}

// NewGenerationService creates a new GenerationService
func NewGenerationService(generator ports.TextGenerator) *GenerationService {
	return &GenerationService{generator: generator}
}

// Generate runs the colors and description calls concurrently, then the
// title call with the generated description. onProgress (optional) receives
// a snapshot after every state change. The calls are independent: a failed
// call does not cancel the others, and the result holds every stage that
// settled even when an error is returned. Cancelling ctx aborts the
// in-flight calls. Failed calls wrap domain.ErrGenerationFailed.
func (s *GenerationService) Generate(
	ctx context.Context,
	req GenerateRequest,
	onProgress func(GenerationState),
) (*GenerateResult, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, fmt.Errorf("prompt is required")
	}

	count, capped := SanitizeColorCount(req.TotalColors)
	creativity := SanitizeCreativity(req.Creativity)
	opts := ports.GenerateOptions{Creativity: creativity}

	logging.Logger.Info("Generating palette",
		"count", count,
		"capped", capped,
		"creativity", creativity)

	t := newTracker(onProgress)
	t.start()

	var g errgroup.Group

	g.Go(func() error {
		raw, err := s.generator.Generate(ctx, composeColorPrompt(prompt, count, creativity), opts)
		if err != nil {
			return t.fail(StageColors, err)
		}
		t.settleColors(ParseAIColors(raw))
		return nil
	})

	g.Go(func() error {
		description, err := s.generator.Generate(ctx, composeDescriptionPrompt(prompt, creativity), opts)
		if err != nil {
			t.skipTitle()
			return t.fail(StageDescription, err)
		}
		description = truncateRunes(cleanText(description), domain.DescriptionMaxLength)
		t.settleDescription(description)

		title, err := s.generator.Generate(ctx, composeTitlePrompt(prompt, description, creativity), opts)
		if err != nil {
			return t.fail(StageTitle, err)
		}
		t.settleTitle(truncateRunes(cleanText(title), domain.NameMaxLength))
		return nil
	})

	err := g.Wait()
	state := t.finish()
	result := &GenerateResult{
		Capped:      capped,
		Colors:      state.Colors,
		Description: state.Description,
		Requested:   count,
		Title:       state.Title,
	}
	if err != nil {
		logging.Logger.Error("Palette generation failed", "error", err, "colors", len(state.Colors))
		return result, err
	}

	logging.Logger.Info("Palette generated", "colors", len(state.Colors))
	return result, nil
}

// tracker owns the aggregate state of one run
type tracker struct {
	mu         sync.Mutex
	onProgress func(GenerationState)
	pending    map[string]bool
	state      GenerationState
}

func newTracker(onProgress func(GenerationState)) *tracker {
	return &tracker{
		onProgress: onProgress,
		pending: map[string]bool{
			StageColors:      true,
			StageDescription: true,
			StageTitle:       true,
		},
	}
}

func (t *tracker) start() {
	t.update(func() {})
}

func (t *tracker) settleColors(colors []string) {
	t.update(func() {
		t.state.Colors = colors
		delete(t.pending, StageColors)
	})
}

func (t *tracker) settleDescription(description string) {
	t.update(func() {
		t.state.Description = description
		delete(t.pending, StageDescription)
	})
}

func (t *tracker) settleTitle(title string) {
	t.update(func() {
		t.state.Title = title
		delete(t.pending, StageTitle)
	})
}

func (t *tracker) skipTitle() {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.pending, StageTitle)
}

// fail records the first failure and returns the wrapped error
func (t *tracker) fail(stage string, err error) error {
	wrapped := fmt.Errorf("%w: %s: %w", domain.ErrGenerationFailed, stage, err)
	t.update(func() {
		delete(t.pending, stage)
		if t.state.Error == "" {
			t.state.Error = fmt.Sprintf("Failed to generate %s. Please try again.", stage)
		}
	})
	return wrapped
}

func (t *tracker) finish() GenerationState {
	t.update(func() {
		t.pending = map[string]bool{}
	})
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// update applies fn, recomputes Loading and Stage and notifies. The
// callback runs outside the lock.
func (t *tracker) update(fn func()) {
	t.mu.Lock()
	fn()
	t.state.Loading = len(t.pending) > 0
	t.state.Stage = ""
	for _, stage := range []string{StageColors, StageDescription, StageTitle} {
		if t.pending[stage] {
			t.state.Stage = stage
			break
		}
	}
	snapshot := t.state
	snapshot.Colors = append([]string(nil), t.state.Colors...)
	t.mu.Unlock()

	if t.onProgress != nil {
		t.onProgress(snapshot)
	}
}

var codeFence = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")

// ParseAIColors parses a JSON array of strings and keeps the valid hex
// colors. A surrounding markdown code fence is ignored. Anything that is
// not a JSON array yields an empty list.
func ParseAIColors(raw string) []string {
	raw = strings.TrimSpace(raw)
	if m := codeFence.FindStringSubmatch(raw); m != nil {
		raw = m[1]
	}
	if raw == "" {
		return []string{}
	}

	var parsed []any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		logging.Logger.Debug("Generated colors are not a JSON array", "error", err)
		return []string{}
	}

	colors := make([]string, 0, len(parsed))
	for _, v := range parsed {
		if c, ok := v.(string); ok && domain.IsValidHexColor(c) {
			colors = append(colors, c)
		}
	}
	return colors
}

var nonDigits = regexp.MustCompile(`\D`)

// SanitizeColorCount strips non-digit characters and clamps to
// [1, MaxColorFields]. Empty input means DefaultColorFields. capped reports
// that the request exceeded MaxColorFields.
func SanitizeColorCount(raw string) (count int, capped bool) {
	digits := nonDigits.ReplaceAllString(raw, "")
	if digits == "" {
		return domain.DefaultColorFields, false
	}

	n, err := strconv.Atoi(digits)
	if err != nil || n > domain.MaxColorFields {
		// Atoi only fails here on overflow
		return domain.MaxColorFields, true
	}
	if n < 1 {
		return 1, false
	}
	return n, false
}

// SanitizeCreativity maps raw to a known level, defaulting to medium
func SanitizeCreativity(raw string) domain.Creativity {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if domain.IsCreativity(raw) {
		return domain.Creativity(raw)
	}
	return domain.DefaultCreativity
}

// cleanText trims whitespace and wrapping quotes from generated text
func cleanText(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}
