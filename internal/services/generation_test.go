package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tinta/internal/domain"
	"tinta/internal/ports"
	portsmocks "tinta/internal/ports/mocks"
)

// fakeResponses answers each prompt kind from a table
func fakeResponses(colors, description, title string, failures map[string]error) func(context.Context, string, ports.GenerateOptions) (string, error) {
	return func(_ context.Context, prompt string, _ ports.GenerateOptions) (string, error) {
		switch {
		case strings.HasPrefix(prompt, "Create a title"):
			if err := failures[StageTitle]; err != nil {
				return "", err
			}
			return title, nil
		case strings.HasPrefix(prompt, "Create a description"):
			if err := failures[StageDescription]; err != nil {
				return "", err
			}
			return description, nil
		default:
			if err := failures[StageColors]; err != nil {
				return "", err
			}
			return colors, nil
		}
	}
}

func TestGenerate_Success(t *testing.T) {
	generator := portsmocks.NewMockTextGenerator(t)
	generator.EXPECT().
		Generate(mock.Anything, mock.Anything, ports.GenerateOptions{Creativity: domain.CreativityHigh}).
		RunAndReturn(fakeResponses(`["#FFAA00", "notacolor", "#000"]`, "Warm dusk tones", `"Dusk"`, nil))

	var mu sync.Mutex
	var states []GenerationState
	service := NewGenerationService(generator)

	result, err := service.Generate(context.Background(), GenerateRequest{
		Creativity:  "HIGH",
		Prompt:      "sunset over the sea",
		TotalColors: "5 colors",
	}, func(s GenerationState) {
		mu.Lock()
		defer mu.Unlock()
		states = append(states, s)
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"#FFAA00", "#000"}, result.Colors)
	assert.Equal(t, "Warm dusk tones", result.Description)
	assert.Equal(t, "Dusk", result.Title)
	assert.Equal(t, 5, result.Requested)
	assert.False(t, result.Capped)

	require.NotEmpty(t, states)
	assert.True(t, states[0].Loading)
	assert.Equal(t, StageColors, states[0].Stage)
	last := states[len(states)-1]
	assert.False(t, last.Loading)
	assert.Empty(t, last.Stage)
	assert.Empty(t, last.Error)
}

func TestGenerate_TitleUsesDescription(t *testing.T) {
	generator := portsmocks.NewMockTextGenerator(t)
	var titlePrompt string
	var mu sync.Mutex
	generator.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, prompt string, opts ports.GenerateOptions) (string, error) {
			if strings.HasPrefix(prompt, "Create a title") {
				mu.Lock()
				titlePrompt = prompt
				mu.Unlock()
			}
			return fakeResponses("[]", "Mossy greens", "Moss", nil)(ctx, prompt, opts)
		})

	_, err := NewGenerationService(generator).Generate(context.Background(), GenerateRequest{Prompt: "forest"}, nil)

	require.NoError(t, err)
	assert.Contains(t, titlePrompt, "Description: Mossy greens")
	assert.Contains(t, titlePrompt, "Creativity: medium")
}

func TestGenerate_MalformedColorsIsNotAnError(t *testing.T) {
	generator := portsmocks.NewMockTextGenerator(t)
	generator.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(fakeResponses("sorry, no colors", "d", "t", nil))

	result, err := NewGenerationService(generator).Generate(context.Background(), GenerateRequest{Prompt: "x"}, nil)

	require.NoError(t, err)
	assert.Empty(t, result.Colors)
}

func TestGenerate_StageFailures(t *testing.T) {
	tests := []struct {
		stage   string
		message string
	}{
		{StageColors, "Failed to generate colors. Please try again."},
		{StageDescription, "Failed to generate description. Please try again."},
		{StageTitle, "Failed to generate title. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.stage, func(t *testing.T) {
			generator := portsmocks.NewMockTextGenerator(t)
			generator.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).
				RunAndReturn(fakeResponses("[]", "d", "t", map[string]error{tt.stage: errors.New("boom")})).
				Maybe()

			var mu sync.Mutex
			var last GenerationState
			_, err := NewGenerationService(generator).Generate(context.Background(), GenerateRequest{Prompt: "x"}, func(s GenerationState) {
				mu.Lock()
				defer mu.Unlock()
				last = s
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrGenerationFailed)
			assert.Contains(t, err.Error(), tt.stage)
			assert.False(t, last.Loading)
			assert.NotEmpty(t, last.Error)
		})
	}
}

func TestGenerate_ColorFailureKeepsText(t *testing.T) {
	generator := portsmocks.NewMockTextGenerator(t)
	generator.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(fakeResponses("", "Warm dusk tones", "Dusk", map[string]error{StageColors: errors.New("boom")}))

	var mu sync.Mutex
	var last GenerationState
	result, err := NewGenerationService(generator).Generate(context.Background(), GenerateRequest{Prompt: "x"}, func(s GenerationState) {
		mu.Lock()
		defer mu.Unlock()
		last = s
	})

	require.Error(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Colors)
	assert.Equal(t, "Warm dusk tones", result.Description)
	assert.Equal(t, "Dusk", result.Title)
	assert.Equal(t, "Failed to generate colors. Please try again.", last.Error)
}

func TestGenerate_TitleFailureKeepsColors(t *testing.T) {
	generator := portsmocks.NewMockTextGenerator(t)
	generator.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(fakeResponses(`["#FFAA00","#000"]`, "Warm dusk tones", "", map[string]error{StageTitle: errors.New("title boom")}))

	result, err := NewGenerationService(generator).Generate(context.Background(), GenerateRequest{Prompt: "sunset"}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
	assert.Equal(t, "generation failed: title: title boom", err.Error())
	require.NotNil(t, result)
	assert.Equal(t, []string{"#FFAA00", "#000"}, result.Colors)
	assert.Equal(t, "Warm dusk tones", result.Description)
	assert.Empty(t, result.Title)
}

func TestGenerate_DescriptionFailureDoesNotCancelColors(t *testing.T) {
	generator := portsmocks.NewMockTextGenerator(t)
	descriptionFailed := make(chan struct{})
	generator.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, prompt string, _ ports.GenerateOptions) (string, error) {
			if strings.HasPrefix(prompt, "Create a description") {
				close(descriptionFailed)
				return "", errors.New("desc boom")
			}
			// The colors call settles after its sibling failed and must
			// still see a live context
			<-descriptionFailed
			if err := ctx.Err(); err != nil {
				return "", err
			}
			return `["#112233"]`, nil
		})

	result, err := NewGenerationService(generator).Generate(context.Background(), GenerateRequest{Prompt: "x"}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "description: desc boom")
	require.NotNil(t, result)
	assert.Equal(t, []string{"#112233"}, result.Colors)
	assert.Empty(t, result.Title)
}

func TestGenerate_RequiresPrompt(t *testing.T) {
	_, err := NewGenerationService(portsmocks.NewMockTextGenerator(t)).Generate(context.Background(), GenerateRequest{Prompt: "  "}, nil)
	assert.Error(t, err)
}

func TestGenerate_CancelledContext(t *testing.T) {
	generator := portsmocks.NewMockTextGenerator(t)
	generator.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, _ ports.GenerateOptions) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerationService(generator).Generate(ctx, GenerateRequest{Prompt: "x"}, nil)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseAIColors(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{"filters invalid", `["#FFAA00", "notacolor", "#000"]`, []string{"#FFAA00", "#000"}},
		{"not json", "not json", []string{}},
		{"object", `{"a":1}`, []string{}},
		{"empty", "", []string{}},
		{"non string items", `["#fff", 3, null]`, []string{"#fff"}},
		{"fenced", "```json\n[\"#123456\"]\n```", []string{"#123456"}},
		{"bare fence", "```\n[\"#abc\"]```", []string{"#abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseAIColors(tt.raw))
		})
	}
}

func TestSanitizeColorCount(t *testing.T) {
	tests := []struct {
		raw    string
		count  int
		capped bool
	}{
		{"", domain.DefaultColorFields, false},
		{"abc", domain.DefaultColorFields, false},
		{"5", 5, false},
		{" 7 colors", 7, false},
		{"0", 1, false},
		{"-3", 3, false},
		{"15", 15, false},
		{"16", domain.MaxColorFields, true},
		{"99999999999999999999999", domain.MaxColorFields, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			count, capped := SanitizeColorCount(tt.raw)
			assert.Equal(t, tt.count, count)
			assert.Equal(t, tt.capped, capped)
		})
	}
}

func TestSanitizeCreativity(t *testing.T) {
	assert.Equal(t, domain.CreativityMaximum, SanitizeCreativity(" Maximum "))
	assert.Equal(t, domain.CreativityNone, SanitizeCreativity("none"))
	assert.Equal(t, domain.CreativityMedium, SanitizeCreativity(""))
	assert.Equal(t, domain.CreativityMedium, SanitizeCreativity("wild"))
}

func TestGenerationState_StageLabel(t *testing.T) {
	assert.Equal(t, "Generating description...", GenerationState{Stage: StageDescription}.StageLabel())
	assert.Empty(t, GenerationState{}.StageLabel())
}
