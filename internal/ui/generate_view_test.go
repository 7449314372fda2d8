package ui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinta/internal/domain"
	"tinta/internal/services"
)

func newTestGenerateView() *GenerateView {
	keys := NewKeyMap(nil)
	return NewGenerateView(nil, &keys, domain.CreativityMedium, domain.DefaultColorFields)
}

func TestGenerateView_Finish(t *testing.T) {
	titleErr := fmt.Errorf("%w: title: boom", domain.ErrGenerationFailed)

	tests := []struct {
		name       string
		msg        generationDoneMsg
		wantPhase  generatePhase
		wantNotice string
		wantError  string
	}{
		{
			name: "success",
			msg: generationDoneMsg{result: &services.GenerateResult{
				Colors: []string{"#112233"},
				Title:  "Night",
			}},
			wantPhase: phaseSelecting,
		},
		{
			name: "title failure keeps colors",
			msg: generationDoneMsg{
				err:    titleErr,
				result: &services.GenerateResult{Colors: []string{"#FFAA00", "#000"}, Description: "Warm"},
			},
			wantPhase:  phaseSelecting,
			wantNotice: titleErr.Error(),
		},
		{
			name: "failure without colors",
			msg: generationDoneMsg{
				err:    titleErr,
				result: &services.GenerateResult{Description: "Warm"},
			},
			wantPhase: phaseFailed,
			wantError: titleErr.Error(),
		},
		{
			name:      "no valid colors",
			msg:       generationDoneMsg{result: &services.GenerateResult{}},
			wantPhase: phaseFailed,
			wantError: "The AI did not return any valid colors. Please try again.",
		},
		{
			name:      "cancelled",
			msg:       generationDoneMsg{err: context.Canceled, result: &services.GenerateResult{Colors: []string{"#fff"}}},
			wantPhase: phaseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gv := newTestGenerateView()

			gv.finish(tt.msg)

			assert.Equal(t, tt.wantPhase, gv.phase)
			assert.Equal(t, tt.wantNotice, gv.notice)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, gv.state.Error)
			}
			if tt.wantPhase == phaseSelecting {
				require.NotNil(t, gv.grid)
			}
		})
	}
}

func TestGenerateView_FinishKeepsStageMessage(t *testing.T) {
	gv := newTestGenerateView()
	gv.state.Error = "Failed to generate title. Please try again."

	gv.finish(generationDoneMsg{
		err:    errors.New("title boom"),
		result: &services.GenerateResult{Capped: true, Colors: []string{"#123456"}},
	})

	assert.Equal(t, phaseSelecting, gv.phase)
	assert.Equal(t, "Failed to generate title. Please try again.\nLimited to 15 colors", gv.notice)
}
