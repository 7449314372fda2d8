package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tinta/internal/domain"
	"tinta/internal/form"
	"tinta/internal/ports"
	portsmocks "tinta/internal/ports/mocks"
	"tinta/internal/services"
	servicesmocks "tinta/internal/services/mocks"
)

func newTestPaletteForm(t *testing.T, drafts *portsmocks.MockDraftStore, initial domain.PaletteFormFields) (*PaletteForm, *portsmocks.MockPaletteRepository) {
	t.Helper()

	repo := portsmocks.NewMockPaletteRepository(t)
	ids := servicesmocks.NewMockIDGenerator(t)
	palettes := services.NewPaletteService(repo, ids, time.Now)
	export := services.NewExportService(portsmocks.NewMockClipboard(t), portsmocks.NewMockURLOpener(t))
	keys := NewKeyMap(nil)

	var store ports.DraftStore
	if drafts != nil {
		store = drafts
	}

	pf := NewPaletteForm(palettes, export, store, &keys, initial, time.Millisecond)
	pf.Init()
	return pf, repo
}

func sendKeys(pf *PaletteForm, msgs ...tea.KeyMsg) {
	for _, msg := range msgs {
		pf.Update(msg)
	}
}

func typeText(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

func TestPaletteForm_TypingUpdatesFocusedField(t *testing.T) {
	pf, _ := newTestPaletteForm(t, nil, domain.DefaultFormFields())

	sendKeys(pf, typeText("Sunset"))

	assert.Equal(t, "Sunset", pf.Form().Value(form.FieldName))
}

func TestPaletteForm_AddAndRemoveColorFields(t *testing.T) {
	pf, _ := newTestPaletteForm(t, nil, domain.DefaultFormFields())
	require.Equal(t, 1, pf.Form().Count())

	sendKeys(pf,
		tea.KeyMsg{Type: tea.KeyCtrlN},
		tea.KeyMsg{Type: tea.KeyCtrlN},
	)
	assert.Equal(t, 3, pf.Form().Count())

	sendKeys(pf, tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Equal(t, 2, pf.Form().Count())
}

func TestPaletteForm_AddColorStopsAtMaximum(t *testing.T) {
	pf, _ := newTestPaletteForm(t, nil, domain.DefaultFormFields())

	for i := 0; i < domain.MaxColorFields+3; i++ {
		sendKeys(pf, tea.KeyMsg{Type: tea.KeyCtrlN})
	}

	assert.Equal(t, domain.MaxColorFields, pf.Form().Count())
	assert.Contains(t, pf.notice, "at most")
}

func TestPaletteForm_RemoveLastColorKeepsOneField(t *testing.T) {
	pf, _ := newTestPaletteForm(t, nil, domain.DefaultFormFields())

	sendKeys(pf, tea.KeyMsg{Type: tea.KeyCtrlX})

	assert.Equal(t, 1, pf.Form().Count())
	assert.Contains(t, pf.notice, "Nothing removed")
}

func TestPaletteForm_CycleModeToggles(t *testing.T) {
	pf, _ := newTestPaletteForm(t, nil, domain.DefaultFormFields())
	require.Equal(t, string(domain.ModeLight), pf.Form().Value(form.FieldMode))

	sendKeys(pf, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, string(domain.ModeDark), pf.Form().Value(form.FieldMode))

	sendKeys(pf, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, string(domain.ModeLight), pf.Form().Value(form.FieldMode))
}

func TestPaletteForm_EnterCommitsKeywords(t *testing.T) {
	pf, _ := newTestPaletteForm(t, nil, domain.DefaultFormFields())

	// name -> description -> mode -> keywords
	sendKeys(pf,
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
	)
	require.Equal(t, form.FieldKeywords, pf.Form().FocusState().Current)

	sendKeys(pf, typeText("warm, retro, warm"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"warm", "retro"}, pf.Form().Keywords())
	assert.Contains(t, pf.notice, "skipped duplicates")

	sendKeys(pf, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, []string{"warm"}, pf.Form().Keywords())
}

func TestPaletteForm_SubmitInvalidDoesNotSave(t *testing.T) {
	pf, _ := newTestPaletteForm(t, nil, domain.DefaultFormFields())

	sendKeys(pf, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.False(t, pf.saving)
	assert.False(t, pf.Completed)
	assert.Equal(t, "Please fix the highlighted fields", pf.statusText)
	assert.NotEmpty(t, pf.Form().FieldError(form.FieldName))
	assert.Equal(t, form.FieldName, pf.Form().FocusState().Current)
}

func TestPaletteForm_EscSavesDraftForNewPalette(t *testing.T) {
	drafts := portsmocks.NewMockDraftStore(t)
	drafts.EXPECT().Save(mock.MatchedBy(func(f domain.PaletteFormFields) bool {
		return f.Name == "Dusk"
	})).Return(nil)

	pf, _ := newTestPaletteForm(t, drafts, domain.DefaultFormFields())
	sendKeys(pf, typeText("Dusk"), tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, pf.Completed)
	assert.True(t, pf.Result().Cancelled)
}

func TestPaletteForm_EscOnBlankFormClearsDraft(t *testing.T) {
	drafts := portsmocks.NewMockDraftStore(t)
	drafts.EXPECT().Clear().Return(nil)

	pf, _ := newTestPaletteForm(t, drafts, domain.DefaultFormFields())
	sendKeys(pf, tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, pf.Completed)
}

func TestPaletteForm_EscWhileEditingSkipsDrafts(t *testing.T) {
	// No expectations: any draft call fails the test
	drafts := portsmocks.NewMockDraftStore(t)

	initial := domain.PaletteFormFields{
		Colors:   []string{"#112233"},
		EditID:   "p1",
		Keywords: []string{},
		Mode:     domain.ModeDark,
		Name:     "Night",
	}
	pf, _ := newTestPaletteForm(t, drafts, initial)
	sendKeys(pf, tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, pf.Completed)
	assert.True(t, pf.Result().Cancelled)
}

func TestKeywordFeedback(t *testing.T) {
	tests := []struct {
		name     string
		result   form.KeywordResult
		expected string
	}{
		{
			name:     "nothing added",
			result:   form.KeywordResult{},
			expected: "No keywords added",
		},
		{
			name:     "single keyword",
			result:   form.KeywordResult{Valid: []string{"warm"}},
			expected: "Added 1 keyword",
		},
		{
			name:     "empty tokens are not listed",
			result:   form.KeywordResult{Invalid: []string{"", ""}, Valid: []string{"warm"}},
			expected: "Added 1 keyword",
		},
		{
			name: "mixed batch",
			result: form.KeywordResult{
				Duplicate: []string{"warm"},
				Invalid:   []string{"this-keyword-is-way-too-long-to-keep"},
				Valid:     []string{"retro", "dusk"},
			},
			expected: "Added 2 keywords; ignored invalid: this-keyword-is-way-too-long-to-keep; skipped duplicates: warm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, keywordFeedback(tt.result))
		})
	}
}
