package form

import (
	"sync"
	"time"

	"tinta/internal/domain"
	"tinta/internal/logging"
)

// DefaultFocusDelay lets the UI render a new field before it is focused
const DefaultFocusDelay = 50 * time.Millisecond

// Remove skip reasons
const (
	SkipNoTarget     = "no color field focused or recently focused"
	SkipNotColor     = "active field is not a color field"
	SkipOutOfRange   = "color index outside active fields"
	SkipSingleField  = "cannot remove the only color field"
	SkipFormIsClosed = "form is closed"
)

// RemoveResult describes the outcome of a remove action. A skipped remove
// is not an error.
type RemoveResult struct {
	// Focus is the field scheduled to receive focus after the removal
	Focus   FieldID
	Index   int
	Reason  string
	Removed bool
}

// Options configures a Form
type Options struct {
	// FocusDelay defaults to DefaultFocusDelay
	FocusDelay time.Duration
	// Scheduler defaults to TimerScheduler
	Scheduler Scheduler
}

// Form coordinates the color field counter, the focus tracker and the value
// store. It is the only writer of multi-cell transitions.
type Form struct {
	closed     bool
	fields     *ColorFields
	focus      *Focus
	focusDelay time.Duration
	mu         sync.Mutex
	nextTimer  uint64
	pending    map[uint64]Timer
	scheduler  Scheduler
	values     *Values
}

// New creates a form seeded with initial. The number of active color fields
// is the number of color values in initial, clamped to [1, MaxColorFields].
func New(initial domain.PaletteFormFields, opts Options) *Form {
	if opts.FocusDelay <= 0 {
		opts.FocusDelay = DefaultFocusDelay
	}
	if opts.Scheduler == nil {
		opts.Scheduler = TimerScheduler{}
	}

	return &Form{
		fields:     NewColorFields(len(initial.Colors)),
		focus:      NewFocus(),
		focusDelay: opts.FocusDelay,
		pending:    make(map[uint64]Timer),
		scheduler:  opts.Scheduler,
		values:     NewValues(initial),
	}
}

// Count returns the number of active color fields
func (f *Form) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields.Count()
}

// FocusState returns the focus snapshot
func (f *Form) FocusState() FocusState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.focus.State()
}

// SetFocus moves focus directly (FieldNone clears it)
func (f *Form) SetFocus(id FieldID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.focus.Set(id)
}

// FocusHandlers returns the focus and blur callbacks for a field
func (f *Form) FocusHandlers(id FieldID) FocusHandlers {
	h := f.focus.Handlers(id)
	return FocusHandlers{
		OnFocus: func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			h.OnFocus()
		},
		OnBlur: func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			h.OnBlur()
		},
	}
}

// Value returns a field value
func (f *Form) Value(id FieldID) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values.Get(id)
}

// SetValue writes a field value
func (f *Form) SetValue(id FieldID, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values.Set(id, value)
}

// Keywords returns the keyword list
func (f *Form) Keywords() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values.Keywords()
}

// SetKeywords replaces the keyword list
func (f *Form) SetKeywords(keywords []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values.SetKeywords(keywords)
}

// FieldError returns the last validation message for a field
func (f *Form) FieldError(id FieldID) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values.Error(id)
}

// Snapshot returns the form values restricted to the active color fields
func (f *Form) Snapshot() domain.PaletteFormFields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values.Snapshot(f.fields.Count())
}

// Validate runs the field validators over the active fields
func (f *Form) Validate() *domain.ValidationError {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values.Validate(f.fields.Count())
}

// AddColor activates a new color field and schedules focus on it. It
// returns the id of the new field, or FieldNone when already at the limit.
func (f *Form) AddColor() FieldID {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return FieldNone
	}

	count := f.fields.Count()
	if count >= domain.MaxColorFields {
		logging.Logger.Debug("Add color skipped, at maximum", "count", count)
		return FieldNone
	}

	// Computed before the count changes.
	newField := ColorFieldID(count + 1)
	f.values.Set(newField, "")
	f.fields.Add()
	f.scheduleFocus(newField)

	logging.Logger.Debug("Color field added", "field", newField, "count", f.fields.Count())
	return newField
}

// RemoveColor removes the active color field (focused, or last focused when
// focus left the form) and shifts the following values down to close the
// gap. Unresolvable targets and the single-field floor are benign skips.
func (f *Form) RemoveColor() RemoveResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return RemoveResult{Reason: SkipFormIsClosed}
	}

	active := f.focus.ActiveColorField()
	if active == FieldNone {
		return f.skip(RemoveResult{Reason: SkipNoTarget})
	}
	n, ok := ParseColorFieldID(active)
	if !ok {
		return f.skip(RemoveResult{Reason: SkipNotColor})
	}
	return f.removeAt(n)
}

// RemoveLastColor removes the last active color field regardless of focus
func (f *Form) RemoveLastColor() RemoveResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return RemoveResult{Reason: SkipFormIsClosed}
	}
	return f.removeAt(f.fields.Count())
}

// removeAt runs the reindex: read all active values, delete index n with a
// left shift, clear all active fields, rewrite the compacted list. Caller
// holds f.mu.
func (f *Form) removeAt(n int) RemoveResult {
	count := f.fields.Count()
	if n < 1 || n > count {
		return f.skip(RemoveResult{Index: n, Reason: SkipOutOfRange})
	}
	if count <= 1 {
		return f.skip(RemoveResult{Index: n, Reason: SkipSingleField})
	}

	values := f.values.Colors(count)
	values = append(values[:n-1], values[n:]...)

	for i := 1; i <= count; i++ {
		f.values.Set(ColorFieldID(i), "")
	}
	for i, v := range values {
		f.values.Set(ColorFieldID(i+1), v)
	}

	f.fields.Remove()

	target := ColorFieldID(max(1, min(n, f.fields.Count())))
	// A focused slot past the new count is gone; drop it now rather than
	// when the deferred focus fires
	if current := f.focus.State().Current; current != target {
		if k, ok := ParseColorFieldID(current); ok && k > f.fields.Count() {
			f.focus.Handlers(current).OnBlur()
		}
	}
	f.scheduleFocus(target)

	logging.Logger.Debug("Color field removed",
		"index", n,
		"count", f.fields.Count(),
		"focus", target)

	return RemoveResult{Focus: target, Index: n, Removed: true}
}

func (f *Form) skip(r RemoveResult) RemoveResult {
	logging.Logger.Debug("Remove color skipped", "reason", r.Reason, "index", r.Index)
	return r
}

// Clear resets the form to the default snapshot with a single color field.
// Pending focus callbacks are cancelled and focus is cleared.
func (f *Form) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.cancelPending()
	f.fields.Reset()
	f.values.Reset(domain.DefaultFormFields())
	f.focus.Set(FieldNone)

	logging.Logger.Debug("Form cleared")
}

// Reset replaces the values with fields and sizes the color fields to match
func (f *Form) Reset(fields domain.PaletteFormFields) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.cancelPending()
	f.fields = NewColorFields(len(fields.Colors))
	f.values.Reset(fields)
}

// UpdateKeywords parses text and appends the new valid keywords. The full
// result is returned for user feedback.
func (f *Form) UpdateKeywords(text string) KeywordResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing := f.values.Keywords()
	result := ProcessKeywords(text, existing)
	if len(result.Valid) > 0 {
		f.values.SetKeywords(append(existing, result.Valid...))
	}

	logging.Logger.Debug("Keywords updated",
		"added", len(result.Valid),
		"invalid", len(result.Invalid),
		"duplicates", len(result.Removed),
		"total", result.TotalProcessed)

	return result
}

// Preview returns the non-empty active color values in field order. It
// does not change any state.
func (f *Form) Preview() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return domain.CompactColors(f.values.Colors(f.fields.Count()))
}

// PendingFocus returns the number of scheduled focus callbacks
func (f *Form) PendingFocus() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}

// Close cancels every pending focus callback. The form ignores structural
// actions afterwards.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	f.cancelPending()
}

// scheduleFocus registers a deferred focus change. Caller holds f.mu.
func (f *Form) scheduleFocus(target FieldID) {
	id := f.nextTimer
	f.nextTimer++

	f.pending[id] = f.scheduler.AfterFunc(f.focusDelay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()

		if _, ok := f.pending[id]; !ok {
			return
		}
		delete(f.pending, id)
		if f.closed {
			return
		}
		f.focus.Set(target)
	})
}

// cancelPending stops every scheduled focus callback. Caller holds f.mu.
func (f *Form) cancelPending() {
	for id, t := range f.pending {
		t.Stop()
		delete(f.pending, id)
	}
}
