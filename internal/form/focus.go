package form

// FocusState is a snapshot of the focus cell
type FocusState struct {
	// Current is the field holding focus, FieldNone when focus left the form
	Current FieldID
	// LastColor latches the most recently focused color field; blur never
	// clears it.
	LastColor FieldID
}

// FocusHandlers are the focus and blur callbacks bound to one field
type FocusHandlers struct {
	OnBlur  func()
	OnFocus func()
}

// Focus tracks the focused field and the last focused color field
type Focus struct {
	state FocusState
}

// NewFocus creates a tracker with nothing focused
func NewFocus() *Focus {
	return &Focus{}
}

// State returns the current focus snapshot
func (f *Focus) State() FocusState {
	return f.state
}

// Set moves focus to id. FieldNone clears the current field only.
func (f *Focus) Set(id FieldID) {
	f.state.Current = id
	if id.IsColorField() {
		f.state.LastColor = id
	}
}

// Handlers returns focus/blur callbacks for id. The blur callback only
// clears focus if id is still the current field, so a late blur from a
// field that already lost focus to another one is ignored.
func (f *Focus) Handlers(id FieldID) FocusHandlers {
	return FocusHandlers{
		OnFocus: func() {
			f.Set(id)
		},
		OnBlur: func() {
			if f.state.Current == id {
				f.Set(FieldNone)
			}
		},
	}
}

// ActiveColorField resolves the field a remove action targets: the current
// field, or the last focused color field when nothing is focused.
func (f *Focus) ActiveColorField() FieldID {
	if f.state.Current != FieldNone {
		return f.state.Current
	}
	return f.state.LastColor
}
