package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocus_SetLatchesLastColorField(t *testing.T) {
	f := NewFocus()

	f.Set("color3")
	f.Set(FieldName)
	f.Set(FieldNone)

	state := f.State()
	assert.Equal(t, FieldNone, state.Current)
	assert.Equal(t, FieldID("color3"), state.LastColor)
}

func TestFocus_StaleBlurIsIgnored(t *testing.T) {
	f := NewFocus()
	a := f.Handlers("color1")
	b := f.Handlers("color2")

	a.OnFocus()
	b.OnFocus()
	a.OnBlur()

	assert.Equal(t, FieldID("color2"), f.State().Current, "blur from a field that lost focus must not clear focus")
}

func TestFocus_BlurOfCurrentFieldClears(t *testing.T) {
	f := NewFocus()
	h := f.Handlers("color2")

	h.OnFocus()
	h.OnBlur()

	assert.Equal(t, FieldNone, f.State().Current)
	assert.Equal(t, FieldID("color2"), f.State().LastColor, "blur keeps the last color field")
}

func TestFocus_ActiveColorField(t *testing.T) {
	f := NewFocus()
	assert.Equal(t, FieldNone, f.ActiveColorField())

	f.Set("color2")
	f.Set(FieldNone)
	assert.Equal(t, FieldID("color2"), f.ActiveColorField(), "falls back to last color field")

	f.Set(FieldDescription)
	assert.Equal(t, FieldDescription, f.ActiveColorField(), "current field wins even if not a color")
}
