package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContrastText(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want string
	}{
		{name: "white background", hex: "#FFFFFF", want: swatchDarkText},
		{name: "short yellow", hex: "#FF0", want: swatchDarkText},
		{name: "black background", hex: "#000000", want: swatchLightText},
		{name: "navy", hex: "#001F3F", want: swatchLightText},
		{name: "invalid", hex: "nope", want: swatchLightText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContrastText(tt.hex))
		})
	}
}

func TestExpandShortHex(t *testing.T) {
	assert.Equal(t, "#aabbcc", expandShortHex("#abc"))
	assert.Equal(t, "#123456", expandShortHex("#123456"))
	assert.Equal(t, "abc", expandShortHex("abc"))
}
