package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBrowser_Priority(t *testing.T) {
	const link = "https://coolors.co/fff-000"

	t.Setenv("TINTA_BROWSER", "firefox --new-tab")
	t.Setenv("BROWSER", "chromium")

	name, args, err := findBrowser("", link)
	require.NoError(t, err)
	assert.Equal(t, "firefox", name)
	assert.Equal(t, []string{"--new-tab", link}, args)

	name, args, err = findBrowser("'my browser' -x", link)
	require.NoError(t, err)
	assert.Equal(t, "my browser", name)
	assert.Equal(t, []string{"-x", link}, args)
}

func TestFindBrowser_FallsBackToPlatform(t *testing.T) {
	t.Setenv("TINTA_BROWSER", "")
	t.Setenv("BROWSER", "")

	name, args, err := findBrowser("", "https://example.com")

	require.NoError(t, err)
	assert.NotEmpty(t, name)
	assert.Contains(t, args, "https://example.com")
}

func TestFindBrowser_InvalidCommand(t *testing.T) {
	_, _, err := findBrowser(`"unterminated`, "https://example.com")
	assert.Error(t, err)
}

func TestOpen_RejectsNonHTTP(t *testing.T) {
	err := NewOpener("true").Open("file:///etc/passwd")
	assert.Error(t, err)
}

func TestUnavailable_Open(t *testing.T) {
	err := NewUnavailable("no browser over SSH, copy the link instead").Open("https://coolors.co/fff")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no browser over SSH")
}
