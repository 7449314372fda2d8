package generator

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinta/internal/domain"
	"tinta/internal/ports"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestNewCLIGenerator(t *testing.T) {
	tests := []struct {
		name    string
		command string
		env     []string
		wantErr bool
	}{
		{"default when empty", "", nil, false},
		{"quoted args", `llm -m "gpt 4o" {prompt}`, nil, false},
		{"unterminated quote", `llm "oops`, nil, true},
		{"bad env", "llm", []string{"NOVALUE"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCLIGenerator(tt.command, tt.env)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCLIGenerator_BuildArgs(t *testing.T) {
	g, err := NewCLIGenerator(`llm --temp {creativity} -p {prompt} --raw`, nil)
	require.NoError(t, err)

	assert.Equal(t, "llm", g.name)
	assert.Equal(t,
		[]string{"--temp", "high", "-p", "make it blue", "--raw"},
		g.buildArgs("make it blue", domain.CreativityHigh))

	g, err = NewCLIGenerator("llm -s", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"-s", "hello"}, g.buildArgs("hello", domain.CreativityLow))
}

func TestCLIGenerator_Generate(t *testing.T) {
	skipOnWindows(t)

	g, err := NewCLIGenerator(`sh -c 'printf "%s|%s|%s" "$1" "$TINTA_CREATIVITY" "$EXTRA"' sh {prompt}`, []string{"EXTRA=yes"})
	require.NoError(t, err)

	out, err := g.Generate(context.Background(), "sunset", ports.GenerateOptions{})

	require.NoError(t, err)
	assert.Equal(t, "sunset|medium|yes", out)
}

func TestCLIGenerator_GenerateFailure(t *testing.T) {
	skipOnWindows(t)

	g, err := NewCLIGenerator(`sh -c 'echo boom >&2; exit 3'`, nil)
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), "x", ports.GenerateOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "code 3")
	assert.Contains(t, err.Error(), "boom")
}

func TestCLIGenerator_GenerateCancelled(t *testing.T) {
	skipOnWindows(t)

	g, err := NewCLIGenerator(`sh -c 'exec sleep 5'`, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = g.Generate(ctx, "x", ports.GenerateOptions{})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
