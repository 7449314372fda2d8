package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/mattn/go-shellwords"

	"tinta/internal/domain"
	"tinta/internal/logging"
	"tinta/internal/ports"
)

// DefaultCommand is used when no generator command is configured
const DefaultCommand = "claude -p {prompt}"

const waitDelay = 2 * time.Second

const (
	promptPlaceholder     = "{prompt}"
	creativityPlaceholder = "{creativity}"
)

// CLIGenerator implements ports.TextGenerator by running a local command
// line model client. The prompt replaces a {prompt} argument, or is
// appended as the last argument. The creativity level replaces
// {creativity} and is exported as TINTA_CREATIVITY.
type CLIGenerator struct {
	args []string
	env  []string
	name string
}

// Verify interface compliance at compile time
var _ ports.TextGenerator = (*CLIGenerator)(nil)

// NewCLIGenerator parses command with shell quoting rules. extraEnv entries
// are KEY=VALUE pairs added to the child environment.
func NewCLIGenerator(command string, extraEnv []string) (*CLIGenerator, error) {
	if strings.TrimSpace(command) == "" {
		command = DefaultCommand
	}

	words, err := shellwords.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("invalid generator command %q: %w", command, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("invalid generator command %q: no program", command)
	}

	for _, kv := range extraEnv {
		if !strings.Contains(kv, "=") {
			return nil, fmt.Errorf("invalid generator env entry %q: expected KEY=VALUE", kv)
		}
	}

	return &CLIGenerator{
		args: words[1:],
		env:  extraEnv,
		name: words[0],
	}, nil
}

// Generate runs the command and returns its trimmed standard output
func (g *CLIGenerator) Generate(ctx context.Context, prompt string, opts ports.GenerateOptions) (string, error) {
	creativity := opts.Creativity
	if creativity == "" {
		creativity = domain.DefaultCreativity
	}

	args := g.buildArgs(prompt, creativity)

	cmd := exec.CommandContext(ctx, g.name, args...)
	cmd.Env = append(os.Environ(), g.env...)
	cmd.Env = append(cmd.Env, "TINTA_CREATIVITY="+string(creativity))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Grandchildren may hold the pipes open after a cancel
	cmd.WaitDelay = waitDelay

	logging.Logger.Debug("Running generator", "command", g.name, "creativity", creativity, "prompt_length", len(prompt))

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("generator cancelled: %w", ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logging.Logger.Error("Generator exited with error", "command", g.name, "stderr", stderr.String())
			return "", fmt.Errorf("generator exited with code %d: %s", exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return "", fmt.Errorf("failed to run generator: %w", err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

func (g *CLIGenerator) buildArgs(prompt string, creativity domain.Creativity) []string {
	args := make([]string, 0, len(g.args)+1)
	hasPrompt := false
	for _, a := range g.args {
		if strings.Contains(a, promptPlaceholder) {
			hasPrompt = true
			a = strings.ReplaceAll(a, promptPlaceholder, prompt)
		}
		args = append(args, strings.ReplaceAll(a, creativityPlaceholder, string(creativity)))
	}
	if !hasPrompt {
		args = append(args, prompt)
	}
	return args
}
