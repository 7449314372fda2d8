package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"tinta/internal/paths"
	"tinta/internal/server"
)

const (
	defaultSSHHost = "localhost"
	defaultSSHPort = 23234
)

// ServeCmd serves the TUI over SSH
type ServeCmd struct {
	UIFlags `embed:""`

	AuthorizedKeys string `help:"authorized_keys file (default: $TINTA_HOME/ssh/authorized_keys, then ~/.ssh/authorized_keys)" env:"TINTA_AUTHORIZED_KEYS"`
	Host           string `help:"Address to listen on" default:"localhost" env:"TINTA_SSH_HOST"`
	Port           int    `help:"Port to listen on" default:"23234" env:"TINTA_SSH_PORT"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	settings := cli.loadedSettings()

	if s.Host == defaultSSHHost && !hasEnv("TINTA_SSH_HOST") && settings.SSHHost != "" {
		s.Host = settings.SSHHost
	}
	if s.Port == defaultSSHPort && !hasEnv("TINTA_SSH_PORT") && settings.SSHPort != nil {
		s.Port = *settings.SSHPort
	}

	opts, err := s.modelOptions(settings)
	if err != nil {
		return err
	}

	srv, err := server.NewServer(cli.Container.PaletteService, cli.Container.GenerationService, server.Options{
		AuthorizedKeysPath: s.authorizedKeysPath(),
		Host:               s.Host,
		HostKeyPath:        filepath.Join(paths.GetSSHDir(), "id_ed25519"),
		ModelOptions:       opts,
		Port:               s.Port,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving tinta on ssh://%s (Ctrl+C to stop)\n", srv.Address())
	return srv.Start(ctx)
}

func (s *ServeCmd) authorizedKeysPath() string {
	if s.AuthorizedKeys != "" {
		return paths.ExpandPath(s.AuthorizedKeys)
	}

	local := filepath.Join(paths.GetSSHDir(), "authorized_keys")
	if _, err := os.Stat(local); err == nil {
		return local
	}
	return paths.ExpandPath("~/.ssh/authorized_keys")
}
