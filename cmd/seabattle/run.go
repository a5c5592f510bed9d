package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/seabattle/internal/config"
	"github.com/vovakirdan/seabattle/internal/engine"
	"github.com/vovakirdan/seabattle/internal/protocol"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Serve the command protocol on stdin/stdout",
	Long: `Read protocol commands from stdin, one per line, and write each answer
to stdout. Rejected commands print "Error: Wrong argument!" to stderr.
The session ends on "exit" or end of input. Logs go to the file set by
log.file (SEABATTLE_LOG_FILE); without one only errors are logged.

Examples:
  seabattle run
  printf 'create master\nstart\nshot\nexit\n' | seabattle run`,
	Args: cobra.NoArgs,
	RunE: runProtocol,
}

func runProtocol(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	plog, closeLog, err := protocolLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	game := engine.New(cfg.EngineOptions())
	session := protocol.NewSession(game, os.Stdout, os.Stderr, plog)

	plog.Debug("serving protocol",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"strategy", cfg.Strategy)
	if err := session.Serve(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// protocolLogger keeps the session's logs apart from the error replies on
// stderr: they go to the configured file, or only errors reach stderr.
func protocolLogger(lc config.LogConfig, stderr io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		level = log.InfoLevel
	}

	if lc.File == "" {
		return newLogger(stderr, max(level, log.ErrorLevel)), func() error { return nil }, nil
	}

	f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f, level), f.Close, nil
}

