// Command parley is a terminal client for the company chatbot backend.
//
// Usage:
//
//	parley [flags]
//
// Flags:
//
//	-server string   Backend base URL (default http://localhost:8000, or PARLEY_SERVER)
//	-state string    Path to the session state file (default ~/.parley/session)
//	-log string      Path to a debug log file (default: logging disabled)
//	-timeout duration  HTTP request timeout (default 60s)
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/mpasternak/parley"
	bt "github.com/mpasternak/parley/bubbletea"
	"github.com/mpasternak/parley/httpapi"
	"github.com/mpasternak/parley/identity"
)

const defaultServer = "http://localhost:8000"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "parley: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		server    = flag.String("server", "", "Backend base URL (default $PARLEY_SERVER or "+defaultServer+")")
		statePath = flag.String("state", identity.DefaultPath(), "Path to the session state file")
		logPath   = flag.String("log", "", "Path to a debug log file")
		timeout   = flag.Duration("timeout", 60*time.Second, "HTTP request timeout")
	)
	flag.Parse()

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger, closeLog, err := newLogger(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	serverURL := resolveServer(*server, os.Getenv("PARLEY_SERVER"))
	service := httpapi.New(serverURL,
		httpapi.WithHTTPClient(&http.Client{Timeout: *timeout}))
	id := identity.NewFile(*statePath)
	store := parley.NewStore()
	engine := parley.NewEngine(service, id, store, parley.WithLogger(logger))

	sess := id.Session()
	logger.Info("client starting", "session", sess.ID, "created", sess.CreatedAt)

	config := bt.Config{
		ServerURL: serverURL,
		SessionID: sess.ID,
	}
	model := bt.New(engine, service, parley.DefaultTheme(), config)

	if err := bt.Run(ctx, model); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}

// resolveServer picks the backend URL: flag beats env beats default.
func resolveServer(flagValue, envValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue != "" {
		return envValue
	}
	return defaultServer
}

// newLogger builds the debug logger. The TUI owns the terminal, so logging
// goes to a file when requested and is discarded otherwise.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, nil))
	return logger, func() { f.Close() }, nil
}
