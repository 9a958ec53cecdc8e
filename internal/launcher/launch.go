// Package launcher performs startup and shutdown around one interactive session
package launcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/genovar/internal/app"
	"github.com/thenoetrevino/genovar/internal/cli"
	"github.com/thenoetrevino/genovar/internal/cli/styles"
	"github.com/thenoetrevino/genovar/internal/config"
	"github.com/thenoetrevino/genovar/internal/database"
	"github.com/thenoetrevino/genovar/internal/logging"
)

// Launch loads configuration, opens and provisions the database, and runs
// the menu session over in and out. Any returned error is a startup or
// input failure; the database handle is closed on every path.
func Launch(ctx context.Context, in io.Reader, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logging to file before touching the database
	logFile, err := logging.Init(cfg.Level())
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing log file: %v\n", err)
		}
	}()

	styles.Init(cfg.ColorScheme)

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := database.InitDB(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// database cleanup
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	application := app.New(db,
		app.WithLogger(logging.Logger),
		app.WithRejectDuplicateLinks(cfg.Links.RejectDuplicates),
	)
	metrics := cli.NewMetrics()
	session := cli.NewSession(application, in, out, cli.WithMetrics(metrics))

	// goroutine so a signal can end a session blocked on input
	errChan := make(chan error, 1)
	go func() {
		errChan <- session.Run(ctx)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("session failed: %w", err)
		}
	case <-ctx.Done():
		// The session never reached its goodbye, so record its counters here
		snap := metrics.GetSnapshot()
		slog.Info("session interrupted, closing database",
			"succeeded", snap.Succeeded,
			"failed", snap.Failed,
			"uptime", snap.Uptime.String(),
		)
		fmt.Fprintln(out)
	}

	return nil
}
