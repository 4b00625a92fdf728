package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/config"
	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/script"
	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/viewmodel"
	"github.com/rocketscienceinc/tictactoe-viewmodel/transport/headless"
	"github.com/rocketscienceinc/tictactoe-viewmodel/transport/terminal"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameUseCase := usecase.NewGameUseCase(logger, viewmodel.WithStateBuffer(conf.StateBuffer))

	return run(ctx, logger, conf, gameUseCase, os.Stdout)
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, gameUseCase usecase.GameUseCase, out io.Writer) error {
	log := logger.With("component", "app")

	switch conf.UI {
	case config.UITerminal:
		defer gameUseCase.Close()

		log.Info("Starting terminal UI")
		if err := terminal.New(logger, gameUseCase).Run(ctx); err != nil {
			return fmt.Errorf("terminal UI error: %w", err)
		}
	case config.UIHeadless:
		events, err := script.Parse(conf.Headless.Events)
		if err != nil {
			return fmt.Errorf("failed to parse headless events: %w", err)
		}

		log.Info("Replaying events", "events", len(events))
		if err = headless.New(logger, gameUseCase, out).Run(ctx, events); err != nil {
			return fmt.Errorf("headless replay error: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownUI, conf.UI)
	}

	log.Info("Application stopped")

	return nil
}
