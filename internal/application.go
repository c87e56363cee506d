package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-cli/transport/console"
)

// RunApp - runs the application on the process's standard streams.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(context.Background(), logger, conf, os.Stdin, os.Stdout)
}

// Run - plays one session on the given streams until it ends or a signal arrives.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
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

	botService := service.NewBotService(logger)
	gameUseCase := usecase.NewGameUseCase(logger, botService)
	shell := console.New(logger, gameUseCase, in, out)

	if conf.SelfPlay {
		log.Info("Starting self-play")
		if _, err := shell.SelfPlay(ctx); err != nil {
			return fmt.Errorf("self-play failed: %w", err)
		}
		return nil
	}

	humanMark, botMark, err := conf.Marks()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log.Info("Starting game", "human", humanMark.String(), "bot", botMark.String())

	if _, err = shell.Play(ctx, botMark); err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}

	return nil
}
