package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/gobang-backend/internal/config"
	"github.com/rocketscienceinc/gobang-backend/internal/entity"
	"github.com/rocketscienceinc/gobang-backend/internal/gobang"
	"github.com/rocketscienceinc/gobang-backend/internal/scheduler"
	"github.com/rocketscienceinc/gobang-backend/internal/transport/redis"
	"github.com/rocketscienceinc/gobang-backend/internal/usecase"
	"github.com/rocketscienceinc/gobang-backend/transport/rest"
	"github.com/rocketscienceinc/gobang-backend/transport/websocket"
)

type notifier interface {
	Notify(snapshot entity.Snapshot)
}

// fanout - passes each snapshot to every sink in order.
type fanout []notifier

func (that fanout) Notify(snapshot entity.Snapshot) {
	for _, n := range that {
		n.Notify(snapshot)
	}
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	queue := scheduler.NewQueue(logger)
	go func() {
		if err := queue.Run(ctx); err != nil {
			log.Error("scheduler error", "error", err)
		}
	}()

	hub := websocket.NewHub(logger)
	go hub.Run(ctx)

	notifiers := fanout{hub}

	if conf.Redis.Enabled {
		publisher, err := redis.New(ctx, logger, conf.Redis.GetRedisAddr(), conf.Redis.Channel)
		if err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}

		defer func() {
			if err = publisher.Close(); err != nil {
				log.Error("could not close redis publisher", "error", err)
			}
		}()

		go func() {
			if err := publisher.Run(ctx); err != nil {
				log.Error("redis publisher error", "error", err)
			}
		}()

		notifiers = append(notifiers, publisher)
		log.Info("Publishing snapshots to redis", "addr", conf.Redis.GetRedisAddr(), "channel", conf.Redis.Channel)
	}

	timings := usecase.Timings{
		AIMoveDelay:    conf.Game.AIMoveDelay,
		ReplayInterval: conf.Game.ReplayInterval,
	}

	gameController := usecase.NewGameController(logger, queue, gobang.NewStrategy(entity.AIPlayer), timings, notifiers)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.New(logger, gameController).Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameController, hub)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err := <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err := <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
