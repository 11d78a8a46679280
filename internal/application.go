package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/hexstorm-backend/internal/config"
	"github.com/rocketscienceinc/hexstorm-backend/internal/repository"
	"github.com/rocketscienceinc/hexstorm-backend/internal/repository/storage"
	"github.com/rocketscienceinc/hexstorm-backend/internal/usecase"
	"github.com/rocketscienceinc/hexstorm-backend/transport/rest"
	"github.com/rocketscienceinc/hexstorm-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application until a signal arrives or the server fails.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	sessionConf := usecase.SessionConfig{
		Radius:     conf.Game.Radius,
		ResetDelay: conf.Game.ResetDelay,
	}

	var (
		session *usecase.Session
		err     error
	)

	if conf.Redis.Enabled {
		redisAddr := conf.Redis.GetRedisAddr()
		if redisAddr == "" {
			return ErrAddrNotFound
		}

		redisStorage, redisErr := storage.NewRedis(ctx, redisAddr)
		if redisErr != nil {
			return fmt.Errorf("could not connect to redis storage: %w", redisErr)
		}

		defer func() {
			if closeErr := redisStorage.Close(); closeErr != nil {
				log.Error("could not close redis storage", "error", closeErr)
			}
		}()

		log.Info("Match results are stored in redis", "addr", redisAddr)
		session, err = usecase.NewSession(ctx, logger, sessionConf, repository.NewResultRepository(redisStorage))
	} else {
		log.Info("Match results are disabled")
		session, err = usecase.NewSession(ctx, logger, sessionConf, nil)
	}

	if err != nil {
		return fmt.Errorf("could not create session: %w", err)
	}
	defer session.Close()

	wsServer := websocket.New(logger, session, websocket.Config{
		SendBuffer:        conf.WebSocket.SendBuffer,
		MessagesPerSecond: conf.WebSocket.MessagesPerSecond,
		Burst:             conf.WebSocket.Burst,
	})
	// deferred after session.Close, so live connections close first
	defer wsServer.Shutdown()

	router := rest.NewRouter(logger, session, wsServer, conf.StaticDir)

	// run HTTP server, websocket is mounted on /ws
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpErrCh <- rest.Start(ctx, conf.HTTPPort, router, wsServer.Shutdown)
	}()

	select {
	case err = <-httpErrCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		if err = <-httpErrCh; err != nil {
			log.Error("HTTP server shutdown error", "error", err)
		}
		return nil
	}
}
