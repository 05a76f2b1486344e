package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/gobang-backend/internal/entity"
)

type gameDep interface {
	Snapshot() entity.Snapshot
	SubmitMove(index int) error
	Reset()
	StartReplay() error
	StartAIGame() error
}

type Server struct {
	logger *slog.Logger
	router *gin.Engine
}

func New(logger *slog.Logger, game gameDep) *Server {
	gin.SetMode(gin.ReleaseMode)

	log := logger.With("component", "rest")
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))

	h := newHandlers(log, game)

	router.GET("/ping", pingHandler)

	api := router.Group("/api")
	api.GET("/snapshot", h.snapshot)
	api.POST("/cells/:index", h.selectCell)
	api.POST("/reset", h.reset)
	api.POST("/replay", h.replay)
	api.POST("/ai-game", h.aiGame)

	return &Server{
		logger: log,
		router: router,
	}
}

func (that *Server) Handler() http.Handler {
	return that.router
}

// Start - starts HTTP server and shuts it down when ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// requestLogger - one log line per request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Debug("request served",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
