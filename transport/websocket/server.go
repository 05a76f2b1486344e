package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/gobang-backend/internal/entity"
	"github.com/rocketscienceinc/gobang-backend/pkg/handlers"
)

const sessionCookie = "user_session"

type gameDep interface {
	Snapshot() entity.Snapshot
	SubmitMove(index int) error
	Reset()
	StartReplay() error
	StartAIGame() error
}

type Server struct {
	logger   *slog.Logger
	game     gameDep
	hub      *Hub
	upgrader websocket.Upgrader

	handlers map[string]func(ctx context.Context, c *client, message *Message) error
}

func New(logger *slog.Logger, game gameDep, hub *Hub) *Server {
	server := &Server{
		logger: logger.With("component", "ws_server"),
		game:   game,
		hub:    hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},

		handlers: make(map[string]func(context.Context, *client, *Message) error),
	}

	server.handlers[actionCellSelect] = server.handleCellSelect
	server.handlers[actionGameReset] = server.handleReset
	server.handlers[actionGameReplay] = server.handleReplay
	server.handlers[actionGameAI] = server.handleAIGame

	return server
}

// Handler - routes of the WebSocket server.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", handlers.PingHandler)
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server and shuts it down when ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(ctx),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
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

// upgradeToWebSocket - upgrades the connection and serves the client until it disconnects.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	session, header := that.sessionCookie(req)

	conn, err := that.upgrader.Upgrade(writer, req, header)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := newClient(session, conn)
	that.hub.register(c)
	go c.writePump()

	log.Info("WebSocket connection established", "session", session)

	that.sendState(c)
	that.handleMessages(ctx, c)

	that.hub.unregister(c)
	log.Info("WebSocket connection closed", "session", session)
}

// handleMessages - processes messages from the client until the connection fails.
func (that *Server) handleMessages(ctx context.Context, c *client) {
	log := that.logger.With("method", "handleMessages", "session", c.session)

	c.prepareRead()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			that.sendError(c, "", "invalid message")
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)
			that.sendError(c, message.Action, "unknown action")
			continue
		}

		if err = handler(ctx, c, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

// sessionCookie - reuses the client's session id or issues a new one in the handshake response.
func (that *Server) sessionCookie(req *http.Request) (string, http.Header) {
	log := that.logger.With("method", "sessionCookie")

	if cookie, err := req.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		log.Debug("session cookie found", "cookie", cookie.Value)
		return cookie.Value, nil
	}

	cookie := &http.Cookie{
		Name:    sessionCookie,
		Value:   uuid.NewString(),
		Expires: time.Now().Add(24 * time.Hour),
		Path:    "/ws",
	}

	header := http.Header{}
	header.Add("Set-Cookie", cookie.String())

	log.Debug("session cookie not found, new one created", "cookie", cookie.Value)

	return cookie.Value, header
}

func (that *Server) sendState(c *client) {
	data, err := stateMessage(that.game.Snapshot())
	if err != nil {
		that.logger.Error("failed to marshal snapshot", "error", err)
		return
	}

	that.hub.sendTo(c, data)
}

func (that *Server) sendError(c *client, action, reason string) {
	data, err := errorMessage(action, reason)
	if err != nil {
		that.logger.Error("failed to marshal error", "error", err)
		return
	}

	that.hub.sendTo(c, data)
}
