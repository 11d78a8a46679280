package websocket

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/rocketscienceinc/hexstorm-backend/internal/entity"
	"github.com/rocketscienceinc/hexstorm-backend/internal/usecase"
)

type session interface {
	Connect(client usecase.Client) (entity.Slot, error)
	Move(clientID string, color entity.Color) error
	Disconnect(clientID string)
}

type Config struct {
	SendBuffer        int
	MessagesPerSecond float64
	Burst             int
}

type Server struct {
	logger   *slog.Logger
	session  session
	conf     Config
	upgrader websocket.Upgrader

	handlers map[string]func(client *Client, message *Message) error

	mu       sync.Mutex
	clients  map[string]*Client
	shutdown bool
}

func New(logger *slog.Logger, session session, conf Config) *Server {
	if conf.SendBuffer <= 0 {
		conf.SendBuffer = 16
	}

	if conf.MessagesPerSecond <= 0 {
		conf.MessagesPerSecond = 10
	}

	if conf.Burst <= 0 {
		conf.Burst = 20
	}

	server := &Server{
		logger:  logger.With("component", "websocket"),
		session: session,
		conf:    conf,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},

		handlers: make(map[string]func(*Client, *Message) error),
		clients:  make(map[string]*Client),
	}

	server.handlers[ActionPlayerMove] = server.handlePlayerMove

	return server
}

// ServeHTTP upgrades the request and keeps the client attached to the session until it leaves.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Warn("failed to upgrade connection", "error", err)
		return
	}

	client := newClient(that.logger, uuid.NewString(), conn, that.conf.SendBuffer)
	log = log.With("clientID", client.ID())

	if !that.track(client) {
		log.Info("server is shutting down, closing connection")
		client.Close()
		return
	}
	defer that.untrack(client)

	go client.writePump()

	slot, err := that.session.Connect(client)
	if err != nil {
		log.Info("failed to attach connection", "error", err)
		client.Close()
		return
	}
	log.Info("WebSocket connection established", "slot", slot)

	that.readPump(client)

	that.session.Disconnect(client.ID())
	client.Close()

	log.Info("WebSocket connection closed")
}

// readPump dispatches inbound messages until the connection fails. Bad input is logged and skipped.
func (that *Server) readPump(client *Client) {
	log := that.logger.With("method", "readPump", "clientID", client.ID())

	conn := client.conn
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	limiter := rate.NewLimiter(rate.Limit(that.conf.MessagesPerSecond), that.conf.Burst)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("unexpected close", "error", err)
			}
			return
		}

		if !limiter.Allow() {
			log.Debug("message dropped by rate limit")
			continue
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Debug("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Debug("unknown action", "action", message.Action)
			continue
		}

		if err = handler(client, &message); err != nil {
			log.Debug("message rejected", "action", message.Action, "error", err)
		}
	}
}

// Shutdown closes every live connection and refuses new ones. http.Server.Shutdown leaves hijacked connections open.
func (that *Server) Shutdown() {
	that.mu.Lock()
	that.shutdown = true
	clients := make([]*Client, 0, len(that.clients))
	for _, client := range that.clients {
		clients = append(clients, client)
	}
	that.mu.Unlock()

	for _, client := range clients {
		client.Close()
	}

	that.logger.Info("WebSocket connections closed", "count", len(clients))
}

func (that *Server) track(client *Client) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.shutdown {
		return false
	}

	that.clients[client.ID()] = client

	return true
}

func (that *Server) untrack(client *Client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.clients, client.ID())
}
