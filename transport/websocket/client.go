package websocket

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/hexstorm-backend/internal/entity"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Client is one websocket connection. Outbound events are queued and written by writePump.
type Client struct {
	id     string
	conn   *websocket.Conn
	logger *slog.Logger

	send      chan entity.Event
	done      chan struct{}
	closeOnce sync.Once
}

func newClient(logger *slog.Logger, id string, conn *websocket.Conn, sendBuffer int) *Client {
	return &Client{
		id:     id,
		conn:   conn,
		logger: logger.With("clientID", id),

		send: make(chan entity.Event, sendBuffer),
		done: make(chan struct{}),
	}
}

func (that *Client) ID() string {
	return that.id
}

// Send queues an event without blocking. A client that cannot keep up is closed.
func (that *Client) Send(event entity.Event) {
	select {
	case <-that.done:
		return
	default:
	}

	select {
	case that.send <- event:
	default:
		that.logger.Warn("send buffer is full, dropping client")
		that.Close()
	}
}

// Close tears down the connection. The read loop then fails and the session is told.
func (that *Client) Close() {
	that.closeOnce.Do(func() {
		close(that.done)
		_ = that.conn.Close()
	})
}

func (that *Client) writePump() {
	log := that.logger.With("method", "writePump")

	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		that.Close()
	}()

	for {
		select {
		case <-that.done:
			return

		case event := <-that.send:
			message, err := encodeEvent(event)
			if err != nil {
				log.Error("failed to encode event", "error", err)
				continue
			}

			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err = that.conn.WriteJSON(message); err != nil {
				log.Debug("failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Debug("failed to write ping", "error", err)
				return
			}
		}
	}
}
