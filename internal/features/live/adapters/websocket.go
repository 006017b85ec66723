package adapters

import (
	"context"
	"fmt"
	"net/http"

	"dockyard/internal/core/logger"
	"dockyard/internal/features/live/ports"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ClientIDHeader identifies this process to the relay during the handshake.
const ClientIDHeader = "X-Client-ID"

// WebSocketDialer dials the relay with gorilla/websocket.
type WebSocketDialer struct {
	dialer   *websocket.Dialer
	clientID string
}

// NewWebSocketDialer creates a dialer with a fresh client id.
func NewWebSocketDialer() *WebSocketDialer {
	return &WebSocketDialer{
		dialer:   websocket.DefaultDialer,
		clientID: uuid.NewString(),
	}
}

// ClientID returns the id sent in the handshake.
func (d *WebSocketDialer) ClientID() string {
	return d.clientID
}

// Dial opens the connection.
func (d *WebSocketDialer) Dial(ctx context.Context, url string) (ports.Conn, error) {
	header := http.Header{}
	header.Set(ClientIDHeader, d.clientID)

	conn, resp, err := d.dialer.DialContext(ctx, url, header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("websocket handshake failed with status %d: %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("websocket dial failed: %w", err)
	}

	logger.Named("live").Info("Connected to relay",
		zap.String("url", url),
		zap.String("client_id", d.clientID),
	)
	return &wsConn{conn: conn}, nil
}

// wsConn sends and receives text frames only.
type wsConn struct {
	conn *websocket.Conn
}

func (c *wsConn) ReadMessage() ([]byte, error) {
	for {
		kind, data, err := c.conn.ReadMessage()
		if err != nil {
			return nil, err
		}
		if kind == websocket.TextMessage {
			return data, nil
		}
	}
}

func (c *wsConn) WriteMessage(data []byte) error {
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}
