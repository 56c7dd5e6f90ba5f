package websocket

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/airhockey/internal/entity"
)

const (
	clientBuffer = 32
	writeTimeout = 2 * time.Second
)

// Server broadcasts the game to read-only spectators.
// Broadcasting never blocks the game: a client whose buffer is full is dropped.
type Server struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan Message
}

func New(logger *slog.Logger) *Server {
	return &Server{
		logger: logger.With("component", "spectator"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// ServeHTTP - upgrades the request and streams messages until the spectator leaves.
func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan Message, clientBuffer)}
	that.add(c)

	log.Info("spectator connected", "remote", r.RemoteAddr)

	go that.readPump(c)
	that.writePump(c)
}

// writePump - the only writer of the connection.
func (that *Server) writePump(c *client) {
	defer that.remove(c)

	for msg := range c.send {
		if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
			return
		}

		if err := c.conn.WriteJSON(msg); err != nil {
			that.logger.Error("failed to write to spectator", "error", err)
			return
		}
	}
}

// readPump - discards anything a spectator sends and notices when it disconnects.
func (that *Server) readPump(c *client) {
	defer that.remove(c)

	for {
		if _, _, err := c.conn.NextReader(); err != nil {
			return
		}
	}
}

func (that *Server) RenderFrame(frame entity.Frame) {
	that.broadcast(Message{Type: TypeFrame, Frame: &frame})
}

func (that *Server) RenderMenu(menu entity.Menu) {
	that.broadcast(Message{Type: TypeMenu, Menu: &menu})
}

func (that *Server) PlayTone(tone entity.Tone) {
	that.broadcast(Message{Type: TypeTone, Tone: &tone})
}

func (that *Server) broadcast(msg Message) {
	that.mu.RLock()
	var slow []*client
	for c := range that.clients {
		select {
		case c.send <- msg:
		default:
			slow = append(slow, c)
		}
	}
	that.mu.RUnlock()

	for _, c := range slow {
		that.logger.Info("dropping slow spectator")
		that.remove(c)
	}
}

// ClientCount - returns the number of connected spectators.
func (that *Server) ClientCount() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.clients)
}

// Close - disconnects every spectator.
func (that *Server) Close() {
	that.mu.RLock()
	clients := make([]*client, 0, len(that.clients))
	for c := range that.clients {
		clients = append(clients, c)
	}
	that.mu.RUnlock()

	for _, c := range clients {
		that.remove(c)
	}
}

func (that *Server) add(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.clients[c] = struct{}{}
}

// remove - unregisters the client once; later calls are no-ops.
func (that *Server) remove(c *client) {
	that.mu.Lock()
	_, ok := that.clients[c]
	delete(that.clients, c)
	that.mu.Unlock()

	if !ok {
		return
	}

	close(c.send)
	_ = c.conn.Close()
}
