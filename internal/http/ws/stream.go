// Package ws streams session snapshots to the browser over a WebSocket.
//
// On connect the client receives the current snapshot, then one message
// per change. A slow client never blocks the store: the listener only
// records the newest change, and the writer skips any version older than
// what it already sent.
package ws

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/aanand-mishra/careerpath/internal/session"
	"github.com/aanand-mishra/careerpath/internal/types"
)

const writeWait = 10 * time.Second

// Message is one frame sent to the client.
type Message struct {
	Op      string        `json:"op,omitempty"`
	Version uint64        `json:"version"`
	Session types.Session `json:"session"`
}

// Stream upgrades requests to WebSocket connections bound to the
// session store on the request context.
type Stream struct {
	upgrader websocket.Upgrader
}

// New returns a Stream. allowedOrigin, when set, is the only Origin
// accepted on the upgrade request.
func New(allowedOrigin string) *Stream {
	return &Stream{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowedOrigin == "" || origin == "" || origin == allowedOrigin
			},
		},
	}
}

// latest keeps only the newest change offered to it.
type latest struct {
	mu    sync.Mutex
	c     session.Change
	ready chan struct{}
}

func newLatest() *latest {
	return &latest{ready: make(chan struct{}, 1)}
}

func (l *latest) offer(c session.Change) {
	l.mu.Lock()
	if c.Version <= l.c.Version {
		l.mu.Unlock()
		return
	}
	l.c = c
	l.mu.Unlock()

	select {
	case l.ready <- struct{}{}:
	default:
	}
}

func (l *latest) take() session.Change {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c
}

// Handle serves GET /session/ws.
func (s *Stream) Handle(w http.ResponseWriter, r *http.Request) {
	store := session.MustFromContext(r.Context())

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()
	// Clear the read deadline the HTTP server set for the upgrade request.
	_ = conn.SetReadDeadline(time.Time{})

	pending := newLatest()
	unsubscribe := store.Subscribe(pending.offer)
	defer unsubscribe()

	// Subscribing first means no change between here and the first frame
	// can be missed.
	current := store.Current()
	if err := write(conn, current); err != nil {
		return
	}
	sent := current.Version

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	slog.Debug("websocket connected")
	for {
		select {
		case <-done:
			slog.Debug("websocket disconnected")
			return
		case <-pending.ready:
			c := pending.take()
			if c.Version <= sent {
				continue
			}
			if err := write(conn, c); err != nil {
				slog.Debug("websocket write failed", slog.String("error", err.Error()))
				return
			}
			sent = c.Version
		}
	}
}

func write(conn *websocket.Conn, c session.Change) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(Message{Op: c.Op, Version: c.Version, Session: c.Session})
}
