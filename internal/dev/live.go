package dev

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vango-dev/vstyle/pkg/style"
)

// FrameType identifies a live style frame.
type FrameType string

const (
	// FrameSnapshot carries every rule in the sheet; it is the first frame
	// a client receives.
	FrameSnapshot FrameType = "snapshot"

	// FrameRules carries rules inserted since the previous frame.
	FrameRules FrameType = "rules"
)

// Frame is sent to live style clients. Frames are msgpack encoded binary
// messages unless the client connected with ?format=json.
type Frame struct {
	Type  FrameType   `msgpack:"type" json:"type"`
	Rules []FrameRule `msgpack:"rules" json:"rules"`
}

// FrameRule is one compiled class and its rule text.
type FrameRule struct {
	Class string `msgpack:"class" json:"class"`
	CSS   string `msgpack:"css" json:"css"`
}

func frameRules(rules ...style.Rule) []FrameRule {
	out := make([]FrameRule, len(rules))
	for i, r := range rules {
		out[i] = FrameRule{Class: string(r.Class), CSS: r.CSS}
	}
	return out
}

// LiveObserver receives live stream events. *middleware.Metrics implements
// it.
type LiveObserver interface {
	LiveClientConnected()
	LiveClientDisconnected()
	FrameSent()
}

// Live client limits.
const (
	liveQueueSize    = 64
	liveWriteTimeout = 10 * time.Second
)

// liveClient owns one connection. Frames are queued by Broadcast and
// written by a single writer goroutine, so a stalled browser never blocks
// the goroutine compiling styles.
type liveClient struct {
	conn  *websocket.Conn
	json  bool
	queue chan Frame
	done  chan struct{}
}

func newLiveClient(conn *websocket.Conn, json bool) *liveClient {
	return &liveClient{
		conn:  conn,
		json:  json,
		queue: make(chan Frame, liveQueueSize),
		done:  make(chan struct{}),
	}
}

// enqueue reports false when the client's queue is full.
func (c *liveClient) enqueue(f Frame) bool {
	select {
	case c.queue <- f:
		return true
	default:
		return false
	}
}

func (c *liveClient) write(f Frame, timeout time.Duration) error {
	var (
		data []byte
		kind int
		err  error
	)
	if c.json {
		data, err = json.Marshal(f)
		kind = websocket.TextMessage
	} else {
		data, err = msgpack.Marshal(f)
		kind = websocket.BinaryMessage
	}
	if err != nil {
		return err
	}
	c.conn.SetWriteDeadline(time.Now().Add(timeout))
	return c.conn.WriteMessage(kind, data)
}

// LiveStream pushes compiled rules to connected browsers over WebSocket.
type LiveStream struct {
	sheet    *style.Sheet
	observer LiveObserver
	logger   *slog.Logger
	clients  map[*liveClient]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	cancel   func()

	// writeTimeout bounds a single frame write.
	writeTimeout time.Duration
}

// NewLiveStream creates a stream for sheet and subscribes to its inserts.
// observer may be nil.
func NewLiveStream(sheet *style.Sheet, observer LiveObserver, logger *slog.Logger) *LiveStream {
	if logger == nil {
		logger = slog.Default()
	}
	l := &LiveStream{
		sheet:        sheet,
		observer:     observer,
		logger:       logger,
		clients:      make(map[*liveClient]bool),
		writeTimeout: liveWriteTimeout,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins in dev
			},
		},
	}
	l.cancel = sheet.Subscribe(func(rule style.Rule) {
		l.Broadcast(Frame{Type: FrameRules, Rules: frameRules(rule)})
	})
	return l
}

// HandleWebSocket upgrades the connection, sends a snapshot of the sheet and
// keeps the client registered until it disconnects.
func (l *LiveStream) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := l.upgrader.Upgrade(w, req, nil)
	if err != nil {
		l.logger.Warn("live upgrade failed", "error", err)
		return
	}
	client := newLiveClient(conn, req.URL.Query().Get("format") == "json")

	// Registered before the snapshot so no insert falls between the two.
	// Clients ignore classes they already have.
	l.mu.Lock()
	l.clients[client] = true
	l.mu.Unlock()
	if l.observer != nil {
		l.observer.LiveClientConnected()
	}
	l.logger.Info("live client connected", "remote", req.RemoteAddr, "json", client.json)

	client.enqueue(Frame{Type: FrameSnapshot, Rules: frameRules(l.sheet.Rules()...)})
	go l.writeLoop(client)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	l.drop(client)
}

// Broadcast queues f for every connected client without waiting for the
// network. A client whose queue is full is disconnected.
func (l *LiveStream) Broadcast(f Frame) {
	l.mu.RLock()
	clients := make([]*liveClient, 0, len(l.clients))
	for client := range l.clients {
		clients = append(clients, client)
	}
	l.mu.RUnlock()

	for _, client := range clients {
		if !client.enqueue(f) {
			l.logger.Warn("live client too slow, dropping", "remote", client.conn.RemoteAddr().String())
			l.drop(client)
		}
	}
}

// writeLoop writes queued frames until the client is dropped or a write
// fails.
func (l *LiveStream) writeLoop(client *liveClient) {
	for {
		select {
		case <-client.done:
			return
		case f := <-client.queue:
			if err := client.write(f, l.writeTimeout); err != nil {
				l.drop(client)
				return
			}
			if l.observer != nil {
				l.observer.FrameSent()
			}
		}
	}
}

// drop unregisters client once.
func (l *LiveStream) drop(client *liveClient) {
	l.mu.Lock()
	_, ok := l.clients[client]
	delete(l.clients, client)
	l.mu.Unlock()
	if !ok {
		return
	}
	close(client.done)
	client.conn.Close()
	if l.observer != nil {
		l.observer.LiveClientDisconnected()
	}
	l.logger.Info("live client disconnected", "remote", client.conn.RemoteAddr().String())
}

// ClientCount returns the number of connected clients.
func (l *LiveStream) ClientCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.clients)
}

// Close unsubscribes from the sheet and closes all client connections.
func (l *LiveStream) Close() {
	l.cancel()

	l.mu.RLock()
	clients := make([]*liveClient, 0, len(l.clients))
	for client := range l.clients {
		clients = append(clients, client)
	}
	l.mu.RUnlock()

	for _, client := range clients {
		l.drop(client)
	}
}
