// Package stream serves the per frame state of an engine to renderers over
// websockets, and takes the time controls back from them.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gorilla/websocket"
	"github.com/magi42/solarvibe"
	"golang.org/x/time/rate"
)

const (
	writeWait  = 5 * time.Second
	sendBuffer = 4
)

var (
	// ErrUnknownAction is returned for a command which is not understood.
	ErrUnknownAction = errors.New("unknown action")
	// ErrUnboundKey is returned for a key command with no binding.
	ErrUnboundKey = errors.New("unbound key")
)

// Command is a control message sent by a renderer.
type Command struct {
	Action  string     `json:"action"` // play, pause, now, faster, slower, speed, jump, key or set
	Seconds float64    `json:"seconds,omitempty"`
	Step    int        `json:"step,omitempty"`
	Key     string     `json:"key,omitempty"`
	At      *time.Time `json:"at,omitempty"`
}

// Frame is the message broadcast after every update.
type Frame struct {
	solarvibe.Snapshot
	Paused     bool    `json:"paused"`
	Multiplier float64 `json:"multiplier"`
}

type client struct {
	conn    *websocket.Conn
	send    chan []byte
	limiter *rate.Limiter
	remote  string
}

// Server drives an engine from a clock and broadcasts the frames to every
// connected websocket. The engine and the clock are only touched by Run.
type Server struct {
	engine   *solarvibe.Engine
	clock    *solarvibe.Clock
	interval time.Duration
	limit    rate.Limit
	burst    int
	logger   kitlog.Logger
	upgrader websocket.Upgrader
	commands chan Command
	done     chan struct{}
	stop     sync.Once

	mu      sync.Mutex
	clients map[*client]struct{}
}

// NewServer returns a server for the provided engine and clock.
func NewServer(e *solarvibe.Engine, c *solarvibe.Clock, cfg solarvibe.StreamConfig, logger kitlog.Logger) *Server {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	fps := cfg.FramesPerSecond
	if fps <= 0 {
		fps = solarvibe.DefaultConfig().Stream.FramesPerSecond
	}
	limit := rate.Limit(cfg.CommandRate)
	if cfg.CommandRate <= 0 {
		limit = rate.Inf
	}
	return &Server{
		engine:   e,
		clock:    c,
		interval: time.Duration(float64(time.Second) / fps),
		limit:    limit,
		burst:    max(cfg.CommandBurst, 1),
		logger:   kitlog.With(logger, "subsys", "stream"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		commands: make(chan Command),
		done:     make(chan struct{}),
		clients:  make(map[*client]struct{}),
	}
}

// ServeHTTP upgrades the request to a websocket and serves it until either
// side closes it.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		level.Warn(s.logger).Log("msg", "upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	c := &client{
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		limiter: rate.NewLimiter(s.limit, s.burst),
		remote:  r.RemoteAddr,
	}
	if !s.register(c) {
		conn.Close()
		return
	}
	level.Info(s.logger).Log("msg", "connected", "remote", c.remote)
	go s.write(c)
	s.read(c)
	s.unregister(c)
	level.Info(s.logger).Log("msg", "disconnected", "remote", c.remote)
}

// Clients returns the number of connected websockets.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Run updates the engine at the configured frame rate and applies the
// commands until the context is done. Every client is disconnected on return.
func (s *Server) Run(ctx context.Context) error {
	defer s.shutdown()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	last := time.Now()
	s.frame(0)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-s.commands:
			if err := s.apply(cmd); err != nil {
				level.Warn(s.logger).Log("msg", "command rejected", "action", cmd.Action, "err", err)
			}
		case now := <-ticker.C:
			s.frame(now.Sub(last))
			last = now
		}
	}
}

func (s *Server) frame(wall time.Duration) {
	now, delta := s.clock.Tick(wall)
	s.engine.Update(now, delta)
	msg, err := json.Marshal(Frame{
		Snapshot:   s.engine.Snapshot(),
		Paused:     s.clock.Paused(),
		Multiplier: s.clock.Multiplier(),
	})
	if err != nil {
		level.Error(s.logger).Log("msg", "could not encode frame", "err", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		select {
		case c.send <- msg:
		default:
			// Slow renderers skip frames.
		}
	}
}

func (s *Server) apply(cmd Command) error {
	switch cmd.Action {
	case "play":
		s.clock.Play()
	case "pause":
		s.clock.Pause()
	case "now":
		s.clock.Now()
	case "faster":
		s.clock.Faster()
	case "slower":
		s.clock.Slower()
	case "speed":
		s.clock.SetStep(cmd.Step)
	case "jump":
		s.clock.Jump(cmd.Seconds)
	case "key":
		keys := []rune(cmd.Key)
		if len(keys) != 1 || !s.clock.HandleKey(keys[0]) {
			return fmt.Errorf("%w: %q", ErrUnboundKey, cmd.Key)
		}
	case "set":
		if cmd.At == nil {
			return fmt.Errorf("%w: set without an instant", ErrUnknownAction)
		}
		s.clock.Set(*cmd.At)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}
	level.Debug(s.logger).Log("msg", "command", "action", cmd.Action, "instant", s.clock.Instant(), "multiplier", s.clock.Multiplier())
	return nil
}

func (s *Server) register(c *client) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.done:
		return false
	default:
	}
	s.clients[c] = struct{}{}
	return true
}

func (s *Server) unregister(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		close(c.send)
	}
}

func (s *Server) shutdown() {
	s.stop.Do(func() { close(s.done) })
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		delete(s.clients, c)
		close(c.send)
	}
}

// read forwards the commands of the client to Run.
func (s *Server) read(c *client) {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				level.Warn(s.logger).Log("msg", "read failed", "remote", c.remote, "err", err)
			}
			return
		}
		var cmd Command
		if err := json.Unmarshal(data, &cmd); err != nil {
			level.Warn(s.logger).Log("msg", "invalid command", "remote", c.remote, "err", err)
			continue
		}
		if !c.limiter.Allow() {
			level.Warn(s.logger).Log("msg", "command dropped", "remote", c.remote, "action", cmd.Action)
			continue
		}
		select {
		case s.commands <- cmd:
		case <-s.done:
			return
		}
	}
}

// write sends the frames queued for the client, and closes the websocket once
// the queue is closed.
func (s *Server) write(c *client) {
	defer c.conn.Close()
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			level.Warn(s.logger).Log("msg", "write failed", "remote", c.remote, "err", err)
			return
		}
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "shutdown"))
}
