package stream

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/magi42/solarvibe"
	"golang.org/x/time/rate"
)

func newTestServer(t *testing.T, cfg solarvibe.StreamConfig) (*Server, *websocket.Conn, context.CancelFunc, chan error) {
	t.Helper()
	e := solarvibe.NewEngine(solarvibe.SolarSystem(), solarvibe.DefaultScaleConfig())
	c := solarvibe.NewClock(solarvibe.DefaultConfig().Clock, nil)
	s := NewServer(e, c, cfg, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http"), nil)
	if err != nil {
		cancel()
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })
	return s, conn, cancel, done
}

func testStreamConfig() solarvibe.StreamConfig {
	cfg := solarvibe.DefaultConfig().Stream
	cfg.FramesPerSecond = 100
	// Unlimited commands; TestServerRateLimit covers the limiter.
	cfg.CommandRate = 0
	return cfg
}

// waitFrame reads frames until cond holds.
func waitFrame(t *testing.T, conn *websocket.Conn, cond func(Frame) bool) Frame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		var f Frame
		if err := conn.ReadJSON(&f); err != nil {
			t.Fatalf("no matching frame: %s", err)
		}
		if cond(f) {
			return f
		}
	}
}

func send(t *testing.T, conn *websocket.Conn, cmd Command) {
	t.Helper()
	if err := conn.WriteJSON(cmd); err != nil {
		t.Fatal(err)
	}
}

func TestServer(t *testing.T) {
	s, conn, cancel, done := newTestServer(t, testStreamConfig())
	defer cancel()

	f := waitFrame(t, conn, func(Frame) bool { return true })
	if len(f.Bodies) != 31 || f.Bodies[0].ID != "sun" || f.Multiplier != 1 || f.Paused {
		t.Fatalf("unexpected first frame: %d bodies, ×%f, paused %t", len(f.Bodies), f.Multiplier, f.Paused)
	}
	if f.JulianDay < 2451545 {
		t.Fatalf("unexpected julian day %f", f.JulianDay)
	}
	if s.Clients() != 1 {
		t.Fatalf("expected one client, got %d", s.Clients())
	}

	send(t, conn, Command{Action: "pause"})
	paused := waitFrame(t, conn, func(f Frame) bool { return f.Paused }).Instant
	send(t, conn, Command{Action: "jump", Seconds: 3600})
	f = waitFrame(t, conn, func(f Frame) bool { return !f.Instant.Equal(paused) })
	if !f.Instant.Equal(paused.Add(time.Hour)) {
		t.Fatalf("jumped to %s, expected %s", f.Instant, paused.Add(time.Hour))
	}
	send(t, conn, Command{Action: "key", Key: "d"})
	f = waitFrame(t, conn, func(f Frame) bool { return !f.Instant.Equal(paused.Add(time.Hour)) })
	if !f.Instant.Equal(paused.Add(-23 * time.Hour)) {
		t.Fatalf("key jump to %s", f.Instant)
	}
	at := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	send(t, conn, Command{Action: "set", At: &at})
	f = waitFrame(t, conn, func(f Frame) bool { return f.Instant.Equal(at) })
	if f.JulianDay != 2462502.5 {
		t.Fatalf("unexpected julian day %f", f.JulianDay)
	}
	send(t, conn, Command{Action: "faster"})
	waitFrame(t, conn, func(f Frame) bool { return f.Multiplier == 3 })
	send(t, conn, Command{Action: "speed", Step: 4})
	waitFrame(t, conn, func(f Frame) bool { return f.Multiplier == 100 })

	// Invalid commands are ignored.
	if err := conn.WriteMessage(websocket.TextMessage, []byte("{")); err != nil {
		t.Fatal(err)
	}
	send(t, conn, Command{Action: "rewind"})
	send(t, conn, Command{Action: "play"})
	waitFrame(t, conn, func(f Frame) bool { return !f.Paused })

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("unexpected run error %v", err)
	}
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				t.Fatalf("expected a normal closure, got %v", err)
			}
			break
		}
	}
}

func TestServerRateLimit(t *testing.T) {
	cfg := testStreamConfig()
	cfg.CommandRate = 0.001
	cfg.CommandBurst = 1
	_, conn, cancel, _ := newTestServer(t, cfg)
	defer cancel()

	send(t, conn, Command{Action: "faster"})
	send(t, conn, Command{Action: "faster"})
	waitFrame(t, conn, func(f Frame) bool { return f.Multiplier == 3 })
	for range 20 {
		if f := waitFrame(t, conn, func(Frame) bool { return true }); f.Multiplier != 3 {
			t.Fatalf("rate limited command applied: ×%f", f.Multiplier)
		}
	}
}

func TestApply(t *testing.T) {
	e := solarvibe.NewEngine(solarvibe.SolarSystem(), solarvibe.DefaultScaleConfig())
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	c := solarvibe.NewClock(solarvibe.DefaultConfig().Clock, func() time.Time { return start })
	s := NewServer(e, c, solarvibe.StreamConfig{}, nil)
	if s.interval != time.Second/30 || s.burst != 1 || s.limit != rate.Inf {
		t.Fatalf("unexpected defaults %s %d %f", s.interval, s.burst, s.limit)
	}
	for _, cmd := range []Command{
		{Action: "jump", Seconds: -86400},
		{Action: "key", Key: "Y"},
		{Action: "pause"},
		{Action: "slower"},
	} {
		if err := s.apply(cmd); err != nil {
			t.Fatalf("%s: %s", cmd.Action, err)
		}
	}
	if !c.Paused() || !c.Instant().Equal(start.Add(-24*time.Hour).Add(time.Duration(solarvibe.YearSeconds)*time.Second)) {
		t.Fatalf("unexpected clock state %s", c.Instant())
	}
	if err := s.apply(Command{Action: "now"}); err != nil || !c.Instant().Equal(start) {
		t.Fatalf("now did not snap back: %s (%v)", c.Instant(), err)
	}
	for _, cmd := range []Command{{Action: "key", Key: "q"}, {Action: "key", Key: "DD"}} {
		if err := s.apply(cmd); !errors.Is(err, ErrUnboundKey) {
			t.Fatalf("%q: expected ErrUnboundKey, got %v", cmd.Key, err)
		}
	}
	for _, cmd := range []Command{{Action: "set"}, {Action: "warp"}} {
		if err := s.apply(cmd); !errors.Is(err, ErrUnknownAction) {
			t.Fatalf("%s: expected ErrUnknownAction, got %v", cmd.Action, err)
		}
	}
}
