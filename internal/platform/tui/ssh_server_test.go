package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// countingStore is a HighScoreStore that counts writes.
type countingStore struct {
	high   int
	writes int
}

func (c *countingStore) HighScore() (int, error) {
	return c.high, nil
}

func (c *countingStore) SetHighScoreIfGreater(score int) error {
	c.writes++
	c.high = max(c.high, score)
	return nil
}

// stubContext keeps context values in a map; other methods are not used.
type stubContext struct {
	ssh.Context
	values map[any]any
}

func (c *stubContext) SetValue(key, value any) {
	c.values[key] = value
}

func (c *stubContext) Value(key any) any {
	return c.values[key]
}

// stubSession carries only a context.
type stubSession struct {
	ssh.Session
	ctx *stubContext
}

func (s stubSession) Context() ssh.Context {
	return s.ctx
}

func newStubSession() stubSession {
	return stubSession{ctx: &stubContext{values: map[any]any{}}}
}

func TestFlushMiddlewareClosesSession(t *testing.T) {
	srv := &SSHServer{logger: log.New(io.Discard)}
	store := &countingStore{high: 4}
	game := flappy.NewSession(config.DefaultFlappyConfig(), flappy.Options{Seed: 1, Store: store})

	var writesDuringProgram int
	next := func(sess ssh.Session) {
		sess.Context().SetValue(sessionKey{}, game)
		writesDuringProgram = store.writes
	}

	srv.flushMiddleware(next)(newStubSession())

	if writesDuringProgram != 0 {
		t.Errorf("store written %d times before the program exited", writesDuringProgram)
	}
	if store.writes != 1 {
		t.Errorf("store written %d times after the program exited, expected 1", store.writes)
	}
}

func TestFlushMiddlewareWithoutSession(t *testing.T) {
	srv := &SSHServer{logger: log.New(io.Discard)}
	called := false
	next := func(ssh.Session) { called = true }

	srv.flushMiddleware(next)(newStubSession())

	if !called {
		t.Error("next handler not called")
	}
}

func TestSSHServerAddr(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:2222"
	srv := &SSHServer{config: cfg}
	if srv.Addr() != "127.0.0.1:2222" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
}
