package httpserver

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	s := New()
	assert.Equal(t, ":8080", s.cfg.addr)
	assert.Equal(t, 5*time.Second, s.cfg.shutdownTimeout)
	assert.NotNil(t, s.cfg.logger)
}

func TestNew_Options(t *testing.T) {
	t.Parallel()

	s := New(
		WithAddr("127.0.0.1:9999"),
		WithReadTimeout(time.Second),
		WithWriteTimeout(2*time.Second),
		WithIdleTimeout(3*time.Second),
		WithShutdownTimeout(4*time.Second),
	)
	assert.Equal(t, "127.0.0.1:9999", s.cfg.addr)
	assert.Equal(t, time.Second, s.cfg.readTimeout)
	assert.Equal(t, 2*time.Second, s.cfg.writeTimeout)
	assert.Equal(t, 3*time.Second, s.cfg.idleTimeout)
	assert.Equal(t, 4*time.Second, s.cfg.shutdownTimeout)
}

func TestNew_InvalidOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithAddr("") })
	assert.Panics(t, func() { WithReadTimeout(0) })
	assert.Panics(t, func() { WithShutdownTimeout(-time.Second) })
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	s := NewFromConfig(Config{
		Addr:            "127.0.0.1:8888",
		ReadTimeout:     10 * time.Second,
		ShutdownTimeout: time.Second,
	})
	assert.Equal(t, "127.0.0.1:8888", s.cfg.addr)
	assert.Equal(t, 10*time.Second, s.cfg.readTimeout)
	assert.Equal(t, time.Second, s.cfg.shutdownTimeout)
	// Zero values fall back to defaults.
	assert.Equal(t, 30*time.Second, s.cfg.writeTimeout)
}

func TestRun_GracefulShutdown(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	s := New(WithAddr("127.0.0.1:0"), WithShutdownTimeout(time.Second))

	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

func TestRun_StartError(t *testing.T) {
	t.Parallel()

	s := New(WithAddr("127.0.0.1:1"), WithShutdownTimeout(time.Second))
	err := s.Run(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStart)
}
