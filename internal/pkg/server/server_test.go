package server

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ecotrack/internal/pkg/logger"
	"github.com/piresc/ecotrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestShutdownManager_ClosesInReverseOrder(t *testing.T) {
	var buf bytes.Buffer
	sm := NewShutdownManager(logger.NewWriterLogger(&buf, zapcore.DebugLevel))

	var order []string
	sm.Register("postgres", func(ctx context.Context) error {
		order = append(order, "postgres")
		return nil
	})
	sm.Register("redis", func(ctx context.Context) error {
		order = append(order, "redis")
		return errors.New("already closed")
	})
	sm.Register("nats", func(ctx context.Context) error {
		order = append(order, "nats")
		return nil
	})

	sm.Shutdown(context.Background())

	assert.Equal(t, []string{"nats", "redis", "postgres"}, order)
	assert.Contains(t, buf.String(), `"component":"redis"`)
	assert.Contains(t, buf.String(), "already closed")
}

func TestNewGracefulServer_AppliesConfig(t *testing.T) {
	e := echo.New()
	srv := NewGracefulServer(e, logger.NewWriterLogger(&bytes.Buffer{}, zapcore.InfoLevel), models.ServerConfig{
		Host:         "127.0.0.1",
		Port:         9990,
		ReadTimeout:  5,
		WriteTimeout: 7,
	}, nil)

	assert.Equal(t, "127.0.0.1:9990", srv.addr)
	assert.Equal(t, defaultShutdownTimeout, srv.timeout)
	assert.Equal(t, 5*time.Second, e.Server.ReadTimeout)
	assert.Equal(t, 7*time.Second, e.Server.WriteTimeout)
}

func TestGracefulServer_ServeStopsOnContextCancel(t *testing.T) {
	zl := logger.NewWriterLogger(&bytes.Buffer{}, zapcore.InfoLevel)
	sm := NewShutdownManager(zl)

	closed := make(chan struct{})
	sm.Register("postgres", func(ctx context.Context) error {
		close(closed)
		return nil
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	srv := NewGracefulServer(e, zl, models.ServerConfig{Host: "127.0.0.1", Port: 0, ShutdownTimeout: 2}, sm)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, 2*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	<-closed
}

func TestGracefulServer_ServeReturnsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	zl := logger.NewWriterLogger(&bytes.Buffer{}, zapcore.InfoLevel)
	srv := NewGracefulServer(e, zl, models.ServerConfig{Host: "127.0.0.1", Port: port, ShutdownTimeout: 1}, NewShutdownManager(zl))

	err = srv.Serve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start server")
}
