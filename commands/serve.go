package commands

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"iconhive/config"
	"iconhive/handlers/apps"
	"iconhive/handlers/proxy"
	"iconhive/middleware"
	"iconhive/realtime"
	v1 "iconhive/routes/v1"
	"iconhive/services"
	"iconhive/telemetry"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const (
	shutdownTimeout       = 10 * time.Second
	systemMetricsInterval = 15 * time.Second
)

// Serve runs the HTTP API until SIGINT or SIGTERM
func Serve(c *cli.Context) error {
	cfg := config.App
	if port := c.String("port"); port != "" {
		cfg.Port = port
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, "iconhive")
	if err != nil {
		log.WithError(err).Warn("Tracing disabled")
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.WithError(err).Warn("Could not flush traces")
		}
	}()

	gin.SetMode(cfg.GinMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := newStack(cfg)
	v1.Register(engine, v1.Handlers{
		Apps:  apps.NewHandler(s.pipeline, services.NewSessionStore(cfg.SessionLimit, cfg.SessionTTL), s.exports, realtime.PublishRunEvent),
		Proxy: proxy.NewHandler(s.proxy),
	})

	middleware.UpdateSystemMetrics(ctx, systemMetricsInterval)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", server.Addr).Info("API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
