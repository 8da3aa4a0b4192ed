package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/saulo-duarte/interview-questions-lambda/internal/config"
	"github.com/saulo-duarte/interview-questions-lambda/internal/container"
	"github.com/saulo-duarte/interview-questions-lambda/internal/router"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := container.New(ctx)
	if err != nil {
		log.Fatalf("failed to initialise: %v", err)
	}

	srv := &http.Server{
		Addr: c.Config.HTTPAddr,
		Handler: router.New(router.RouterConfig{
			InterviewHandler: c.InterviewContainer.Handler,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		config.Logger.Infof("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.WithError(err).Fatal("HTTP server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.WithError(err).Error("Graceful shutdown failed")
	}
}
