package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Suiper34/virtual-bookshelf-web/web"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ServeCommand struct {
	Addr            string        `help:"The address to listen on." default:"localhost:5000" env:"BOOKSHELF_ADDR"`
	Secret          string        `help:"The key used to sign session cookies. A random key is used if not set, which logs everyone out on restart." env:"BOOKSHELF_SECRET"`
	SecureCookies   bool          `help:"Only send the session cookie over HTTPS." env:"BOOKSHELF_SECURE_COOKIES"`
	ShutdownTimeout time.Duration `help:"How long to wait for requests to complete on shutdown." default:"10s" env:"BOOKSHELF_SHUTDOWN_TIMEOUT"`
}

func (c *ServeCommand) Run(ctx context.Context, g GlobalFlags) error {
	log, err := g.Logger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	secret := []byte(c.Secret)
	if len(secret) == 0 {
		log.Warn("No secret set, using a random one")
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return fmt.Errorf("failed to generate secret: %w", err)
		}
	}

	store, closer, err := g.Store(ctx)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer closer()
	if err := store.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	handler := web.NewHandler(store, log, web.Config{
		Secret:        secret,
		SecureCookies: c.SecureCookies,
	})
	srv := web.NewServer(c.Addr, handler)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("addr", c.Addr), zap.String("type", g.Type))
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down", zap.Duration("timeout", c.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	log.Info("Server stopped")
	return nil
}
