// Package web serves the bookshelf's HTML pages.
package web

import (
	"context"
	"embed"
	"encoding/hex"
	"html/template"
	"net/http"
	"strconv"
	"time"

	bookshelf "github.com/Suiper34/virtual-bookshelf-web"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	csrf "github.com/utrack/gin-csrf"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//go:embed templates/*.html
var templateFS embed.FS

const sessionName = "bookshelf"

// Store is the subset of bookshelf.Store used by the handlers.
type Store interface {
	List(ctx context.Context) ([]bookshelf.Book, error)
	Get(ctx context.Context, id int64) (bookshelf.Book, bool, error)
	Add(ctx context.Context, b bookshelf.Book) error
	UpdateRating(ctx context.Context, id int64, rating float64) error
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

type Config struct {
	// Secret signs the session cookie and the CSRF tokens.
	Secret []byte
	// SecureCookies restricts the session cookie to HTTPS.
	SecureCookies bool
}

func newTemplates() *template.Template {
	funcs := template.FuncMap{
		"rating": func(f float64) string {
			return strconv.FormatFloat(f, 'f', -1, 64)
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

// NewHandler returns the HTTP handler that serves the bookshelf.
func NewHandler(store Store, log *zap.Logger, cfg Config) http.Handler {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := newMetrics(registry)

	h := &handlers{
		store:   store,
		log:     log,
		metrics: m,
	}

	router := gin.New()
	router.SetHTMLTemplate(newTemplates())

	router.Use(requestIDMiddleware())
	router.Use(ginzap.GinzapWithConfig(log, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/live", "/ready", "/metrics"},
		Context: func(c *gin.Context) []zapcore.Field {
			return []zapcore.Field{zap.String("requestID", requestID(c))}
		},
	}))
	router.Use(ginzap.RecoveryWithZap(log, true))
	router.Use(m.middleware())
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/live", "/ready", "/metrics"})))

	sessionStore := cookie.NewStore(cfg.Secret)
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int((7 * 24 * time.Hour).Seconds()),
		Secure:   cfg.SecureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(sessionName, sessionStore))
	router.Use(csrf.Middleware(csrf.Options{
		Secret: hex.EncodeToString(cfg.Secret),
		ErrorFunc: func(c *gin.Context) {
			h.log.Warn("CSRF token mismatch", zap.String("requestID", requestID(c)), zap.String("path", c.Request.URL.Path))
			h.errorPage(c, http.StatusBadRequest, "The form has expired or is invalid. Please go back, reload the page and try again.")
			c.Abort()
		},
	}))

	router.GET("/", h.list)
	router.GET("/add", h.addForm)
	router.POST("/add", h.add)
	router.GET("/edit-rating/:id", h.editRatingForm)
	router.POST("/edit-rating/:id", h.editRating)
	router.GET("/delete/:id", h.deleteConfirm)
	router.POST("/delete/:id", h.delete)

	health := newHealthHandler(store, registry)
	router.GET("/live", gin.WrapH(health))
	router.GET("/ready", gin.WrapH(health))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	router.NoRoute(func(c *gin.Context) {
		h.errorPage(c, http.StatusNotFound, "Page not found.")
	})

	return router
}

// NewServer returns an http.Server for the handler, with the timeouts used in production.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
