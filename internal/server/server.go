// Package server serves the portfolio over HTTP with HTMX fragments.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"k8s.io/utils/clock"

	"github.com/Emynado01/portfolio/internal/config"
	"github.com/Emynado01/portfolio/internal/contact"
	"github.com/Emynado01/portfolio/internal/content"
	"github.com/Emynado01/portfolio/internal/logger"
	"github.com/Emynado01/portfolio/internal/relay"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Options wire the server to its collaborators. Clock defaults to the real clock.
type Options struct {
	Config  *config.Config
	Content *content.Store
	Sender  relay.Sender
	Logger  *logger.Logger
	Clock   clock.WithDelayedExecution
}

type Server struct {
	cfg      *config.Config
	content  *content.Store
	log      *logger.Logger
	registry *Registry
	engine   *gin.Engine
}

func New(opts Options) (*Server, error) {
	if opts.Config == nil || opts.Content == nil || opts.Sender == nil {
		return nil, errors.New("server: config, content and sender are required")
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.RealClock{}
	}

	salt, err := generateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate visitor salt: %w", err)
	}

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	cfg := opts.Config
	s := &Server{
		cfg:     cfg,
		content: opts.Content,
		log:     opts.Logger,
	}
	s.registry = NewRegistry(clk, cfg.SessionTTL, func(id string) *contact.Form {
		return contact.NewForm(contact.Options{
			Sender:     opts.Sender,
			Clock:      clk,
			SentDelay:  cfg.SentResetDelay,
			ErrorDelay: cfg.ErrorResetDelay,
			Logger:     opts.Logger.WithFields(map[string]any{"session": id}),
		})
	})

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(opts.Logger, salt))
	r.SetHTMLTemplate(tmpl)

	r.Static("/static", cfg.StaticDir)
	r.StaticFile("/cv.pdf", cfg.CVPath)
	r.GET("/healthz", s.handleHealth)

	pages := r.Group("/")
	pages.Use(clientHints(), sessionMiddleware(s.registry, gin.Mode() == gin.ReleaseMode))
	s.routes(pages)

	s.engine = r
	return s, nil
}

// Handler exposes the gin engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Registry exposes the session registry.
func (s *Server) Registry() *Registry {
	return s.registry
}

// Run serves until ctx is cancelled, sweeping idle sessions in the background.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.sweep(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening on " + srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.registry.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.registry.Close()
	s.log.Info("server stopped")
	return err
}

func (s *Server) sweep(ctx context.Context) {
	interval := s.cfg.SessionTTL / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.registry.Sweep(); n > 0 {
				s.log.WithFields(map[string]any{"expired": n}).Debug("idle sessions evicted")
			}
		}
	}
}
