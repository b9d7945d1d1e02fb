// Package web hosts the carousel site: the home page, the carousel fragment
// routes, and the embedded static assets.
package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/louisbranch/carousel/internal/platform/timeouts"
	"github.com/louisbranch/carousel/internal/services/web/app"
	"github.com/louisbranch/carousel/internal/services/web/gallery"
	module "github.com/louisbranch/carousel/internal/services/web/module"
	"github.com/louisbranch/carousel/internal/services/web/modules"
	"github.com/louisbranch/carousel/internal/services/web/platform/httpx"
	"github.com/louisbranch/carousel/internal/services/web/platform/observability"
	"github.com/louisbranch/carousel/internal/services/web/routepath"
	webstatic "github.com/louisbranch/carousel/internal/services/web/static"
	webtemplates "github.com/louisbranch/carousel/internal/services/web/templates"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	Gallery  gallery.Gallery
	// ImagesFS is served under /static/images/ when set. Leave it nil when
	// images are delivered from a CDN.
	ImagesFS fs.FS
	Site     webtemplates.SiteMetadata
	Logger   *log.Logger
	Now      func() time.Time
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *log.Logger
}

// NewHandler builds a root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	deps := module.Dependencies{
		Gallery: cfg.Gallery,
		Site:    cfg.Site,
		Now:     cfg.Now,
		Logger:  logger,
	}
	assets := []module.Mount{{
		Prefix:  routepath.StaticPrefix,
		Handler: http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(webstatic.FS))),
	}}
	if cfg.ImagesFS != nil {
		assets = append(assets, module.Mount{
			Prefix:  routepath.ImagesPrefix,
			Handler: http.StripPrefix(routepath.ImagesPrefix, imagesHandler(cfg.ImagesFS)),
		})
	}
	h, err := app.BuildRootHandler(app.Config{
		PublicModules: modules.DefaultPublicModules(deps),
		Assets:        assets,
	})
	if err != nil {
		return nil, err
	}
	return httpx.Chain(h,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.RequestLogger(logger),
	), nil
}

// imagesHandler serves only gallery image files from fsys, so manifests and
// other files next to the images stay private.
func imagesHandler(fsys fs.FS) http.Handler {
	files := http.FileServer(http.FS(fsys))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch strings.ToLower(path.Ext(r.URL.Path)) {
		case ".jpg", ".jpeg":
			files.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   logger,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			WriteTimeout:      timeouts.Write,
			IdleTimeout:       timeouts.Idle,
			ErrorLog:          logger,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
