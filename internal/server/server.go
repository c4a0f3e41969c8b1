// Package server provides the HTTP server setup and routing configuration.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sfaram/vidgrid/internal/api"
	"github.com/sfaram/vidgrid/internal/app"
	"github.com/sfaram/vidgrid/internal/catalog"
	"github.com/sfaram/vidgrid/internal/config"
	"github.com/sfaram/vidgrid/internal/logger"
	"github.com/sfaram/vidgrid/internal/middleware"
	"github.com/sfaram/vidgrid/internal/nav"
	"github.com/sfaram/vidgrid/internal/prefs"
)

// Server represents the HTTP server
type Server struct {
	config   *config.Config
	catalog  *catalog.Client
	prefs    *prefs.Store
	sessions *api.SessionManager
	router   *gin.Engine
	server   *http.Server
}

// New creates a new server instance over the given catalog store. The store
// may be nil (unconfigured): reads degrade to an empty catalog, writes fail
// with a visible error.
func New(cfg *config.Config, store catalog.Store) *Server {
	client := catalog.NewClient(store)
	preferences := prefs.NewStore(cfg.Prefs.Path)

	factory := func() *app.App {
		a := app.New(app.Options{
			Catalog: client,
			History: nav.NewMemoryHistory(nil),
			Prefs:   preferences,
			Credentials: app.Credentials{
				Username: cfg.Admin.Username,
				Password: cfg.Admin.Password,
			},
		})
		a.Initialize(context.Background())
		return a
	}

	return &Server{
		config:   cfg,
		catalog:  client,
		prefs:    preferences,
		sessions: api.NewSessionManager(cfg.Session.Cookie, cfg.Session.TTL, factory),
	}
}

// setupRouter initializes the Gin router with middleware and routes
func (s *Server) setupRouter() {
	if s.config.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s.router = gin.New()
	s.router.Use(middleware.RequestLogger())
	s.router.Use(gin.Recovery())
	s.router.SetHTMLTemplate(api.Templates())

	api.SetupPageRoutes(s.router, s.sessions)
	api.SetupActionRoutes(s.router, s.sessions)

	apiGroup := s.router.Group("/api")
	apiGroup.Use(cors.Default())
	api.SetupHealthRoutes(apiGroup, s.catalog)
	api.SetupVideoRoutes(apiGroup, s.catalog, s.sessions)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.setupRouter()
	s.sessions.Start()

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	s.server = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    s.config.Server.ReadTimeout,
		WriteTimeout:   s.config.Server.WriteTimeout,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	logger.Log.Info().
		Str("host", s.config.Server.Host).
		Int("port", s.config.Server.Port).
		Str("store", s.config.Store.Backend).
		Msg("Starting HTTP server")

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Log.Info().Msg("Shutting down server gracefully")

	if s.sessions != nil {
		s.sessions.Stop()
	}

	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
	}

	logger.Log.Info().Msg("Server stopped")
	return nil
}
