// Package httpapi exposes the JSON HTTP surface of the server: auth
// endpoints, protected notes endpoints and the session-gating middleware.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/anvydev/notekeeper/internal/logging"
	"github.com/anvydev/notekeeper/internal/server/auth"
	"github.com/anvydev/notekeeper/internal/server/config"
	"github.com/anvydev/notekeeper/internal/server/services"
)

// AccessTokenCookie is the cookie carrying the session token.
const AccessTokenCookie = "access_token"

type HTTPServer struct {
	address     string
	corsOrigins string
	logger      logging.Logger
	auth        *services.AuthService
	notes       *services.NotesService
	tokens      *auth.TokenService
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, as *services.AuthService, ns *services.NotesService, ts *auth.TokenService) *HTTPServer {
	// Gin reads GIN_MODE from the environment at package init, before the
	// config layers (dotenv included) have run; apply the configured mode
	// explicitly so a .env value takes effect.
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	return &HTTPServer{
		address:     cfg.EndpointAddrHTTP,
		corsOrigins: cfg.CORSAllowedOrigins,
		logger:      l.With("module", "http_server"),
		auth:        as,
		notes:       ns,
		tokens:      ts,
	}
}

// Router builds the gin engine with all middleware and routes registered.
// Split out from Run so tests can drive it with httptest.
func (s *HTTPServer) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestID())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(s.corsOrigins, ",")
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", s.handleRegister)
			authRoutes.POST("/login", s.handleLogin)
			authRoutes.POST("/logout", s.handleLogout)
		}

		notesRoutes := api.Group("/notes")
		notesRoutes.Use(s.RequireAuth())
		{
			notesRoutes.GET("/get", s.handleListNotes)
			notesRoutes.POST("/create", s.handleCreateNote)
			notesRoutes.GET("/get/:id", s.handleGetNote)
			notesRoutes.PUT("/update/:id", s.handleUpdateNote)
			notesRoutes.DELETE("/delete/:id", s.handleDeleteNote)
		}
	}

	return router
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
