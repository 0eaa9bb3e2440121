package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"log/slog"
	"seoAuditGO/internal/cache"
	"seoAuditGO/internal/config"
	"seoAuditGO/internal/crawler"
	"seoAuditGO/internal/middleware"
	"seoAuditGO/internal/report"
	"seoAuditGO/internal/repository"
)

// Server represents the HTTP server
type Server struct {
	router      *gin.Engine
	httpServer  *http.Server
	repo        repository.Repository
	crawler     *crawler.Crawler
	auth        *middleware.KeycloakAuth
	logger      *slog.Logger
	config      *config.Config
	reportCache *cache.Cache[report.Report]
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, repo repository.Repository, logger *slog.Logger) *Server {
	// Set Gin mode
	if gin.Mode() == gin.DebugMode {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Add recovery middleware
	router.Use(gin.Recovery())

	// Add CORS middleware
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Create Keycloak auth middleware
	auth := middleware.NewKeycloakAuth(&cfg.Keycloak, logger)

	// Create the server
	s := &Server{
		router: router,
		httpServer: &http.Server{
			Addr:         ":" + cfg.Server.Port,
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		repo:        repo,
		crawler:     crawler.New(cfg.Crawler, logger),
		auth:        auth,
		logger:      logger,
		config:      cfg,
		reportCache: cache.New[report.Report](time.Now),
	}

	// Register routes
	s.registerRoutes()

	return s
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// registerRoutes sets up all the routes for the server
func (s *Server) registerRoutes() {
	// Health check
	s.router.GET("/health", s.healthHandler)

	// Public API routes
	public := s.router.Group("/api")
	{
		// Run an audit (public endpoint for demo purposes)
		public.POST("/audits", s.createAuditHandler)
	}

	// Protected API routes
	protected := s.router.Group("/api")
	protected.Use(s.auth.Authenticate())
	{
		// Get audit by ID
		protected.GET("/audits/:id", s.getAuditHandler)

		// Get the assembled report for an audit
		protected.GET("/audits/:id/report", s.getAuditReportHandler)

		// Get the prioritized action plan for an audit
		protected.GET("/audits/:id/action-plan", s.getActionPlanHandler)

		// Get recent audits
		protected.GET("/audits", s.getRecentAuditsHandler)

		// Get current user's audits
		protected.GET("/user/audits", s.getUserAuditsHandler)
	}

	// Admin-only routes
	admin := s.router.Group("/api/admin")
	admin.Use(s.auth.Authenticate(), s.auth.RequireRoles("admin"))
	{
		admin.GET("/stats", s.getStatsHandler)
	}
}

// healthHandler handles health check requests
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}
