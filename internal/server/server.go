package server

import (
	"log"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/IsmailJamji/it-management-suite-sub001/internal/api"
	"github.com/IsmailJamji/it-management-suite-sub001/internal/config"
	"github.com/IsmailJamji/it-management-suite-sub001/internal/store"
)

// Server is the HTTP front of the asset import engine.
type Server struct {
	router *gin.Engine
	store  *store.Store
}

// NewServer initializes the store and the API routes.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	dbPath := filepath.Join(dataDir, "assets.db")

	sqliteStore, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	handler := api.NewHandler(sqliteStore, cfg.Mapper.Thresholds())

	s := &Server{
		router: gin.Default(),
		store:  sqliteStore,
	}

	s.router.Use(corsMiddleware())

	group := s.router.Group("/api")
	handler.RegisterRoutes(group)

	return s
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases the store.
func (s *Server) Close() error {
	return s.store.Close()
}
