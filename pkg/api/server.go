package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/example/storefront/pkg/config"
)

type Server struct {
	config  *config.Config
	logger  *zap.Logger
	router  *gin.Engine
	handler *Handler
	http    *http.Server
}

func NewServer(cfg *config.Config, logger *zap.Logger, handler *Handler) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(logger))
	router.Use(corsMiddleware())

	return &Server{
		config:  cfg,
		logger:  logger,
		router:  router,
		handler: handler,
	}
}

func (s *Server) SetupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": s.config.Server.Name})
	})

	// The storefront API lives on a single path, routed by method and
	// the action query parameter. Any catches unsupported methods so
	// they still get the JSON 404 body.
	s.router.Any("/api", s.handler.Dispatch)

	// Swagger
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.Info("Storefront API starting", zap.String("address", addr))

	s.http = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
