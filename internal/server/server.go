// Package server exposes the ranking pipeline over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clinseq/varank/internal/annotation"
	"github.com/clinseq/varank/internal/classify"
	"github.com/clinseq/varank/internal/pipeline"
)

// Version is set at build time.
var Version = "dev"

// maxUploadSize caps uploaded VCF files at 100MB.
const maxUploadSize = 100 << 20

// Config holds the server settings.
type Config struct {
	Addr       string
	TopN       int
	Classify   classify.Config
	SamplePath string // optional sample VCF for /process-vcf-sample
	Debug      bool
}

// Server is a thin HTTP wrapper around the ranking pipeline.
type Server struct {
	cfg      Config
	pipeline *pipeline.Pipeline
	router   *gin.Engine
	server   *http.Server
	logger   *zap.Logger
}

// New creates the HTTP server around the given annotation store.
func New(cfg Config, store *annotation.Store, logger *zap.Logger) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	p := pipeline.New(store, cfg.Classify)
	p.SetTopN(cfg.TopN)
	p.SetLogger(logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.MaxMultipartMemory = maxUploadSize

	s := &Server{
		cfg:      cfg,
		pipeline: p,
		router:   router,
		logger:   logger,
	}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleHealth)
	s.router.GET("/health", s.handleHealth)
	s.router.POST("/process-vcf", s.handleProcessVCF)
	s.router.POST("/process-vcf-sample", s.handleProcessSample)
	s.router.GET("/classification-rules", s.handleClassificationRules)
}

// Router returns the underlying handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start runs the server until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	s.logger.Info("server listening", zap.String("addr", s.cfg.Addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

// requestIDMiddleware tags every request with an X-Request-ID header.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
