// Package server exposes the learning service over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JOHN41-tech/assistant-L/internal/learning"
	"github.com/JOHN41-tech/assistant-L/internal/logger"
)

// Server wraps the HTTP listener around the learning service.
type Server struct {
	svc  *learning.Service
	log  *logger.Logger
	http *http.Server
}

// New builds a Server listening on port.
func New(svc *learning.Service, log *logger.Logger, port int) *Server {
	s := &Server{
		svc: svc,
		log: log.With("component", "server"),
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(sessionCookie())
	{
		api.POST("/start-topic", s.startTopic)
		api.POST("/get-guide", s.getGuide)
		api.POST("/next-step", s.nextStep)
		api.POST("/chat", s.chat)
		api.POST("/generate-quiz", s.generateQuiz)
		api.POST("/submit-quiz", s.submitQuiz)
		api.POST("/save-note", s.saveNote)
		api.GET("/get-note", s.getNote)
		api.GET("/chat-history", s.chatHistory)
		api.POST("/clear-chat", s.clearChat)
		api.GET("/topics", s.topics)
		api.GET("/stats", s.stats)
		api.GET("/export", s.export)
		api.POST("/get-resources", s.getResources)
	}

	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the underlying HTTP handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}
