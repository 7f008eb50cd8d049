// Package server exposes a comparison session over HTTP: analysts upload
// fiscal-year CSV exports, add manual records, and read back the previews and
// the classification, either as JSON or as a plain HTML page.
//
// The session registry lives in process memory only. Restarting the server
// loses it; files must be re-uploaded to rebuild the state.
package server

import (
	"fmt"
	"log"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sgopal/chipdiff"
)

// Session owns the registry of one running server. The core library is
// single-writer by design, so the session serializes HTTP access with a
// mutex rather than pushing locking into the library.
type Session struct {
	mu       sync.Mutex
	registry *chipdiff.Registry
	aliases  chipdiff.ColumnAliases
}

// NewSession creates an empty comparison session.
func NewSession(aliases chipdiff.ColumnAliases) *Session {
	return &Session{
		registry: chipdiff.NewRegistry(),
		aliases:  aliases,
	}
}

// Upsert merges records into the session registry.
func (s *Session) Upsert(year int, records []chipdiff.Record) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Upsert(year, records)
}

// Snapshot runs fn with the registry while holding the session lock. The
// registry must not escape fn.
func (s *Session) Snapshot(fn func(*chipdiff.Registry)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.registry)
}

// Server is the HTTP frontend of a comparison session.
type Server struct {
	router  *gin.Engine
	session *Session
}

// New creates a server with an empty session.
func New(aliases chipdiff.ColumnAliases) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		router:  gin.Default(),
		session: NewSession(aliases),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.POST("/upload", s.Upload)
		api.POST("/records", s.AddRecord)
		api.GET("/years", s.Years)
		api.GET("/preview/:year", s.Preview)
		api.GET("/classification/:year", s.Classification)
	}
	s.router.GET("/", s.Index)
}

// Run starts the server on the given port and blocks.
func (s *Server) Run(port int) error {
	addr := fmt.Sprintf(":%d", port)
	log.Printf("chipdiff server listening on http://localhost%s", addr)
	return s.router.Run(addr)
}
