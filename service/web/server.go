// Package web serves stored orphan scan results as HTML pages and a JSON API.
package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/AlexisDongMariano/aws-orphans/service/storage"
)

// NewServer creates a web server over the given storage backend.
func NewServer(store storage.Service, logger *zerolog.Logger) *Server {
	s := &Server{store: store, logger: logger, mux: http.NewServeMux()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("/", s.handleIndex)
	for _, view := range resourceViews {
		view := view
		s.mux.HandleFunc("/"+view.Path, s.handleResourcePage(view))
		s.mux.HandleFunc("/api/"+view.Path, s.handleResourceJSON(view))
		s.mux.HandleFunc("/api/"+view.Path+"/export", s.handleResourceExport(view))
	}
	s.mux.HandleFunc("/api/regions", s.handleRegions)
	s.mux.HandleFunc("/api/last-scan", s.handleLastScan)
}

// Handler returns the server's HTTP handler with request logging applied.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.mux)
}

// ListenAndServe starts the server on the given port.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Web server running on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		if s.logger != nil {
			s.logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Dur("elapsed", time.Since(start)).
				Msg("request")
		}
	})
}

// lastScanErrors returns the region errors of the most recent scan, if any.
func (s *Server) lastScanErrors() ([]storage.RegionError, error) {
	last, err := s.store.GetLastScan()
	if err != nil {
		return nil, err
	}
	if last == nil {
		return nil, nil
	}
	return s.store.ListRegionErrors(last.ScanID)
}
