// Package httpapi serves A* path queries over HTTP.
//
// Routes:
//
//	POST /v1/path   body: text map (see textmap); query: max_expansions, conn=4|8, render=compact|boxes
//	GET  /healthz   liveness
//	GET  /metrics   Prometheus metrics
//
// Every request builds its own grid, so searches never share state.
package httpapi

import (
	"net/http"

	"github.com/matryer/way"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/textmap"
)

// Route paths.
const (
	URIPath    = "/v1/path"
	URIHealth  = "/healthz"
	URIMetrics = "/metrics"
)

// DefaultMaxBodyBytes caps the size of a posted map.
const DefaultMaxBodyBytes = 1 << 20

// Server routes requests to the path handler.
type Server struct {
	router        *way.Router
	log           log.FieldLogger
	registry      *prometheus.Registry
	metrics       *metrics
	maxBodyBytes  int64
	maxCells      int
	maxExpansions int
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l log.FieldLogger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRegistry registers metrics on reg instead of a private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// WithMaxBodyBytes caps the posted map size. Values <= 0 keep the default.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

// WithMaxCells caps width×height of a posted map after padding short lines.
// Values <= 0 keep textmap.DefaultMaxCells.
func WithMaxCells(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxCells = n
		}
	}
}

// WithMaxExpansions sets the expansion budget used when a request does not
// ask for a smaller one. 0 means unlimited.
func WithMaxExpansions(n int) Option {
	return func(s *Server) {
		if n >= 0 {
			s.maxExpansions = n
		}
	}
}

// New builds a Server with its routes.
func New(opts ...Option) *Server {
	s := &Server{
		log:          log.StandardLogger(),
		registry:     prometheus.NewRegistry(),
		maxBodyBytes: DefaultMaxBodyBytes,
		maxCells:     textmap.DefaultMaxCells,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = newMetrics(s.registry)
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc(http.MethodPost, URIPath, s.handlePath())
	s.router.HandleFunc(http.MethodGet, URIHealth, s.handleHealth())
	s.router.Handle(http.MethodGet, URIMetrics, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	}
}
