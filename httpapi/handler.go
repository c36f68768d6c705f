package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/textmap"
)

// Point is a path coordinate in responses.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PathResponse is the body of a successful POST /v1/path.
// Found == false means no path exists.
type PathResponse struct {
	Found    bool    `json:"found"`
	Path     []Point `json:"path"`
	Cost     int     `json:"cost"`
	Expanded int     `json:"expanded"`
	Rendered string  `json:"rendered,omitempty"`
}

// ErrorResponse is the body of any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// pathQuery holds the parsed query parameters of POST /v1/path.
type pathQuery struct {
	maxExpansions int
	conn          grid.Connectivity
	render        bool
	style         render.Style
}

func (s *Server) handlePath() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		began := time.Now()
		logger := s.log.WithFields(log.Fields{"method": r.Method, "uri": r.URL.Path})

		q, err := s.parseQuery(r)
		if err != nil {
			s.metrics.searchesTotal.WithLabelValues(outcomeInvalid).Inc()
			logger.WithError(err).Info("rejecting query")
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		body := http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
		g, err := textmap.ParseLimit(body, s.maxCells, grid.WithConnectivity(q.conn))
		if err != nil {
			status := http.StatusBadRequest
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) || errors.Is(err, textmap.ErrTooLarge) {
				status = http.StatusRequestEntityTooLarge
			}
			s.metrics.searchesTotal.WithLabelValues(outcomeInvalid).Inc()
			logger.WithError(err).Info("rejecting map")
			writeJSON(w, status, ErrorResponse{Error: err.Error()})
			return
		}

		res, err := astar.FindPath(g,
			astar.WithContext(r.Context()),
			astar.WithMaxExpansions(q.maxExpansions),
		)
		s.metrics.searchDuration.Observe(time.Since(began).Seconds())
		s.metrics.expansions.Observe(float64(res.Expanded))
		logger = logger.WithFields(log.Fields{
			"width":    g.Width,
			"height":   g.Height,
			"expanded": res.Expanded,
		})

		if err != nil {
			status, outcome := classify(err)
			s.metrics.searchesTotal.WithLabelValues(outcome).Inc()
			logger.WithError(err).Warn("search failed")
			writeJSON(w, status, ErrorResponse{Error: err.Error()})
			return
		}

		resp := PathResponse{
			Found:    res.Found,
			Path:     make([]Point, 0, len(res.Path)),
			Cost:     res.Cost,
			Expanded: res.Expanded,
		}
		for _, c := range res.Path {
			resp.Path = append(resp.Path, Point{X: c.X, Y: c.Y})
		}
		if q.render {
			var sb strings.Builder
			if err = render.Render(&sb, g, render.WithStyle(q.style)); err == nil {
				resp.Rendered = sb.String()
			}
		}

		outcome := outcomeNotFound
		if res.Found {
			outcome = outcomeFound
		}
		s.metrics.searchesTotal.WithLabelValues(outcome).Inc()
		logger.WithFields(log.Fields{"found": res.Found, "cost": res.Cost}).Info("search done")
		writeJSON(w, http.StatusOK, resp)
	}
}

// parseQuery reads max_expansions, conn and render. A requested budget can
// only tighten the server budget.
func (s *Server) parseQuery(r *http.Request) (pathQuery, error) {
	q := pathQuery{maxExpansions: s.maxExpansions, conn: grid.Conn8}
	values := r.URL.Query()

	if v := values.Get("max_expansions"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return q, fmt.Errorf("max_expansions must be a non-negative integer, got %q", v)
		}
		if n > 0 && (q.maxExpansions == 0 || n < q.maxExpansions) {
			q.maxExpansions = n
		}
	}

	switch v := values.Get("conn"); v {
	case "", "8":
	case "4":
		q.conn = grid.Conn4
	default:
		return q, fmt.Errorf("conn must be 4 or 8, got %q", v)
	}

	if v := values.Get("render"); v != "" {
		style, err := render.ParseStyle(v)
		if err != nil {
			return q, err
		}
		q.render, q.style = true, style
	}

	return q, nil
}

// classify maps a search error to an HTTP status and a metrics outcome.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, astar.ErrInvalidInput):
		return http.StatusBadRequest, outcomeInvalid
	case errors.Is(err, astar.ErrBudgetExceeded):
		return http.StatusUnprocessableEntity, outcomeBudget
	}
	return http.StatusInternalServerError, outcomeError
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
