package httpapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/httpapi"
)

func newServer(t *testing.T, opts ...httpapi.Option) (*httpapi.Server, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	opts = append([]httpapi.Option{httpapi.WithLogger(logger)}, opts...)
	return httpapi.New(opts...), hook
}

func post(t *testing.T, h http.Handler, query, body string) *httptest.ResponseRecorder {
	t.Helper()
	target := httpapi.URIPath
	if query != "" {
		target += "?" + query
	}
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestPath_Found(t *testing.T) {
	s, hook := newServer(t)
	rec := post(t, s, "", "A..\n...\n..B\n")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decode[httpapi.PathResponse](t, rec)
	assert.True(t, resp.Found)
	assert.Equal(t, []httpapi.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, resp.Path)
	assert.Equal(t, 28, resp.Cost)
	assert.Empty(t, resp.Rendered)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "search done", hook.LastEntry().Message)
	assert.Equal(t, true, hook.LastEntry().Data["found"])
}

func TestPath_NotFound(t *testing.T) {
	s, _ := newServer(t)
	rec := post(t, s, "", "A#B\n.#.\n.#.\n")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[httpapi.PathResponse](t, rec)
	assert.False(t, resp.Found)
	assert.Empty(t, resp.Path)
	assert.Equal(t, 3, resp.Expanded)
}

func TestPath_Rendered(t *testing.T) {
	s, _ := newServer(t)
	rec := post(t, s, "render=compact", "A#..\n.#..\n...B\n")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[httpapi.PathResponse](t, rec)
	assert.Equal(t, "A#..\n*#..\n.**B\n", resp.Rendered)
}

func TestPath_Conn4(t *testing.T) {
	s, _ := newServer(t)
	rec := post(t, s, "conn=4", "A..\n...\n..B\n")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 40, decode[httpapi.PathResponse](t, rec).Cost)
}

func TestPath_Errors(t *testing.T) {
	cases := []struct {
		name   string
		query  string
		body   string
		status int
	}{
		{"EmptyMap", "", "", http.StatusBadRequest},
		{"DuplicateStart", "", "AA\n.B\n", http.StatusBadRequest},
		{"MissingGoal", "", "A..\n", http.StatusBadRequest},
		{"BadBudget", "max_expansions=lots", "A.B\n", http.StatusBadRequest},
		{"NegativeBudget", "max_expansions=-2", "A.B\n", http.StatusBadRequest},
		{"BadConn", "conn=6", "A.B\n", http.StatusBadRequest},
		{"BadRender", "render=svg", "A.B\n", http.StatusBadRequest},
		{"BudgetExceeded", "max_expansions=1", "A....\n.....\n....B\n", http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newServer(t)
			rec := post(t, s, tc.query, tc.body)
			assert.Equal(t, tc.status, rec.Code)
			assert.NotEmpty(t, decode[httpapi.ErrorResponse](t, rec).Error)
		})
	}
}

func TestPath_BodyTooLarge(t *testing.T) {
	s, _ := newServer(t, httpapi.WithMaxBodyBytes(8))
	rec := post(t, s, "", "A.........\n.........B\n")
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

// TestPath_PaddedMapTooLarge sends a few KiB that would pad out to a
// 3000×3000 grid.
func TestPath_PaddedMapTooLarge(t *testing.T) {
	s, _ := newServer(t)
	body := "A" + strings.Repeat(".", 2998) + "B\n" + strings.Repeat("\n", 2999)
	rec := post(t, s, "", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, decode[httpapi.ErrorResponse](t, rec).Error, "too large")
}

func TestPath_MaxCells(t *testing.T) {
	s, _ := newServer(t, httpapi.WithMaxCells(6))
	assert.Equal(t, http.StatusOK, post(t, s, "", "A..\n..B\n").Code)
	assert.Equal(t, http.StatusRequestEntityTooLarge, post(t, s, "", "A...\n...B\n").Code)
}

func TestPath_ServerBudget(t *testing.T) {
	s, _ := newServer(t, httpapi.WithMaxExpansions(1))
	rec := post(t, s, "max_expansions=100", "A....\n.....\n....B\n")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "a request cannot raise the server budget")
}

func TestPath_WrongMethod(t *testing.T) {
	s, _ := newServer(t)
	req := httptest.NewRequest(http.MethodGet, httpapi.URIPath, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	s, _ := newServer(t)
	req := httptest.NewRequest(http.MethodGet, httpapi.URIHealth, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	s, _ := newServer(t, httpapi.WithRegistry(reg))
	post(t, s, "", "A.B\n")
	post(t, s, "", "A#B\n")
	post(t, s, "", "")

	srv := httptest.NewServer(s)
	defer srv.Close()
	resp, err := http.Get(srv.URL + httpapi.URIMetrics)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, `gridpath_searches_total{outcome="found"} 1`)
	assert.Contains(t, text, `gridpath_searches_total{outcome="not_found"} 1`)
	assert.Contains(t, text, `gridpath_searches_total{outcome="invalid"} 1`)
	assert.Contains(t, text, "gridpath_search_expansions_count 2")
}
