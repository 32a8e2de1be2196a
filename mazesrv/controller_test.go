package mazesrv_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keymaze/mazesrv"
)

var corridor = []string{
	"XXXXXXX",
	"XI...KX",
	"X.....X",
	"X.X.XGX",
	"XXXXXXX",
}

var forcedMud = []string{
	"XXXXXXX",
	"XI....X",
	"X.MMM.X",
	"X.XKXGX",
	"XXXXXXX",
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T, cfg mazesrv.Config) (*gin.Engine, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	cfg.Logger = logger
	return mazesrv.NewRouter(mazesrv.NewController(cfg), "/api"), hook
}

func post(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSolve(t *testing.T) {
	router, hook := newRouter(t, mazesrv.Config{})
	rec := post(t, router, "/api/v1/solve", mazesrv.SolveRequest{Rows: forcedMud})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res mazesrv.SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.NotEqual(t, uuid.Nil, res.RunID)
	assert.True(t, res.Found)
	assert.True(t, res.Valid)
	assert.Equal(t, 14, res.Cost)
	assert.NotEmpty(t, res.Moves)
	assert.Positive(t, res.Expanded)

	var solved *log.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "solved" {
			solved = e
		}
	}
	require.NotNil(t, solved)
	assert.Equal(t, res.RunID.String(), solved.Data["run_id"])
	assert.Equal(t, 14, solved.Data["cost"])
}

func TestSolve_NoSolution(t *testing.T) {
	router, _ := newRouter(t, mazesrv.Config{})
	rec := post(t, router, "/api/v1/solve", mazesrv.SolveRequest{Rows: []string{"I..G"}})
	require.Equal(t, http.StatusOK, rec.Code)

	var res mazesrv.SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.False(t, res.Found)
	assert.False(t, res.Valid)
	assert.Empty(t, res.Moves)
	assert.Equal(t, 0, res.Cost)
}

func TestSolve_BadRequests(t *testing.T) {
	router, _ := newRouter(t, mazesrv.Config{})
	cases := []struct {
		name string
		body any
	}{
		{"InvalidJSON", "{rows"},
		{"MissingRows", `{"multi_key": true}`},
		{"EmptyRows", mazesrv.SolveRequest{Rows: []string{}}},
		{"NoEntry", mazesrv.SolveRequest{Rows: []string{"..KG"}}},
		{"Ragged", mazesrv.SolveRequest{Rows: []string{"IKG", "X"}}},
		{"TwoKeys", mazesrv.SolveRequest{Rows: []string{"IKKG"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, router, "/api/v1/solve", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestSolve_MultiKey(t *testing.T) {
	router, _ := newRouter(t, mazesrv.Config{})
	rec := post(t, router, "/api/v1/solve", mazesrv.SolveRequest{Rows: []string{"IKKG"}, MultiKey: true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res mazesrv.SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, []string{"R", "R", "R"}, res.Moves)
	assert.Equal(t, 3, res.Cost)

	// Server-wide setting admits several keys without the request flag.
	router, _ = newRouter(t, mazesrv.Config{MultiKey: true})
	rec = post(t, router, "/api/v1/solve", mazesrv.SolveRequest{Rows: []string{"IKKG"}})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSolve_ExpansionLimit(t *testing.T) {
	router, _ := newRouter(t, mazesrv.Config{MaxExpansions: 2})
	rec := post(t, router, "/api/v1/solve", mazesrv.SolveRequest{Rows: corridor})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "run_id")
}

func TestSolve_TraceLogsExpansions(t *testing.T) {
	router, hook := newRouter(t, mazesrv.Config{Trace: true})
	rec := post(t, router, "/api/v1/solve", mazesrv.SolveRequest{Rows: corridor})
	require.Equal(t, http.StatusOK, rec.Code)

	var res mazesrv.SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	expands := 0
	for _, e := range hook.AllEntries() {
		if e.Message == "expand" {
			expands++
			assert.Equal(t, res.RunID.String(), e.Data["run_id"])
		}
	}
	assert.Equal(t, res.Expanded, expands)
}

func TestVerify(t *testing.T) {
	router, _ := newRouter(t, mazesrv.Config{})
	cases := []struct {
		name  string
		moves []string
		valid bool
		cost  int
	}{
		{"Solution", []string{"R", "R", "R", "R", "D", "D"}, true, 6},
		{"LowerCase", []string{"r", "r", "r", "r", "d", "d"}, true, 6},
		{"StopsShort", []string{"R", "R", "R", "R", "D"}, false, 5},
		{"IntoWall", []string{"U"}, false, -1},
		{"Empty", []string{}, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, router, "/api/v1/verify", mazesrv.VerifyRequest{Rows: corridor, Moves: tc.moves})
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var res mazesrv.VerifyResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
			assert.Equal(t, mazesrv.VerifyResponse{Valid: tc.valid, Cost: tc.cost}, res)
		})
	}
}

func TestVerify_BadRequests(t *testing.T) {
	router, _ := newRouter(t, mazesrv.Config{})

	rec := post(t, router, "/api/v1/verify", mazesrv.VerifyRequest{Rows: corridor, Moves: []string{"R", "Q"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "move 1")

	rec = post(t, router, "/api/v1/verify", mazesrv.VerifyRequest{Rows: []string{"XKG"}, Moves: []string{"R"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(t, router, "/api/v1/verify", `{"moves": ["R"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBodyLimit(t *testing.T) {
	router, _ := newRouter(t, mazesrv.Config{MaxBodyBytes: 64})
	wide := mazesrv.SolveRequest{Rows: []string{"I" + strings.Repeat(".", 200) + "KG"}}

	rec := post(t, router, "/api/v1/solve", wide)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	// Without a declared length the cap applies while the body is decoded.
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(wide))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/verify", io.NopCloser(&buf))
	req.ContentLength = -1
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = post(t, router, "/api/v1/solve", mazesrv.SolveRequest{Rows: []string{"IKG"}})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	router, _ := newRouter(t, mazesrv.Config{})
	rec := post(t, router, "/api/v2/solve", mazesrv.SolveRequest{Rows: corridor})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
