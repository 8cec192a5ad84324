package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/domain"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/propagation"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/repository"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/sensitivity"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/service"
	"github.com/alicebob/miniredis/v2"
	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandler(t *testing.T) *Handler {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	mock.MatchExpectationsInOrder(false)
	mock.ExpectExec(`INSERT INTO sensitivity_reports`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(`SELECT report_data FROM sensitivity_reports`).
		WillReturnRows(sqlmock.NewRows([]string{"report_data"}).AddRow([]byte(`{"modelTitle":"chain"}`)))

	runs := service.NewRunService(repository.NewRunRepository(client), propagation.DefaultOptions(), nil)
	sens := service.NewSensitivityService(repository.NewReportRepository(db), sensitivity.DefaultOptions(), nil)
	return NewHandler(runs, sens)
}

func chainModelJSON() []byte {
	m := &domain.Model{
		Title: "chain",
		Nodes: []*domain.Node{
			{ID: "a", Kind: domain.NodeExogenous, Distribution: domain.Distribution{Kind: domain.DistNormal, Mu: 1, Sigma: 0.1}},
			{ID: "b", Kind: domain.NodeTerminal, Distribution: domain.Distribution{Kind: domain.DistNormal, Mu: 1, Sigma: 0.1}},
		},
		Edges: []*domain.Edge{
			{Source: "a", Target: "b", Effect: domain.Effect{Kind: domain.EffectLinear}},
		},
	}
	body, _ := json.Marshal(map[string]any{"model": m})
	return body
}

func TestHandler_Propagate_CreatesRun(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	testHandler(t).Register(router.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/runs", bytes.NewReader(chainModelJSON()))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestHandler_Propagate_RejectsMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	testHandler(t).Register(router.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/runs", bytes.NewReader([]byte(`{`)))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_GetRun_NotFoundReturns404(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	testHandler(t).Register(router.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs/ghost", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_Analyze_PersistsAndReturnsReport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	testHandler(t).Register(router.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader(chainModelJSON()))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestHandler_GetReport_ReturnsStoredReport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	testHandler(t).Register(router.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/anything", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
