package service

import (
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/domain"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/repository"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/sensitivity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReportRepo(t *testing.T) (*repository.ReportRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewReportRepository(db), mock
}

func TestSensitivityService_Analyze_PersistsReport(t *testing.T) {
	repo, mock := newTestReportRepo(t)
	svc := NewSensitivityService(repo, sensitivity.DefaultOptions(), nil)

	mock.ExpectExec(`INSERT INTO sensitivity_reports`).
		WithArgs(sqlmock.AnyArg(), "chain", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	reportID, report, err := svc.Analyze(chainModel())
	require.NoError(t, err)
	assert.NotEmpty(t, reportID)
	assert.Equal(t, "chain", report.ModelTitle)
}

func TestSensitivityService_Analyze_ReturnsErrorWithoutPersistingOnStructuralFault(t *testing.T) {
	repo, _ := newTestReportRepo(t)
	svc := NewSensitivityService(repo, sensitivity.DefaultOptions(), nil)

	cyclic := &domain.Model{
		Nodes: []*domain.Node{
			{ID: "a", Distribution: domain.Distribution{Kind: domain.DistNormal}},
			{ID: "b", Distribution: domain.Distribution{Kind: domain.DistNormal}},
		},
		Edges: []*domain.Edge{
			{Source: "a", Target: "b", Effect: domain.Effect{Kind: domain.EffectLinear}},
			{Source: "b", Target: "a", Effect: domain.Effect{Kind: domain.EffectLinear}},
		},
	}
	cyclic.Index()

	_, _, err := svc.Analyze(cyclic)
	assert.Error(t, err)
}

func TestSensitivityService_Get_UnknownReportReturnsSentinel(t *testing.T) {
	repo, mock := newTestReportRepo(t)
	svc := NewSensitivityService(repo, sensitivity.DefaultOptions(), nil)

	mock.ExpectQuery(`SELECT report_data FROM sensitivity_reports`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := svc.Get("ghost")
	require.Error(t, err)
}
