package repository

import (
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupReportRepo(t *testing.T) (*ReportRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewReportRepository(db), mock, db
}

func TestReportRepository_Save_GeneratesIDWhenAbsent(t *testing.T) {
	repo, mock, _ := setupReportRepo(t)
	report := &domain.SensitivityReport{ModelTitle: "budget model", SampleCount: 1000}

	mock.ExpectExec(`INSERT INTO sensitivity_reports`).
		WithArgs(sqlmock.AnyArg(), "budget model", 1000, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	id, err := repo.Save("", report)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_Save_UsesSuppliedID(t *testing.T) {
	repo, mock, _ := setupReportRepo(t)
	report := &domain.SensitivityReport{ModelTitle: "budget model", SampleCount: 500}

	mock.ExpectExec(`INSERT INTO sensitivity_reports`).
		WithArgs("report-1", "budget model", 500, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	id, err := repo.Save("report-1", report)
	require.NoError(t, err)
	assert.Equal(t, "report-1", id)
}

func TestReportRepository_Get_ReturnsSentinelWhenMissing(t *testing.T) {
	repo, mock, _ := setupReportRepo(t)

	mock.ExpectQuery(`SELECT report_data FROM sensitivity_reports`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get("ghost")
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}

func TestReportRepository_Get_DecodesStoredPayload(t *testing.T) {
	repo, mock, _ := setupReportRepo(t)

	payload := []byte(`{"modelTitle":"budget model","sampleCount":1000}`)
	rows := sqlmock.NewRows([]string{"report_data"}).AddRow(payload)
	mock.ExpectQuery(`SELECT report_data FROM sensitivity_reports`).
		WithArgs("report-1").
		WillReturnRows(rows)

	report, err := repo.Get("report-1")
	require.NoError(t, err)
	assert.Equal(t, "budget model", report.ModelTitle)
	assert.Equal(t, 1000, report.SampleCount)
}
