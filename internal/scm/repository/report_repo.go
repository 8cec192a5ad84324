package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/domain"
	"github.com/google/uuid"
)

// ReportRepository persists sensitivity reports durably in Postgres,
// unlike RunRepository's transient Redis storage — reports are the
// artifact of an expensive multi-run analysis and are worth keeping
// past a TTL window.
type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Save upserts report under reportID, generating one if the caller
// didn't supply it.
func (r *ReportRepository) Save(reportID string, report *domain.SensitivityReport) (string, error) {
	if reportID == "" {
		reportID = uuid.New().String()
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("scm: marshal sensitivity report: %w", err)
	}

	const query = `
		INSERT INTO sensitivity_reports (id, model_title, sample_count, report_data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			model_title = EXCLUDED.model_title,
			sample_count = EXCLUDED.sample_count,
			report_data = EXCLUDED.report_data,
			updated_at = NOW()
	`
	if _, err := r.db.Exec(query, reportID, report.ModelTitle, report.SampleCount, payload); err != nil {
		return "", fmt.Errorf("scm: save sensitivity report: %w", err)
	}
	return reportID, nil
}

// Get retrieves a report by id, returning domain.ErrReportNotFound if
// absent.
func (r *ReportRepository) Get(reportID string) (*domain.SensitivityReport, error) {
	const query = `SELECT report_data FROM sensitivity_reports WHERE id = $1`

	var payload []byte
	if err := r.db.QueryRow(query, reportID).Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("scm: get sensitivity report: %w", err)
	}

	var report domain.SensitivityReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, fmt.Errorf("scm: unmarshal sensitivity report: %w", err)
	}
	return &report, nil
}
