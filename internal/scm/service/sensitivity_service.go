package service

import (
	"time"

	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/domain"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/logging"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/repository"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/sensitivity"
)

// SensitivityService drives analyze() calls and persists the resulting
// report durably.
type SensitivityService struct {
	reports *repository.ReportRepository
	opts    sensitivity.Options
	logger  logging.Logger
}

func NewSensitivityService(reports *repository.ReportRepository, opts sensitivity.Options, logger logging.Logger) *SensitivityService {
	if logger == nil {
		logger = logging.Nop
	}
	opts.Now = func() string { return time.Now().UTC().Format(time.RFC3339) }
	return &SensitivityService{reports: reports, opts: opts, logger: logger}
}

// Analyze runs analyze() and stores the report, returning the assigned
// report id alongside the report itself.
func (s *SensitivityService) Analyze(model *domain.Model) (string, *domain.SensitivityReport, error) {
	report, err := sensitivity.Analyze(model, s.opts)
	if err != nil {
		s.logger.Warnw("sensitivity analysis failed", "model", model.Title, "error", err)
		return "", nil, err
	}

	reportID, err := s.reports.Save("", report)
	if err != nil {
		return "", nil, err
	}
	return reportID, report, nil
}

// Get fetches a previously stored report.
func (s *SensitivityService) Get(reportID string) (*domain.SensitivityReport, error) {
	return s.reports.Get(reportID)
}
