// Package http exposes the propagation and sensitivity services over
// gin, with services injected into a single Handler.
package http

import (
	"errors"
	"net/http"

	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/domain"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/sensitivity"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/service"
	"github.com/gin-gonic/gin"
)

// Handler wraps the run and sensitivity services for gin route
// registration.
type Handler struct {
	runs        *service.RunService
	sensitivity *service.SensitivityService
}

func NewHandler(runs *service.RunService, sensitivity *service.SensitivityService) *Handler {
	return &Handler{runs: runs, sensitivity: sensitivity}
}

type propagateRequest struct {
	Model         domain.Model       `json:"model" binding:"required"`
	Interventions map[string]float64 `json:"interventions,omitempty"`
}

// Propagate submits a model for propagation and returns the completed
// (or failed) Run. Propagation at default sample counts completes in
// milliseconds, so this handler runs it inline rather than queuing it.
func (h *Handler) Propagate(c *gin.Context) {
	var req propagateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	run, err := h.runs.Submit(c.Request.Context(), &req.Model, req.Interventions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit run"})
		return
	}

	status := http.StatusCreated
	if run.Status == domain.RunFailed {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"run": run})
}

// GetRun retrieves a previously submitted run by id.
func (h *Handler) GetRun(c *gin.Context) {
	run, err := h.runs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeRunError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"run": run})
}

type analyzeRequest struct {
	Model domain.Model `json:"model" binding:"required"`
}

// Analyze runs a full sensitivity analysis and persists the report.
func (h *Handler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	reportID, report, err := h.sensitivity.Analyze(&req.Model)
	if err != nil {
		var structErr *domain.StructuralError
		if errors.As(err, &structErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": structErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to run sensitivity analysis"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reportId": reportID, "report": report})
}

// GetReport retrieves a previously stored sensitivity report as JSON.
func (h *Handler) GetReport(c *gin.Context) {
	report, err := h.sensitivity.Get(c.Param("id"))
	if err != nil {
		writeReportError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}

// GetReportMarkdown retrieves a previously stored sensitivity report
// rendered as Markdown (spec section 6.3's documented text format).
func (h *Handler) GetReportMarkdown(c *gin.Context) {
	report, err := h.sensitivity.Get(c.Param("id"))
	if err != nil {
		writeReportError(c, err)
		return
	}
	c.String(http.StatusOK, sensitivity.FormatMarkdown(report))
}

func writeRunError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrRunNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch run"})
}

func writeReportError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrReportNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch report"})
}
