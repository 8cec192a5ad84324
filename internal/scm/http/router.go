package http

import (
	"time"

	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Register mounts the propagation and sensitivity routes under rg.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/runs", h.Propagate)
	rg.GET("/runs/:id", h.GetRun)

	rg.POST("/analyze", h.Analyze)
	rg.GET("/reports/:id", h.GetReport)
	rg.GET("/reports/:id/markdown", h.GetReportMarkdown)
}

// NewEngine builds a gin.Engine wired with request-id logging, the
// health endpoint, and the propagation/sensitivity API under
// /api/v1.
func NewEngine(h *Handler, health *HealthHandler, logger logging.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID(logger))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST"},
		AllowHeaders:    []string{"Content-Type", "X-Request-Id"},
		MaxAge:          12 * time.Hour,
	}))

	health.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	h.Register(v1)

	return r
}
