// Package bootstrap wires the concrete infrastructure (Postgres pool,
// gin engine, Prometheus exposition) that cmd/api's main assembles.
package bootstrap

import (
	scmhttp "github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/http"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/logging"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/metrics"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/service"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDeps carries everything BuildRouter needs to assemble the
// engine; the caller (cmd/api) owns constructing the pool, services,
// and metrics registry.
type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool
	Runs        *service.RunService
	Sensitivity *service.SensitivityService
	Metrics     *metrics.Registry
	Logger      logging.Logger
}

// BuildRouter assembles the gin engine: health checks, the versioned
// propagation/sensitivity API, and a Prometheus exposition endpoint.
func BuildRouter(dep RouterDeps) *gin.Engine {
	if dep.Logger == nil {
		dep.Logger = logging.Nop
	}
	if dep.Metrics == nil {
		dep.Metrics = metrics.DefaultRegistry()
	}

	health := scmhttp.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	handler := scmhttp.NewHandler(dep.Runs, dep.Sensitivity)

	r := scmhttp.NewEngine(handler, health, dep.Logger)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(dep.Metrics.GetPrometheusRegistry(), promhttp.HandlerOpts{})))

	return r
}
