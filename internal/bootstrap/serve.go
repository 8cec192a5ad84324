package bootstrap

import (
	"context"
	"fmt"

	"github.com/GoSim-25-26J-441/scm-sim-core/config"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/logging"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/metrics"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/propagation"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/repository"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/sensitivity"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/service"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/storage/postgres"
	"github.com/redis/go-redis/v9"
)

// Serve wires the Postgres pool, Redis client, and propagation/
// sensitivity services from cfg, builds the gin engine, and blocks
// serving HTTP on cfg.Server.Port. Both cmd/api and simcli's "serve"
// subcommand share this so there is exactly one place the process is
// assembled.
func Serve(cfg *config.Config, logger logging.Logger) error {
	SetGinMode(cfg.App.Environment)

	pgPool, err := OpenDB(context.Background(), DBOptions{DSN: postgres.DSN(&cfg.Database)})
	if err != nil {
		return fmt.Errorf("postgres pool: %w", err)
	}
	defer pgPool.Close()

	reportDB, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("postgres connection: %w", err)
	}
	defer reportDB.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	reg := metrics.DefaultRegistry()

	propOpts := propagation.DefaultOptions()
	propOpts.SampleCount = cfg.SCM.SampleCount
	propOpts.KDEPointCount = cfg.SCM.KDEPointCount
	propOpts.MinClamp = cfg.SCM.GlobalMinClamp
	propOpts.MaxClamp = cfg.SCM.GlobalMaxClamp
	propOpts.DefaultPriorWeight = cfg.SCM.DefaultPriorWeight
	propOpts.DefaultMaxStdDevRatio = cfg.SCM.DefaultMaxStdDevRatio
	propOpts.Seed = cfg.SCM.RNGSeed
	propOpts.Logger = logger
	propOpts.Metrics = reg

	sensOpts := sensitivity.DefaultOptions()
	sensOpts.SampleCount = cfg.SCM.SampleCount
	sensOpts.Propagation = propOpts
	sensOpts.Metrics = reg

	runService := service.NewRunService(repository.NewRunRepository(redisClient), propOpts, logger)
	sensitivityService := service.NewSensitivityService(repository.NewReportRepository(reportDB), sensOpts, logger)

	router := BuildRouter(RouterDeps{
		ServiceName: "scm-sim-core",
		Version:     cfg.App.Version,
		DB:          pgPool,
		Runs:        runService,
		Sensitivity: sensitivityService,
		Metrics:     reg,
		Logger:      logger,
	})

	addr := ":" + cfg.Server.Port
	logger.Infow("listening", "addr", addr, "env", cfg.App.Environment)
	return router.Run(addr)
}
