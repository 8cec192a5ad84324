// Command api serves the propagation and sensitivity engines over HTTP.
package main

import (
	"log"

	"github.com/GoSim-25-26J-441/scm-sim-core/config"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/bootstrap"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New()
	if err != nil {
		log.Fatalf("logging: %v", err)
	}

	if err := bootstrap.Serve(cfg, logger); err != nil {
		log.Fatalf("server: %v", err)
	}
}
