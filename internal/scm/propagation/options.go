package propagation

import (
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/logging"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/metrics"
)

// Options carries the tunables of spec section 6.4. Propagate replaces
// every zero-valued field except DefaultPriorWeight and Seed with its
// DefaultOptions value, so MinClamp, MaxClamp and DefaultMaxStdDevRatio
// cannot be set to exactly zero. Callers may start from DefaultOptions
// and override selectively, or construct directly from config.SCMConfig.
type Options struct {
	SampleCount           int
	KDEPointCount         int
	MinClamp              float64
	MaxClamp              float64
	DefaultPriorWeight    float64
	DefaultMaxStdDevRatio float64
	Seed                  int64
	Logger                logging.Logger

	// Metrics is optional; when set, propagation records circuit-breaker
	// trips and variance-clamp compressions per node.
	Metrics *metrics.Registry
}

// DefaultOptions matches the documented defaults exactly.
func DefaultOptions() Options {
	return Options{
		SampleCount:           100,
		KDEPointCount:         50,
		MinClamp:              0.1,
		MaxClamp:              10.0,
		DefaultPriorWeight:    0.0,
		DefaultMaxStdDevRatio: 3.0,
		Seed:                  0,
		Logger:                logging.Nop,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.SampleCount <= 0 {
		o.SampleCount = d.SampleCount
	}
	if o.KDEPointCount <= 0 {
		o.KDEPointCount = d.KDEPointCount
	}
	if o.MinClamp == 0 {
		o.MinClamp = d.MinClamp
	}
	if o.MaxClamp == 0 {
		o.MaxClamp = d.MaxClamp
	}
	if o.DefaultMaxStdDevRatio == 0 {
		o.DefaultMaxStdDevRatio = d.DefaultMaxStdDevRatio
	}
	if o.Logger == nil {
		o.Logger = d.Logger
	}
	return o
}
