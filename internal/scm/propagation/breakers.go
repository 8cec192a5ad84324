package propagation

import (
	"math"

	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/domain"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/metrics"
)

// resolvedBreakers is a node's circuit-breaker policy after falling back
// to engine-wide defaults for any field the model author left unset.
type resolvedBreakers struct {
	min            *float64
	max            *float64
	priorWeight    float64
	maxStdDevRatio float64
}

func resolveBreakers(n *domain.Node, opts Options) resolvedBreakers {
	r := resolvedBreakers{
		priorWeight:    opts.DefaultPriorWeight,
		maxStdDevRatio: opts.DefaultMaxStdDevRatio,
	}
	if n.CircuitBreakers == nil {
		return r
	}
	cb := n.CircuitBreakers
	r.min = cb.Min
	r.max = cb.Max
	if cb.PriorWeight != nil {
		r.priorWeight = *cb.PriorWeight
	}
	if cb.MaxStdDevRatio != nil {
		r.maxStdDevRatio = *cb.MaxStdDevRatio
	}
	return r
}

// applyCircuitBreakers mutates samples in place per spec section 4.3
// step 3: NaN replacement, min/max clamp, then prior-weight mean
// reversion. When reg is non-nil, a trip is recorded against nodeID the
// first time any sample in the vector is touched.
func applyCircuitBreakers(samples domain.SampleVector, priorMean float64, rb resolvedBreakers, nodeID string, reg *metrics.Registry) {
	tripped := false
	for i, v := range samples {
		before := v
		if math.IsNaN(v) {
			v = priorMean
		}
		if rb.min != nil && v < *rb.min {
			v = *rb.min
		}
		if rb.max != nil && v > *rb.max {
			v = *rb.max
		}
		if rb.priorWeight > 0 && rb.priorWeight <= 1 {
			v = priorMean + (v-priorMean)*(1-rb.priorWeight)
		}
		if v != before {
			tripped = true
		}
		samples[i] = v
	}
	if tripped && reg != nil {
		reg.CircuitBreakerTrips.WithLabelValues(nodeID).Inc()
	}
}

// applyVarianceClamp compresses samples toward their empirical mean when
// the empirical stddev exceeds maxStdDevRatio times the mean's
// magnitude (spec section 4.3 step 4).
func applyVarianceClamp(samples domain.SampleVector, maxStdDevRatio float64, nodeID string, reg *metrics.Registry) {
	if len(samples) == 0 {
		return
	}
	m, s := meanStdDev(samples)
	capVal := math.Abs(m) * maxStdDevRatio
	if capVal <= 0 || s <= capVal {
		return
	}
	ratio := capVal / s
	for i, v := range samples {
		samples[i] = m + (v-m)*ratio
	}
	if reg != nil {
		reg.VarianceClampTrips.WithLabelValues(nodeID).Inc()
	}
}

func meanStdDev(vals []float64) (mean, stddev float64) {
	n := float64(len(vals))
	if n == 0 {
		return 0, 0
	}
	for _, v := range vals {
		mean += v
	}
	mean /= n

	var variance float64
	for _, v := range vals {
		d := v - mean
		variance += d * d
	}
	variance /= n
	return mean, math.Sqrt(variance)
}
