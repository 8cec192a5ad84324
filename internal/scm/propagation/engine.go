// Package propagation implements the Monte Carlo propagation engine of
// spec section 4.3: given a Model and a set of interventions, it derives
// a SampleVector and DistributionSummary for every node.
package propagation

import (
	"math/rand"
	"time"

	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/distributions"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/domain"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/effects"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/rng"
)

// Propagate is the public contract of spec section 4.3: it draws
// opts.SampleCount samples for every node in model, honoring
// interventions, and returns per-node sample vectors and derived
// summaries. A structural fault (cycle, unknown node/distribution/effect
// tag) aborts before any sampling begins.
func Propagate(model *domain.Model, interventions map[string]float64, opts Options) (result *domain.PropagationResult, err error) {
	opts = opts.withDefaults()

	if opts.Metrics != nil {
		start := time.Now()
		defer func() {
			opts.Metrics.PropagationDuration.Observe(time.Since(start).Seconds())
			status := "ok"
			if err != nil {
				status = "error"
			}
			opts.Metrics.PropagationsTotal.WithLabelValues(status).Inc()
		}()
	}

	if err = model.Validate(); err != nil {
		return nil, err
	}

	var order []string
	order, err = topologicalOrder(model)
	if err != nil {
		return nil, err
	}

	for id := range interventions {
		if model.NodeByID(id) == nil {
			opts.Logger.Warnw("intervention targets unknown node, ignoring", "node", id)
		}
	}

	base := rng.New(opts.Seed)
	samples := make(map[string]domain.SampleVector, len(order))
	priorMeans := make(map[string]float64, len(order))

	for i, id := range order {
		node := model.NodeByID(id)
		priorMeans[id] = distributions.Mean(node.Distribution)
		r := rng.Split(base, i)

		if v, intervened := interventions[id]; intervened {
			samples[id] = constantVector(v, opts.SampleCount)
			continue
		}

		var vec domain.SampleVector
		if model.IsExogenous(node) {
			vec = distributions.Sample(node.Distribution, opts.SampleCount, r)
		} else {
			vec = deriveEndogenous(model, node, samples, priorMeans, opts, r)
		}

		rb := resolveBreakers(node, opts)
		applyCircuitBreakers(vec, priorMeans[id], rb, id, opts.Metrics)
		applyVarianceClamp(vec, rb.maxStdDevRatio, id, opts.Metrics)

		samples[id] = vec
	}

	summaries := make(map[string]domain.DistributionSummary, len(samples))
	for id, vec := range samples {
		summaries[id] = distributions.SamplesToKDE(vec, opts.KDEPointCount)
	}

	result = &domain.PropagationResult{Samples: samples, Summaries: summaries}
	return result, nil
}

// deriveEndogenous draws N's own base samples, then folds in every
// parent's influence index-by-index in deterministic (source-id sorted)
// in-edge order, per spec section 4.3 step 2.
func deriveEndogenous(
	model *domain.Model,
	node *domain.Node,
	samples map[string]domain.SampleVector,
	priorMeans map[string]float64,
	opts Options,
	r *rand.Rand,
) domain.SampleVector {
	base := distributions.Sample(node.Distribution, opts.SampleCount, r)
	inEdges := model.InEdges(node.ID)
	if len(inEdges) == 0 {
		return base
	}

	for i := range base {
		value := base[i]
		for _, e := range inEdges {
			parentSamples := samples[e.Source]
			if i >= len(parentSamples) {
				continue
			}
			value = effects.ApplyWithClamp(value, e.Effect, parentSamples[i], priorMeans[e.Source], opts.MinClamp, opts.MaxClamp)
		}
		base[i] = value
	}
	return base
}

func constantVector(v float64, n int) domain.SampleVector {
	out := make(domain.SampleVector, n)
	for i := range out {
		out[i] = v
	}
	return out
}

