package propagation

import (
	"testing"

	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/domain"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64p(v float64) *float64 { return &v }

func chainModel() *domain.Model {
	return &domain.Model{
		Nodes: []*domain.Node{
			{ID: "budget", Kind: domain.NodeExogenous, Distribution: domain.Distribution{Kind: domain.DistNormal, Mu: 100, Sigma: 10}},
			{ID: "headcount", Kind: domain.NodeEndogenous, Distribution: domain.Distribution{Kind: domain.DistNormal, Mu: 5, Sigma: 1}},
			{ID: "throughput", Kind: domain.NodeTerminal, Distribution: domain.Distribution{Kind: domain.DistNormal, Mu: 20, Sigma: 2}},
		},
		Edges: []*domain.Edge{
			{Source: "budget", Target: "headcount", Effect: domain.Effect{Kind: domain.EffectLinear, Coefficient: f64p(0.5)}},
			{Source: "headcount", Target: "throughput", Effect: domain.Effect{Kind: domain.EffectLinear, Coefficient: f64p(0.4)}},
		},
	}
}

func TestPropagate_ProducesSampleAndSummaryPerNode(t *testing.T) {
	model := chainModel()
	result, err := Propagate(model, nil, DefaultOptions())
	require.NoError(t, err)

	for _, id := range []string{"budget", "headcount", "throughput"} {
		require.Contains(t, result.Samples, id)
		assert.Len(t, result.Samples[id], 100)
		require.Contains(t, result.Summaries, id)
	}
}

func TestPropagate_InterventionProducesConstantVector(t *testing.T) {
	model := chainModel()
	result, err := Propagate(model, map[string]float64{"budget": 500}, DefaultOptions())
	require.NoError(t, err)

	for _, v := range result.Samples["budget"] {
		assert.Equal(t, 500.0, v)
	}
}

func TestPropagate_UnknownInterventionIsIgnoredNotFatal(t *testing.T) {
	model := chainModel()
	_, err := Propagate(model, map[string]float64{"does-not-exist": 1}, DefaultOptions())
	assert.NoError(t, err)
}

func TestPropagate_CycleIsFatal(t *testing.T) {
	model := &domain.Model{
		Nodes: []*domain.Node{
			{ID: "a", Kind: domain.NodeEndogenous, Distribution: domain.Distribution{Kind: domain.DistNormal, Mu: 1, Sigma: 1}},
			{ID: "b", Kind: domain.NodeEndogenous, Distribution: domain.Distribution{Kind: domain.DistNormal, Mu: 1, Sigma: 1}},
		},
		Edges: []*domain.Edge{
			{Source: "a", Target: "b", Effect: domain.Effect{Kind: domain.EffectLinear}},
			{Source: "b", Target: "a", Effect: domain.Effect{Kind: domain.EffectLinear}},
		},
	}
	_, err := Propagate(model, nil, DefaultOptions())
	require.Error(t, err)
	var structErr *domain.StructuralError
	require.ErrorAs(t, err, &structErr)
}

func TestPropagate_UnknownDistributionIsFatalBeforeSampling(t *testing.T) {
	model := &domain.Model{
		Nodes: []*domain.Node{
			{ID: "a", Kind: domain.NodeExogenous, Distribution: domain.Distribution{Kind: domain.DistributionKind("bogus")}},
		},
	}
	_, err := Propagate(model, nil, DefaultOptions())
	require.Error(t, err)
}

func TestPropagate_DeterministicGivenSeed(t *testing.T) {
	model := chainModel()
	opts := DefaultOptions()
	opts.Seed = 77

	a, err := Propagate(model, nil, opts)
	require.NoError(t, err)
	b, err := Propagate(model, nil, opts)
	require.NoError(t, err)

	assert.Equal(t, a.Samples["throughput"], b.Samples["throughput"])
}

func TestPropagate_CircuitBreakerClampsToBounds(t *testing.T) {
	minV, maxV := 0.0, 10.0
	model := &domain.Model{
		Nodes: []*domain.Node{
			{
				ID:           "clamped",
				Kind:         domain.NodeExogenous,
				Distribution: domain.Distribution{Kind: domain.DistNormal, Mu: 5, Sigma: 50},
				CircuitBreakers: &domain.CircuitBreakers{
					Min: &minV,
					Max: &maxV,
				},
			},
		},
	}
	result, err := Propagate(model, nil, DefaultOptions())
	require.NoError(t, err)
	for _, v := range result.Samples["clamped"] {
		assert.GreaterOrEqual(t, v, minV)
		assert.LessOrEqual(t, v, maxV)
	}
}

func TestPropagate_RecordsSuccessMetric(t *testing.T) {
	model := chainModel()
	opts := DefaultOptions()
	opts.Metrics = metrics.NewRegistry()

	_, err := Propagate(model, nil, opts)
	require.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(opts.Metrics.PropagationsTotal.WithLabelValues("ok")))
	assert.Equal(t, uint64(1), testutil.CollectAndCount(opts.Metrics.PropagationDuration))
}

func TestPropagate_RecordsErrorMetricOnStructuralFault(t *testing.T) {
	model := &domain.Model{
		Nodes: []*domain.Node{
			{ID: "a", Kind: domain.NodeEndogenous, Distribution: domain.Distribution{Kind: domain.DistNormal, Mu: 1, Sigma: 1}},
			{ID: "b", Kind: domain.NodeEndogenous, Distribution: domain.Distribution{Kind: domain.DistNormal, Mu: 1, Sigma: 1}},
		},
		Edges: []*domain.Edge{
			{Source: "a", Target: "b", Effect: domain.Effect{Kind: domain.EffectLinear}},
			{Source: "b", Target: "a", Effect: domain.Effect{Kind: domain.EffectLinear}},
		},
	}
	opts := DefaultOptions()
	opts.Metrics = metrics.NewRegistry()

	_, err := Propagate(model, nil, opts)
	require.Error(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(opts.Metrics.PropagationsTotal.WithLabelValues("error")))
}

func TestPropagate_TerminalInterventionZerosVariance(t *testing.T) {
	model := chainModel()
	result, err := Propagate(model, map[string]float64{"throughput": 42}, DefaultOptions())
	require.NoError(t, err)
	for _, v := range result.Samples["throughput"] {
		assert.Equal(t, 42.0, v)
	}
}
