package propagation

import (
	"testing"

	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopologicalOrder_RespectsDependencies(t *testing.T) {
	model := chainModel()
	model.Index()
	order, err := topologicalOrder(model)
	require.NoError(t, err)

	pos := map[string]int{}
	for i, id := range order {
		pos[id] = i
	}
	assert.Less(t, pos["budget"], pos["headcount"])
	assert.Less(t, pos["headcount"], pos["throughput"])
}

func TestTopologicalOrder_IsDeterministicAcrossRuns(t *testing.T) {
	model := chainModel()
	model.Index()
	a, err := topologicalOrder(model)
	require.NoError(t, err)
	b, err := topologicalOrder(model)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTopologicalOrder_BreaksTiesLexicographically(t *testing.T) {
	model := &domain.Model{
		Nodes: []*domain.Node{
			{ID: "zeta"},
			{ID: "alpha"},
			{ID: "mu"},
		},
	}
	model.Index()
	order, err := topologicalOrder(model)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mu", "zeta"}, order)
}

func TestTopologicalOrder_DetectsCycle(t *testing.T) {
	model := &domain.Model{
		Nodes: []*domain.Node{{ID: "a"}, {ID: "b"}},
		Edges: []*domain.Edge{
			{Source: "a", Target: "b"},
			{Source: "b", Target: "a"},
		},
	}
	model.Index()
	_, err := topologicalOrder(model)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCycle)
}
