package propagation

import (
	"sort"

	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/domain"
)

// topologicalOrder runs Kahn's algorithm over model, breaking ties by
// lexicographic node id so that the emitted order — and therefore the
// rng.Split index assigned to each node — is a pure function of the
// model's structure (spec section 4.3 step 1).
func topologicalOrder(model *domain.Model) ([]string, error) {
	inDegree := make(map[string]int, len(model.Nodes))
	for _, n := range model.Nodes {
		inDegree[n.ID] = 0
	}
	for _, e := range model.Edges {
		inDegree[e.Target]++
	}

	queue := make([]string, 0, len(model.Nodes))
	for _, n := range model.Nodes {
		if inDegree[n.ID] == 0 {
			queue = append(queue, n.ID)
		}
	}
	sort.Strings(queue)

	order := make([]string, 0, len(model.Nodes))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)

		for _, e := range model.OutEdges(id) {
			inDegree[e.Target]--
			if inDegree[e.Target] == 0 {
				queue = append(queue, e.Target)
			}
		}
		sort.Strings(queue)
	}

	if len(order) != len(model.Nodes) {
		return nil, domain.NewStructuralError(domain.ErrCycle, "cycle",
			"model graph contains a cycle; topological sort could not visit every node")
	}
	return order, nil
}
