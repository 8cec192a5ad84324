package sensitivity

import "github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/domain"

// reachableFrom returns every node id reachable from source by a
// forward breadth-first walk over out-edges, excluding source itself.
// Order is deterministic: BFS visiting order over the model's edge
// declaration order, first-seen-wins for ids reached by multiple paths.
func reachableFrom(model *domain.Model, source string) []string {
	visited := map[string]bool{source: true}
	queue := []string{source}
	var order []string

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, e := range model.OutEdges(id) {
			if visited[e.Target] {
				continue
			}
			visited[e.Target] = true
			order = append(order, e.Target)
			queue = append(queue, e.Target)
		}
	}
	return order
}
