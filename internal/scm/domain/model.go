package domain

import "fmt"

// CircuitBreakers holds the optional per-node stabilization policy from
// spec section 3.1. A nil PriorWeight or MaxStdDevRatio falls back to the
// engine-wide default in propagation.Options at propagation time; a nil
// Min or Max leaves that side unclamped. See resolveBreakers in package
// propagation.
type CircuitBreakers struct {
	Min            *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max            *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	PriorWeight    *float64 `json:"priorWeight,omitempty" yaml:"priorWeight,omitempty"`
	MaxStdDevRatio *float64 `json:"maxStdDevRatio,omitempty" yaml:"maxStdDevRatio,omitempty"`
}

// Node is a vertex of the causal graph.
type Node struct {
	ID              string           `json:"id" yaml:"id"`
	Label           string           `json:"label" yaml:"label"`
	Description     string           `json:"description,omitempty" yaml:"description,omitempty"`
	Units           string           `json:"units,omitempty" yaml:"units,omitempty"`
	Zone            string           `json:"zone,omitempty" yaml:"zone,omitempty"`
	Shape           string           `json:"shape,omitempty" yaml:"shape,omitempty"`
	Kind            NodeKind         `json:"type" yaml:"type"`
	Distribution    Distribution     `json:"distribution" yaml:"distribution"`
	CircuitBreakers *CircuitBreakers `json:"circuitBreakers,omitempty" yaml:"circuitBreakers,omitempty"`
}

// Edge is a directed arc carrying an effect function from Source to Target.
type Edge struct {
	Source       string `json:"source" yaml:"source"`
	Target       string `json:"target" yaml:"target"`
	Relationship string `json:"relationship,omitempty" yaml:"relationship,omitempty"`
	Style        string `json:"style,omitempty" yaml:"style,omitempty"`
	Weight       float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
	Label        string `json:"label,omitempty" yaml:"label,omitempty"`
	Effect       Effect `json:"effect" yaml:"effect"`
}

// Model is the frozen description handed to the engine. Zones and
// KeyInsights are pass-through metadata the core never reads.
type Model struct {
	Title       string                   `json:"title,omitempty" yaml:"title,omitempty"`
	Description string                   `json:"description,omitempty" yaml:"description,omitempty"`
	Nodes       []*Node                  `json:"nodes" yaml:"nodes"`
	Edges       []*Edge                  `json:"edges" yaml:"edges"`
	Zones       []map[string]interface{} `json:"zones,omitempty" yaml:"zones,omitempty"`
	KeyInsights []string                 `json:"keyInsights,omitempty" yaml:"keyInsights,omitempty"`

	nodeIndex map[string]*Node
	outEdges  map[string][]*Edge
	inEdges   map[string][]*Edge
}

// Index builds the node-lookup and adjacency maps used by every
// downstream package. It must be called (directly, or via Validate)
// before NodeByID/OutEdges/InEdges are used.
func (m *Model) Index() {
	m.nodeIndex = make(map[string]*Node, len(m.Nodes))
	m.outEdges = make(map[string][]*Edge, len(m.Nodes))
	m.inEdges = make(map[string][]*Edge, len(m.Nodes))

	for _, n := range m.Nodes {
		m.nodeIndex[n.ID] = n
	}
	for _, e := range m.Edges {
		m.outEdges[e.Source] = append(m.outEdges[e.Source], e)
		m.inEdges[e.Target] = append(m.inEdges[e.Target], e)
	}
}

// NodeByID returns the node with the given id, or nil.
func (m *Model) NodeByID(id string) *Node {
	return m.nodeIndex[id]
}

// OutEdges returns the edges leaving id, in model declaration order.
func (m *Model) OutEdges(id string) []*Edge {
	return m.outEdges[id]
}

// InEdges returns the edges entering id, sorted by source id so that
// multi-parent kernel composition order is deterministic regardless of
// declaration order (spec section 9's open question on in-edge ordering).
func (m *Model) InEdges(id string) []*Edge {
	edges := m.inEdges[id]
	sorted := make([]*Edge, len(edges))
	copy(sorted, edges)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1].Source > sorted[j].Source; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	return sorted
}

// IsExogenous reports whether n should be sampled from its prior rather
// than derived from parents: either explicitly tagged exogenous, or
// simply having no in-edges (spec section 4.3 step 2).
func (m *Model) IsExogenous(n *Node) bool {
	return n.Kind == NodeExogenous || len(m.inEdges[n.ID]) == 0
}

// IsTerminal reports whether n has no out-edges.
func (m *Model) IsTerminal(n *Node) bool {
	return len(m.outEdges[n.ID]) == 0
}

// Validate indexes the model and reports the first structural fault
// found: a duplicate node id, an edge referencing a missing node, or an
// unrecognized distribution/effect tag. It does not check acyclicity;
// that is discovered by the topological sort in propagation.Propagate.
func (m *Model) Validate() error {
	m.Index()

	seen := make(map[string]bool, len(m.Nodes))
	for _, n := range m.Nodes {
		if seen[n.ID] {
			return NewStructuralError(ErrDuplicateNode, "duplicate_node",
				fmt.Sprintf("node id %q appears more than once", n.ID))
		}
		seen[n.ID] = true

		if !KnownDistributionKind(n.Distribution.Kind) {
			return NewStructuralError(ErrUnknownDistribution, "unknown_distribution",
				fmt.Sprintf("node %q has unrecognized distribution type %q", n.ID, n.Distribution.Kind))
		}
	}

	for i, e := range m.Edges {
		if m.nodeIndex[e.Source] == nil {
			return NewStructuralError(ErrMissingNode, "missing_node",
				fmt.Sprintf("edge %d references unknown source node %q", i, e.Source))
		}
		if m.nodeIndex[e.Target] == nil {
			return NewStructuralError(ErrMissingNode, "missing_node",
				fmt.Sprintf("edge %d references unknown target node %q", i, e.Target))
		}
		if !KnownEffectKind(e.Effect.Kind) {
			return NewStructuralError(ErrUnknownEffect, "unknown_effect",
				fmt.Sprintf("edge %d (%s->%s) has unrecognized effect type %q", i, e.Source, e.Target, e.Effect.Kind))
		}
	}

	return nil
}
