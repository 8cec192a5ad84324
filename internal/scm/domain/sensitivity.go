package domain

// ImpactRecord is the effect of one intervention run on one downstream
// node (spec section 6.3).
type ImpactRecord struct {
	NodeID         string  `json:"nodeId"`
	NodeLabel      string  `json:"nodeLabel"`
	Baseline       float64 `json:"baseline"`
	Intervened     float64 `json:"intervened"`
	AbsoluteChange float64 `json:"absoluteChange"`
	PctChange      float64 `json:"pctChange"`
	Units          string  `json:"units,omitempty"`
}

// MultiplierRun is the full downstream impact list for one exogenous
// node at one perturbation multiplier.
type MultiplierRun struct {
	Multiplier float64        `json:"multiplier"`
	Impacts    []ImpactRecord `json:"impacts"`
}

// ExogenousResult groups every multiplier run performed for one
// exogenous source node.
type ExogenousResult struct {
	NodeID    string          `json:"nodeId"`
	NodeLabel string          `json:"nodeLabel"`
	PriorMean float64         `json:"priorMean"`
	Runs      []MultiplierRun `json:"runs"`
}

// EffectClassification is the aggregated strength of one (source,
// target) pair across the four multipliers (spec section 4.4 step 3-4).
type EffectClassification struct {
	Source      string  `json:"source"`
	Target      string  `json:"target"`
	TargetLabel string  `json:"targetLabel"`
	AvgIncrease float64 `json:"avgIncrease"`
	AvgDecrease float64 `json:"avgDecrease"`
	Overall     float64 `json:"overall"`
}

// BottleneckWarning flags a terminal node whose response to a large
// (m=1.5) perturbation was surprisingly small, along with the weakest
// link on the path that likely absorbed the signal.
type BottleneckWarning struct {
	Source                 string  `json:"source"`
	TerminalNodeID         string  `json:"terminalNodeId"`
	TerminalPctChange      float64 `json:"terminalPctChange"`
	SuspectedBottleneckID  string  `json:"suspectedBottleneckId,omitempty"`
	SuspectedBottleneckPct float64 `json:"suspectedBottleneckPct,omitempty"`
}

// SensitivitySummary is the classification rollup of §4.4 step 6: the
// strong, weak and asymmetric lists are sorted and truncated to at most
// 10 entries; bottlenecks are kept in detection order and not truncated.
type SensitivitySummary struct {
	StrongEffects     []EffectClassification `json:"strongEffects"`
	WeakEffects       []EffectClassification `json:"weakEffects"`
	AsymmetricEffects []EffectClassification `json:"asymmetricEffects"`
	Bottlenecks       []BottleneckWarning     `json:"bottlenecks"`
}

// SensitivityReport is the output of analyze() (spec section 6.3).
type SensitivityReport struct {
	ModelTitle  string              `json:"modelTitle"`
	Timestamp   string              `json:"timestamp"`
	SampleCount int                 `json:"sampleCount"`
	Results     []ExogenousResult   `json:"results"`
	Summary     SensitivitySummary  `json:"summary"`
}
