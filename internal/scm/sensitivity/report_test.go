package sensitivity

import (
	"testing"

	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatMarkdown_RendersEmptyReportSections(t *testing.T) {
	report := &domain.SensitivityReport{
		ModelTitle:  "",
		Timestamp:   "2026-08-06T00:00:00Z",
		SampleCount: 100,
	}

	out := FormatMarkdown(report)
	assert.Contains(t, out, "(untitled model)")
	assert.Contains(t, out, "## Bottlenecks")
	assert.Contains(t, out, "None detected.")
	assert.Contains(t, out, "## Strong Effects")
	assert.Contains(t, out, "None.")
}

func TestFormatMarkdown_RendersPopulatedReport(t *testing.T) {
	report := &domain.SensitivityReport{
		ModelTitle:  "budget model",
		Timestamp:   "2026-08-06T00:00:00Z",
		SampleCount: 500,
		Results: []domain.ExogenousResult{
			{
				NodeID: "budget", NodeLabel: "Budget", PriorMean: 100,
				Runs: []domain.MultiplierRun{
					{
						Multiplier: 1.5,
						Impacts: []domain.ImpactRecord{
							{NodeID: "headcount", NodeLabel: "Headcount", Baseline: 5, Intervened: 6, PctChange: 20},
						},
					},
				},
			},
		},
		Summary: domain.SensitivitySummary{
			StrongEffects: []domain.EffectClassification{
				{Source: "budget", Target: "headcount", TargetLabel: "Headcount", Overall: 15, AvgIncrease: 20, AvgDecrease: 10},
			},
			Bottlenecks: []domain.BottleneckWarning{
				{Source: "budget", TerminalNodeID: "headcount", TerminalPctChange: 0.5, SuspectedBottleneckID: "cap", SuspectedBottleneckPct: 0.1},
			},
		},
	}

	out := FormatMarkdown(report)
	assert.Contains(t, out, "budget model")
	assert.Contains(t, out, "Strong effects: 1")
	assert.Contains(t, out, "suspected bottleneck at `cap`")
	assert.Contains(t, out, "Multiplier 1.50x")
	assert.Contains(t, out, "Headcount: 5.0000 -> 6.0000")
}
