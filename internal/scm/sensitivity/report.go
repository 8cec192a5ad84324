package sensitivity

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/domain"
)

// FormatMarkdown renders report as Markdown with the documented section
// order: Summary, Bottlenecks, Strong, Weak, Asymmetric, Detailed
// Results. The layout is a convention, not a strict contract (spec
// section 6.3).
func FormatMarkdown(report *domain.SensitivityReport) string {
	var b strings.Builder

	title := report.ModelTitle
	if title == "" {
		title = "(untitled model)"
	}
	fmt.Fprintf(&b, "# Sensitivity Report: %s\n\n", title)
	fmt.Fprintf(&b, "Generated %s, %d samples per run.\n\n", report.Timestamp, report.SampleCount)

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Strong effects: %d\n", len(report.Summary.StrongEffects))
	fmt.Fprintf(&b, "- Weak effects: %d\n", len(report.Summary.WeakEffects))
	fmt.Fprintf(&b, "- Asymmetric effects: %d\n", len(report.Summary.AsymmetricEffects))
	fmt.Fprintf(&b, "- Bottleneck warnings: %d\n\n", len(report.Summary.Bottlenecks))

	b.WriteString("## Bottlenecks\n\n")
	if len(report.Summary.Bottlenecks) == 0 {
		b.WriteString("None detected.\n\n")
	} else {
		for _, w := range report.Summary.Bottlenecks {
			fmt.Fprintf(&b, "- `%s`: terminal `%s` moved only %.2f%% under a 1.5x perturbation", w.Source, w.TerminalNodeID, w.TerminalPctChange)
			if w.SuspectedBottleneckID != "" {
				fmt.Fprintf(&b, "; suspected bottleneck at `%s` (%.2f%%)", w.SuspectedBottleneckID, w.SuspectedBottleneckPct)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	writeClassificationList(&b, "Strong Effects", report.Summary.StrongEffects)
	writeClassificationList(&b, "Weak Effects", report.Summary.WeakEffects)
	writeClassificationList(&b, "Asymmetric Effects", report.Summary.AsymmetricEffects)

	b.WriteString("## Detailed Results\n\n")
	for _, r := range report.Results {
		fmt.Fprintf(&b, "### %s (prior mean %.4f)\n\n", r.NodeLabel, r.PriorMean)
		for _, run := range r.Runs {
			fmt.Fprintf(&b, "Multiplier %.2fx:\n\n", run.Multiplier)
			for _, impact := range run.Impacts {
				fmt.Fprintf(&b, "- %s: %.4f -> %.4f (%+.2f%%)\n", impact.NodeLabel, impact.Baseline, impact.Intervened, impact.PctChange)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func writeClassificationList(b *strings.Builder, heading string, list []domain.EffectClassification) {
	fmt.Fprintf(b, "## %s\n\n", heading)
	if len(list) == 0 {
		b.WriteString("None.\n\n")
		return
	}
	for _, ec := range list {
		fmt.Fprintf(b, "- `%s` -> `%s` (%s): overall %.2f%% (increase %.2f%%, decrease %.2f%%)\n",
			ec.Source, ec.Target, ec.TargetLabel, ec.Overall, ec.AvgIncrease, ec.AvgDecrease)
	}
	b.WriteString("\n")
}
