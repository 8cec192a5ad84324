// Package sensitivity implements the sensitivity analyzer of spec
// section 4.4: it perturbs every exogenous node at four magnitudes and
// classifies how strongly, weakly, and asymmetrically the perturbation
// propagates to the rest of the model.
package sensitivity

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/distributions"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/domain"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/metrics"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/propagation"
	"golang.org/x/sync/errgroup"
)

// multipliers are applied in this fixed order everywhere: two decrease
// multipliers followed by two increase multipliers (spec section 4.4
// step 2-3).
var multipliers = []float64{0.5, 0.75, 1.25, 1.5}

const (
	strongThreshold      = 5.0
	weakThreshold         = 1.0
	asymmetryRatio        = 2.0
	bottleneckTerminalPct = 10.0
	bottleneckLinkPct     = 5.0
	maxClassificationList = 10
)

// Options configures Analyze. Now lets callers stamp the report
// with a fixed clock (workflow scripts and tests can't call time.Now
// mid-run); it defaults to returning the empty string, leaving
// timestamping to the caller of Analyze.
type Options struct {
	SampleCount int
	Propagation propagation.Options
	Now         func() string

	// Metrics is optional; when set, Analyze records its own duration and
	// run count independently of any per-propagate() metrics recorded via
	// Propagation.Metrics.
	Metrics *metrics.Registry
}

// DefaultOptions mirrors propagation.DefaultOptions for the sample
// count used by every run.
func DefaultOptions() Options {
	return Options{
		SampleCount: 100,
		Propagation: propagation.DefaultOptions(),
		Now:         func() string { return "" },
	}
}

// Analyze is the public contract of spec section 4.4.
func Analyze(model *domain.Model, opts Options) (*domain.SensitivityReport, error) {
	if opts.Metrics != nil {
		start := time.Now()
		defer func() {
			opts.Metrics.SensitivityDuration.Observe(time.Since(start).Seconds())
			opts.Metrics.SensitivityRunsTotal.Inc()
		}()
	}
	if opts.SampleCount <= 0 {
		opts.SampleCount = DefaultOptions().SampleCount
	}
	if opts.Now == nil {
		opts.Now = func() string { return "" }
	}
	popts := opts.Propagation
	popts.SampleCount = opts.SampleCount

	baseline, err := propagation.Propagate(model, nil, popts)
	if err != nil {
		return nil, err
	}
	model.Index()

	var exogenous []*domain.Node
	for _, n := range model.Nodes {
		if model.IsExogenous(n) {
			exogenous = append(exogenous, n)
		}
	}
	sort.Slice(exogenous, func(i, j int) bool { return exogenous[i].ID < exogenous[j].ID })

	results := make([]domain.ExogenousResult, 0, len(exogenous))
	classifications := map[[2]string]*aggregate{}
	var bottlenecks []domain.BottleneckWarning

	for _, x := range exogenous {
		priorMean := distributions.Mean(x.Distribution)
		reachable := reachableFrom(model, x.ID)
		if len(reachable) == 0 {
			continue
		}

		result := domain.ExogenousResult{NodeID: x.ID, NodeLabel: x.Label, PriorMean: priorMean}

		// The four multiplier runs for a given exogenous node are
		// mutually independent (spec section 4.4 step 2) and each holds
		// its own RNG substream, so they run concurrently.
		runs := make([]*domain.PropagationResult, len(multipliers))
		g, _ := errgroup.WithContext(context.Background())
		for i, m := range multipliers {
			i, m := i, m
			g.Go(func() error {
				run, err := propagation.Propagate(model, map[string]float64{x.ID: priorMean * m}, popts)
				if err != nil {
					return err
				}
				runs[i] = run
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		for i, m := range multipliers {
			run := runs[i]

			impacts := make([]domain.ImpactRecord, 0, len(reachable))
			for _, d := range reachable {
				node := model.NodeByID(d)
				base := baseline.Summaries[d].Mean
				intervened := run.Summaries[d].Mean
				abs := intervened - base
				pct := 0.0
				if base != 0 {
					pct = abs / math.Abs(base) * 100
				}
				impacts = append(impacts, domain.ImpactRecord{
					NodeID: d, NodeLabel: node.Label,
					Baseline: base, Intervened: intervened,
					AbsoluteChange: abs, PctChange: pct, Units: node.Units,
				})

				key := [2]string{x.ID, d}
				agg := classifications[key]
				if agg == nil {
					agg = &aggregate{targetLabel: node.Label}
					classifications[key] = agg
				}
				agg.record(m, pct)
			}
			result.Runs = append(result.Runs, domain.MultiplierRun{Multiplier: m, Impacts: impacts})

			if m == 1.5 {
				bottlenecks = append(bottlenecks, detectBottlenecks(model, x.ID, reachable, impacts)...)
			}
		}

		results = append(results, result)
	}

	summary := classify(classifications)
	summary.Bottlenecks = bottlenecks

	return &domain.SensitivityReport{
		ModelTitle:  model.Title,
		Timestamp:   opts.Now(),
		SampleCount: opts.SampleCount,
		Results:     results,
		Summary:     summary,
	}, nil
}

// aggregate accumulates the |pct change| observations needed for
// spec section 4.4 step 3's avg_increase/avg_decrease/overall.
type aggregate struct {
	targetLabel string
	increases   []float64
	decreases   []float64
}

func (a *aggregate) record(multiplier, pct float64) {
	abs := math.Abs(pct)
	if multiplier > 1 {
		a.increases = append(a.increases, abs)
	} else {
		a.decreases = append(a.decreases, abs)
	}
}

func meanOf(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func classify(classifications map[[2]string]*aggregate) domain.SensitivitySummary {
	var strong, weak, asymmetric []domain.EffectClassification

	for key, agg := range classifications {
		avgInc := meanOf(agg.increases)
		avgDec := meanOf(agg.decreases)
		overall := (avgInc + avgDec) / 2

		ec := domain.EffectClassification{
			Source: key[0], Target: key[1], TargetLabel: agg.targetLabel,
			AvgIncrease: avgInc, AvgDecrease: avgDec, Overall: overall,
		}

		switch {
		case overall > strongThreshold:
			strong = append(strong, ec)
		case overall < weakThreshold:
			weak = append(weak, ec)
		}

		if avgInc > 0 && avgDec > 0 {
			larger, smaller := avgInc, avgDec
			if smaller > larger {
				larger, smaller = smaller, larger
			}
			if smaller > 0 && larger/smaller > asymmetryRatio {
				asymmetric = append(asymmetric, ec)
			}
		}
	}

	sort.Slice(strong, func(i, j int) bool { return strong[i].Overall > strong[j].Overall })
	sort.Slice(weak, func(i, j int) bool { return weak[i].Overall < weak[j].Overall })
	sort.Slice(asymmetric, func(i, j int) bool {
		return asymmetric[i].Source+asymmetric[i].Target < asymmetric[j].Source+asymmetric[j].Target
	})

	return domain.SensitivitySummary{
		StrongEffects:     truncate(strong, maxClassificationList),
		WeakEffects:       truncate(weak, maxClassificationList),
		AsymmetricEffects: truncate(asymmetric, maxClassificationList),
	}
}

func truncate(list []domain.EffectClassification, n int) []domain.EffectClassification {
	if len(list) > n {
		return list[:n]
	}
	return list
}

// detectBottlenecks implements spec section 4.4 step 5 for one
// exogenous node's m=1.5 run.
func detectBottlenecks(model *domain.Model, source string, reachable []string, impacts []domain.ImpactRecord) []domain.BottleneckWarning {
	pctByNode := make(map[string]float64, len(impacts))
	for _, r := range impacts {
		pctByNode[r.NodeID] = r.PctChange
	}

	var warnings []domain.BottleneckWarning
	for _, id := range reachable {
		node := model.NodeByID(id)
		if !model.IsTerminal(node) {
			continue
		}
		terminalPct := math.Abs(pctByNode[id])
		if terminalPct >= bottleneckTerminalPct {
			continue
		}

		suspectID, suspectPct, found := "", math.Inf(1), false
		for _, other := range reachable {
			if other == id {
				continue
			}
			otherNode := model.NodeByID(other)
			if model.IsTerminal(otherNode) {
				continue
			}
			pct := math.Abs(pctByNode[other])
			if pct < suspectPct {
				suspectPct = pct
				suspectID = other
				found = true
			}
		}

		w := domain.BottleneckWarning{Source: source, TerminalNodeID: id, TerminalPctChange: terminalPct}
		if found && suspectPct < bottleneckLinkPct {
			w.SuspectedBottleneckID = suspectID
			w.SuspectedBottleneckPct = suspectPct
		}
		warnings = append(warnings, w)
	}
	return warnings
}
