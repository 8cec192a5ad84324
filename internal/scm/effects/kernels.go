// Package effects implements the edge effect kernels of the propagation
// engine (spec section 4.2): the four ways a parent's sampled value can
// perturb a child's base draw.
package effects

import (
	"math"

	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/domain"
)

const (
	defaultCoefficient = 0.3
	defaultFactor      = 1.5
	defaultBaseline    = 1.0
	defaultSmoothness  = 2.0

	// DefaultMinClamp and DefaultMaxClamp mirror config.SCMConfig's
	// globalMinClamp/globalMaxClamp defaults (spec section 6.4) for
	// callers that use Apply directly instead of ApplyWithClamp.
	DefaultMinClamp = 0.1
	DefaultMaxClamp = 10.0
)

// Apply is ApplyWithClamp using the documented default multiplier bounds
// [0.1, 10.0].
func Apply(baseValue float64, effect domain.Effect, parentValue, parentPriorMean float64) float64 {
	return ApplyWithClamp(baseValue, effect, parentValue, parentPriorMean, DefaultMinClamp, DefaultMaxClamp)
}

// ApplyWithClamp dispatches on effect.Kind and returns the child value
// after the parent's influence has been folded in. minClamp/maxClamp
// bound every kernel's internal multiplier (config.SCMConfig's
// globalMinClamp/globalMaxClamp). Non-finite inputs pass through
// unchanged, and a non-finite result falls back to baseValue, per the
// guards that apply uniformly to every kernel.
func ApplyWithClamp(baseValue float64, effect domain.Effect, parentValue, parentPriorMean, minClamp, maxClamp float64) float64 {
	if !isFinite(baseValue) || !isFinite(parentValue) || !isFinite(parentPriorMean) {
		return baseValue
	}

	var out float64
	switch effect.Kind {
	case domain.EffectLinear:
		out = linear(baseValue, effect, parentValue, parentPriorMean, minClamp, maxClamp)
	case domain.EffectMultiplicative:
		out = multiplicative(baseValue, effect, parentValue, parentPriorMean, minClamp, maxClamp)
	case domain.EffectThreshold:
		out = threshold(baseValue, effect, parentValue, minClamp, maxClamp)
	case domain.EffectLogistic:
		out = logistic(baseValue, effect, parentValue)
	default:
		return baseValue
	}

	if !isFinite(out) {
		return baseValue
	}
	return out
}

func linear(base float64, e domain.Effect, parentValue, parentPriorMean, minClamp, maxClamp float64) float64 {
	coefficient := defaultCoefficient
	if e.Coefficient != nil {
		coefficient = *e.Coefficient
	}

	var deviation float64
	if math.Abs(parentPriorMean) < 0.001 {
		return base + coefficient*parentValue*0.01
	}
	deviation = (parentValue - parentPriorMean) / parentPriorMean

	if e.Saturation > 0 {
		deviation = e.Saturation * math.Tanh(deviation/e.Saturation)
	}

	multiplier := clamp(1+coefficient*deviation, minClamp, maxClamp)
	return base * multiplier
}

func multiplicative(base float64, e domain.Effect, parentValue, parentPriorMean, minClamp, maxClamp float64) float64 {
	baseline := defaultBaseline
	if e.Baseline != nil {
		baseline = *e.Baseline
	}
	if parentValue <= 0 || baseline <= 0 {
		return base
	}

	factor := defaultFactor
	if e.Factor != nil {
		factor = *e.Factor
	}

	doublings := math.Log2(parentValue / baseline)
	multiplier := clamp(math.Pow(factor, doublings), minClamp, maxClamp)
	return base * multiplier
}

func threshold(base float64, e domain.Effect, parentValue, minClamp, maxClamp float64) float64 {
	smoothness := defaultSmoothness
	if e.Smoothness != nil {
		smoothness = *e.Smoothness
	}

	w := 1 / (1 + math.Exp(-smoothness*(parentValue-e.Cutoff)))
	effCoef := e.Below*(1-w) + e.Above*w

	denom := math.Abs(e.Cutoff)
	if denom < 1 {
		denom = 1
	}
	deviation := (parentValue - e.Cutoff) / denom

	multiplier := clamp(1+effCoef*deviation, minClamp, maxClamp)
	return base * multiplier
}

func logistic(base float64, e domain.Effect, parentValue float64) float64 {
	coefficient := defaultCoefficient
	if e.Coefficient != nil {
		coefficient = *e.Coefficient
	}

	pClamped := clamp(base, 0.001, 0.999)
	logit := math.Log(pClamped / (1 - pClamped))
	newLogit := clamp(logit+coefficient*(parentValue-e.Threshold), -10, 10)
	return 1 / (1 + math.Exp(-newLogit))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
