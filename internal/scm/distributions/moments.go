package distributions

import (
	"math"

	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/domain"
)

// Mean returns the analytic expectation of dist per spec section 3.2.
func Mean(dist domain.Distribution) float64 {
	switch dist.Kind {
	case domain.DistBinary:
		return clamp01(dist.P)
	case domain.DistCategorical:
		probs := safeProbs(dist.Probs)
		mean := 0.0
		for i, p := range probs {
			mean += float64(i) * p
		}
		return mean
	case domain.DistNormal:
		return dist.Mu
	case domain.DistLognormal:
		sigma := safeSigma(dist.Sigma)
		return math.Exp(dist.Mu + sigma*sigma/2)
	case domain.DistBeta, domain.DistRate:
		if dist.Alpha+dist.Beta == 0 {
			return 0
		}
		alpha, beta := safeShapeParam(dist.Alpha), safeShapeParam(dist.Beta)
		return betaMean(alpha, beta)
	case domain.DistGamma:
		rate := safeShapeParam(dist.Rate)
		return safeShapeParam(dist.Shape) / rate
	case domain.DistBounded:
		lo, hi, mode := safeBounds(dist.Min, dist.Max, dist.Mode)
		return (lo + 4*mode + hi) / 6
	case domain.DistCount:
		return safeLambda(dist.Lambda)
	default:
		return 0
	}
}

// StdDev returns the analytic standard deviation of dist per spec
// section 4.1. Bounded PERT uses the (max-min)/6 approximation rather
// than the exact reparameterized-Beta variance.
func StdDev(dist domain.Distribution) float64 {
	switch dist.Kind {
	case domain.DistBinary:
		p := clamp01(dist.P)
		return math.Sqrt(p * (1 - p))
	case domain.DistCategorical:
		probs := safeProbs(dist.Probs)
		mean := Mean(dist)
		variance := 0.0
		for i, p := range probs {
			d := float64(i) - mean
			variance += d * d * p
		}
		return math.Sqrt(variance)
	case domain.DistNormal, domain.DistLognormal:
		sigma := safeSigma(dist.Sigma)
		if dist.Kind == domain.DistNormal {
			return sigma
		}
		return math.Sqrt((math.Exp(sigma*sigma)-1)*math.Exp(2*dist.Mu+sigma*sigma))
	case domain.DistBeta, domain.DistRate:
		alpha, beta := safeShapeParam(dist.Alpha), safeShapeParam(dist.Beta)
		sum := alpha + beta
		return math.Sqrt(alpha * beta / (sum * sum * (sum + 1)))
	case domain.DistGamma:
		shape, rate := safeShapeParam(dist.Shape), safeShapeParam(dist.Rate)
		return math.Sqrt(shape) / rate
	case domain.DistBounded:
		lo, hi, _ := safeBounds(dist.Min, dist.Max, dist.Mode)
		return (hi - lo) / 6
	case domain.DistCount:
		return math.Sqrt(safeLambda(dist.Lambda))
	default:
		return 0
	}
}
