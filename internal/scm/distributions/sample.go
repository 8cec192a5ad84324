// Package distributions implements Component A of the simulation core:
// drawing SampleVectors from parameterized univariate distributions and
// deriving their analytic moments and empirical density curves.
//
// Every Sample call is guaranteed to return a vector of exactly n finite
// values. Invalid parameters (sigma<=0, alpha<=0, min>=max, ...) are
// clamped to safe minima rather than rejected; a sampler that cannot
// converge within its iteration budget falls back to the distribution's
// analytic mean for the affected draw (spec section 4.1, section 7).
package distributions

import (
	"math"
	"math/rand"

	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/domain"
)

const rejectionBudget = 100

// Sample draws n i.i.d. values from dist using r as the entropy source.
func Sample(dist domain.Distribution, n int, r *rand.Rand) domain.SampleVector {
	out := make(domain.SampleVector, n)
	switch dist.Kind {
	case domain.DistBinary:
		p := clamp01(dist.P)
		for i := range out {
			out[i] = sampleBinary(p, r)
		}
	case domain.DistCategorical:
		probs := safeProbs(dist.Probs)
		for i := range out {
			out[i] = sampleCategorical(probs, r)
		}
	case domain.DistNormal:
		mu, sigma := dist.Mu, safeSigma(dist.Sigma)
		for i := range out {
			out[i] = mu + sigma*sampleStdNormal(r)
		}
	case domain.DistLognormal:
		mu, sigma := dist.Mu, safeSigma(dist.Sigma)
		for i := range out {
			out[i] = math.Exp(mu + sigma*sampleStdNormal(r))
		}
	case domain.DistBeta:
		alpha, beta := safeShapeParam(dist.Alpha), safeShapeParam(dist.Beta)
		mean := betaMean(alpha, beta)
		for i := range out {
			out[i] = sampleBeta(alpha, beta, mean, r)
		}
	case domain.DistRate:
		alpha, beta := safeShapeParam(dist.Alpha), safeShapeParam(dist.Beta)
		mean := betaMean(alpha, beta)
		for i := range out {
			out[i] = sampleBeta(alpha, beta, mean, r)
		}
	case domain.DistGamma:
		shape, rate := safeShapeParam(dist.Shape), safeShapeParam(dist.Rate)
		mean := shape / rate
		for i := range out {
			out[i] = sampleGamma(shape, rate, mean, r)
		}
	case domain.DistBounded:
		lo, hi, mode := safeBounds(dist.Min, dist.Max, dist.Mode)
		out2 := sampleBounded(lo, hi, mode, n, r)
		copy(out, out2)
	case domain.DistCount:
		lambda := safeLambda(dist.Lambda)
		for i := range out {
			out[i] = samplePoisson(lambda, r)
		}
	default:
		m := Mean(dist)
		for i := range out {
			out[i] = m
		}
	}

	for i, v := range out {
		if !isFinite(v) {
			out[i] = Mean(dist)
		}
	}
	return out
}

func sampleBinary(p float64, r *rand.Rand) float64 {
	if r.Float64() < p {
		return 1
	}
	return 0
}

func sampleCategorical(probs []float64, r *rand.Rand) float64 {
	if len(probs) == 0 {
		return 0
	}
	u := r.Float64()
	cum := 0.0
	for i, p := range probs {
		cum += p
		if u <= cum {
			return float64(i)
		}
	}
	return float64(len(probs) - 1)
}

// sampleStdNormal draws from N(0,1) via the polar (Marsaglia) form of
// Box-Muller, avoiding the trig calls of the basic form.
func sampleStdNormal(r *rand.Rand) float64 {
	for {
		u := 2*r.Float64() - 1
		v := 2*r.Float64() - 1
		s := u*u + v*v
		if s > 0 && s < 1 {
			return u * math.Sqrt(-2*math.Log(s)/s)
		}
	}
}

// sampleBeta draws from Beta(alpha,beta). For alpha,beta>1 it uses a
// rejection sampler against the mode; otherwise Johnk's algorithm. Both
// are capped at rejectionBudget iterations and fall back to mean.
func sampleBeta(alpha, beta, mean float64, r *rand.Rand) float64 {
	if alpha > 1 && beta > 1 {
		return betaRejection(alpha, beta, mean, r)
	}
	return betaJohnk(alpha, beta, mean, r)
}

func betaRejection(alpha, beta, mean float64, r *rand.Rand) float64 {
	mode := (alpha - 1) / (alpha + beta - 2)
	peak := betaPDFUnnorm(mode, alpha, beta)
	if peak <= 0 || !isFinite(peak) {
		peak = 1
	}
	for i := 0; i < rejectionBudget; i++ {
		x := r.Float64()
		y := r.Float64() * peak
		if y <= betaPDFUnnorm(x, alpha, beta) {
			return x
		}
	}
	return mean
}

func betaPDFUnnorm(x, alpha, beta float64) float64 {
	if x <= 0 || x >= 1 {
		return 0
	}
	return math.Pow(x, alpha-1) * math.Pow(1-x, beta-1)
}

func betaJohnk(alpha, beta, mean float64, r *rand.Rand) float64 {
	for i := 0; i < rejectionBudget; i++ {
		u := r.Float64()
		v := r.Float64()
		x := math.Pow(u, 1/alpha)
		y := math.Pow(v, 1/beta)
		if x+y <= 1 && x+y > 0 {
			return x / (x + y)
		}
	}
	return mean
}

// sampleGamma draws from Gamma(shape,rate) (mean = shape/rate). shape>=1
// uses Marsaglia-Tsang directly; shape<1 boosts to shape+1 and scales
// down by U^(1/shape). Either path returns mean when Marsaglia-Tsang
// exhausts its iteration budget.
func sampleGamma(shape, rate, mean float64, r *rand.Rand) float64 {
	if shape < 1 {
		u := r.Float64()
		if u <= 0 {
			u = 1e-12
		}
		g := marsagliaTsang(shape+1, math.NaN(), r)
		if math.IsNaN(g) {
			return mean
		}
		return g * math.Pow(u, 1/shape) / rate
	}
	return marsagliaTsang(shape, shape, r) / rate
}

// marsagliaTsang draws from Gamma(shape,1); unnormalizedMean is returned
// on iteration exhaustion (shape, the Gamma(shape,1) mean, or NaN when
// the caller needs to detect exhaustion).
func marsagliaTsang(shape, unnormalizedMean float64, r *rand.Rand) float64 {
	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9*d)
	for i := 0; i < rejectionBudget; i++ {
		x := sampleStdNormal(r)
		v := 1 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := r.Float64()
		if u < 1-0.0331*x*x*x*x {
			return d * v
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v
		}
	}
	return unnormalizedMean
}

func sampleBounded(lo, hi, mode float64, n int, r *rand.Rand) domain.SampleVector {
	rng := hi - lo
	mu := (lo + 4*mode + hi) / 6
	alpha := 1 + 4*(mu-lo)/rng
	beta := 1 + 4*(hi-mu)/rng
	alpha = safeShapeParam(alpha)
	beta = safeShapeParam(beta)
	betaMeanNorm := betaMean(alpha, beta)
	out := make(domain.SampleVector, n)
	for i := range out {
		b := sampleBeta(alpha, beta, betaMeanNorm, r)
		out[i] = lo + b*rng
	}
	return out
}

// samplePoisson draws from Poisson(lambda): direct (Knuth) enumeration
// for lambda<30, normal approximation otherwise.
func samplePoisson(lambda float64, r *rand.Rand) float64 {
	if lambda < 30 {
		l := math.Exp(-lambda)
		k := 0
		p := 1.0
		for {
			k++
			p *= r.Float64()
			if p <= l {
				break
			}
			if k > 10000 {
				break
			}
		}
		return float64(k - 1)
	}
	v := lambda + math.Sqrt(lambda)*sampleStdNormal(r)
	v = math.Round(v)
	if v < 0 {
		v = 0
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
