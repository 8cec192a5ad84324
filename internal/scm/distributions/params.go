package distributions

// Clamping floors used when a caller-supplied parameter is out of its
// valid domain (spec section 4.1: "clamps parameters to safe minima
// rather than failing").
const (
	minSigma      = 0.01
	minShapeParam = 0.1
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func safeSigma(sigma float64) float64 {
	if sigma < minSigma {
		return minSigma
	}
	return sigma
}

func safeShapeParam(v float64) float64 {
	if v < minShapeParam {
		return minShapeParam
	}
	return v
}

func safeLambda(lambda float64) float64 {
	if lambda <= 0 {
		return minShapeParam
	}
	return lambda
}

func safeBounds(min, max, mode float64) (lo, hi, m float64) {
	lo, hi = min, max
	if lo >= hi {
		hi = lo + 1
	}
	m = mode
	if m < lo {
		m = lo
	}
	if m > hi {
		m = hi
	}
	return lo, hi, m
}

// safeProbs normalizes a categorical probability vector, substituting a
// uniform distribution when the input is empty or sums to zero.
func safeProbs(probs []float64) []float64 {
	if len(probs) == 0 {
		return nil
	}
	sum := 0.0
	for _, p := range probs {
		if p > 0 {
			sum += p
		}
	}
	out := make([]float64, len(probs))
	if sum <= 0 {
		u := 1.0 / float64(len(probs))
		for i := range out {
			out[i] = u
		}
		return out
	}
	for i, p := range probs {
		if p < 0 {
			p = 0
		}
		out[i] = p / sum
	}
	return out
}

func betaMean(alpha, beta float64) float64 {
	if alpha+beta == 0 {
		return 0
	}
	return alpha / (alpha + beta)
}
