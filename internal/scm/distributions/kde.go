package distributions

import (
	"math"
	"sort"

	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/domain"
)

// DefaultKDEPoints is the resolution used when a caller does not override
// config.SCMConfig.KDEPointCount.
const DefaultKDEPoints = 50

// SamplesToKDE builds the derived DistributionSummary for a SampleVector:
// mean, stddev, five percentiles, and a Gaussian KDE curve with
// Silverman's rule-of-thumb bandwidth (spec section 4.1).
func SamplesToKDE(samples domain.SampleVector, numPoints int) domain.DistributionSummary {
	if numPoints <= 0 {
		numPoints = DefaultKDEPoints
	}

	finite := make([]float64, 0, len(samples))
	for _, v := range samples {
		if isFinite(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return domain.DistributionSummary{
			Points: []domain.KDEPoint{{X: 0, Density: 1}},
			Mean:   0,
			StdDev: 1,
		}
	}

	sort.Float64s(finite)
	n := len(finite)

	mean := 0.0
	for _, v := range finite {
		mean += v
	}
	mean /= float64(n)

	variance := 0.0
	for _, v := range finite {
		d := v - mean
		variance += d * d
	}
	stddev := math.Sqrt(variance / float64(n))
	if stddev < 1 {
		stddev = 1
	}

	q1 := percentileOf(finite, 0.25)
	q3 := percentileOf(finite, 0.75)
	iqr := q3 - q1

	spread := stddev
	if iqr > 0 && iqr/1.34 < spread {
		spread = iqr / 1.34
	}
	h := 0.9 * spread * math.Pow(float64(n), -0.2)
	if h < 0.01 {
		h = 0.01
	}

	min, max := finite[0], finite[n-1]
	lo := min - 2*stddev
	hi := max + 2*stddev

	points := make([]domain.KDEPoint, 0, numPoints+1)
	step := (hi - lo) / float64(numPoints)
	for i := 0; i <= numPoints; i++ {
		x := lo + step*float64(i)
		points = append(points, domain.KDEPoint{X: x, Density: gaussianKDEAt(finite, x, h)})
	}

	return domain.DistributionSummary{
		Mean:   mean,
		StdDev: stddev,
		P05:    percentileOf(finite, 0.05),
		P25:    q1,
		P50:    percentileOf(finite, 0.50),
		P75:    q3,
		P95:    percentileOf(finite, 0.95),
		Points: points,
	}
}

func gaussianKDEAt(sorted []float64, x, h float64) float64 {
	n := float64(len(sorted))
	sum := 0.0
	for _, xi := range sorted {
		u := (x - xi) / h
		sum += math.Exp(-0.5 * u * u)
	}
	return sum / (n * h * math.Sqrt(2*math.Pi))
}

// percentileOf assumes sorted is already ascending; index is floor(n*p),
// clamped into range, per spec section 4.1 step 5.
func percentileOf(sorted []float64, p float64) float64 {
	n := len(sorted)
	idx := int(float64(n) * p)
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}
