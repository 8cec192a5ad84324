package domain

// Distribution is a closed tagged union over the univariate distribution
// variants in spec section 3.2. Only the fields relevant to Kind are
// meaningful; the rest are left at their zero value. Parameters are not
// validated here — distributions.Sample clamps out-of-range values to safe
// minima rather than rejecting them (spec section 4.1).
type Distribution struct {
	Kind DistributionKind `json:"type" yaml:"type"`

	P      float64   `json:"p,omitempty" yaml:"p,omitempty"`           // Binary
	Probs  []float64 `json:"probs,omitempty" yaml:"probs,omitempty"`   // Categorical
	Mu     float64   `json:"mu,omitempty" yaml:"mu,omitempty"`         // Normal, Lognormal
	Sigma  float64   `json:"sigma,omitempty" yaml:"sigma,omitempty"`   // Normal, Lognormal
	Alpha  float64   `json:"alpha,omitempty" yaml:"alpha,omitempty"`   // Beta, Rate
	Beta   float64   `json:"beta,omitempty" yaml:"beta,omitempty"`     // Beta, Rate
	Shape  float64   `json:"shape,omitempty" yaml:"shape,omitempty"`   // Gamma
	Rate   float64   `json:"rate,omitempty" yaml:"rate,omitempty"`     // Gamma
	Min    float64   `json:"min,omitempty" yaml:"min,omitempty"`       // Bounded
	Max    float64   `json:"max,omitempty" yaml:"max,omitempty"`       // Bounded
	Mode   float64   `json:"mode,omitempty" yaml:"mode,omitempty"`     // Bounded
	Lambda float64   `json:"lambda,omitempty" yaml:"lambda,omitempty"` // Count
}

// KnownDistributionKind reports whether k is a recognized union tag.
func KnownDistributionKind(k DistributionKind) bool {
	switch k {
	case DistBinary, DistCategorical, DistNormal, DistLognormal,
		DistBeta, DistGamma, DistBounded, DistCount, DistRate:
		return true
	default:
		return false
	}
}
