package domain

// Effect is a closed tagged union over the edge effect variants in spec
// section 3.3. As with Distribution, unused fields for a given Kind are
// left at zero. Fields with a documented non-zero default (coefficient
// 0.3, factor 1.5, baseline 1, smoothness 2) are pointers so that
// effects/kernels.go can distinguish "left unset" from "explicitly set
// to zero" and substitute the default only in the former case.
type Effect struct {
	Kind EffectKind `json:"type" yaml:"type"`

	Coefficient *float64 `json:"coefficient,omitempty" yaml:"coefficient,omitempty"` // Linear, Logistic
	Intercept   *float64 `json:"intercept,omitempty" yaml:"intercept,omitempty"`     // Linear
	Saturation  float64  `json:"saturation,omitempty" yaml:"saturation,omitempty"`   // Linear

	Factor   *float64 `json:"factor,omitempty" yaml:"factor,omitempty"`     // Multiplicative
	Baseline *float64 `json:"baseline,omitempty" yaml:"baseline,omitempty"` // Multiplicative

	Cutoff     float64  `json:"cutoff,omitempty" yaml:"cutoff,omitempty"`         // Threshold
	Below      float64  `json:"below,omitempty" yaml:"below,omitempty"`           // Threshold
	Above      float64  `json:"above,omitempty" yaml:"above,omitempty"`           // Threshold
	Smoothness *float64 `json:"smoothness,omitempty" yaml:"smoothness,omitempty"` // Threshold

	Threshold float64 `json:"threshold,omitempty" yaml:"threshold,omitempty"` // Logistic
}

// KnownEffectKind reports whether k is a recognized union tag.
func KnownEffectKind(k EffectKind) bool {
	switch k {
	case EffectLinear, EffectMultiplicative, EffectThreshold, EffectLogistic:
		return true
	default:
		return false
	}
}
