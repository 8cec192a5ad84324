package domain

import "errors"

// Sentinel errors for the structural fault taxonomy in spec section 7.
// Callers should use errors.Is against these rather than string-matching
// StructuralError.Code.
var (
	ErrCycle               = errors.New("scm: cycle detected in model graph")
	ErrMissingNode         = errors.New("scm: edge references a node that does not exist")
	ErrUnknownDistribution = errors.New("scm: unknown distribution type")
	ErrUnknownEffect       = errors.New("scm: unknown effect type")
	ErrDuplicateNode       = errors.New("scm: duplicate node id")

	ErrRunNotFound = errors.New("scm: simulation run not found")
	ErrReportNotFound = errors.New("scm: sensitivity report not found")
)

// StructuralError is the single typed, surfaced error class for
// propagate/analyze. It always wraps one of the sentinels above so
// callers can distinguish fault classes with errors.Is.
type StructuralError struct {
	Code    string
	Message string
	err     error
}

func NewStructuralError(sentinel error, code, message string) *StructuralError {
	return &StructuralError{Code: code, Message: message, err: sentinel}
}

func (e *StructuralError) Error() string {
	return "scm: " + e.Code + ": " + e.Message
}

func (e *StructuralError) Unwrap() error {
	return e.err
}
