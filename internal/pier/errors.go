package pier

import "errors"

var (
	// ErrNotComputable is returned when the diameter or the allowable soil
	// pressure is zero and the embedment formulas are undefined
	ErrNotComputable = errors.New("not computable: diameter and allowable soil pressure must be positive")

	// ErrNotConverged is returned when no trial depth satisfies the
	// embedment equation within the search range
	ErrNotConverged = errors.New("embedment depth did not converge")
)

// ValidationError represents an invalid pier case
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
