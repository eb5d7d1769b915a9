package footing

import "errors"

var (
	// ErrUndefinedPressure is returned for a footing with zero bearing area
	ErrUndefinedPressure = errors.New("undefined pressure: footing area is zero")

	// ErrNetUplift is returned when the total vertical load is not compressive
	ErrNetUplift = errors.New("net uplift: total vertical load is not positive")

	// ErrOverturning is returned when the load resultant falls outside the
	// footing, leaving no effective bearing dimension
	ErrOverturning = errors.New("overturning: load resultant lies outside the footing")
)

// ValidationError represents an invalid footing case
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
