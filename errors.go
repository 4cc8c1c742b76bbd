package figures

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned by the figure procedures when a count, size,
	// radius or color parameter can't be used for drawing.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrSurfaceUnavailable is returned when the drawing surface could not be initialized.
	ErrSurfaceUnavailable = errors.New("drawing surface unavailable")

	// ErrUnsupportedFormat is returned for output formats not handled by any backend.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// param is a named numeric figure parameter subject to validation.
type param struct {
	name  string
	value float64
}

// invalidf wraps ErrInvalidParameter with a formatted reason.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

// positive returns an error for the first parameter which is not strictly positive.
func positive(figure string, params ...param) error {
	for _, p := range params {
		if p.value <= 0 {
			return invalidf("%s %s must be positive, got %v", figure, p.name, p.value)
		}
	}
	return nil
}
