package enhance

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidWindowSize = errors.New("window size should be odd")
	ErrImageTooSmall     = errors.New("image is too small")
)

// FilterError reports why a neighbourhood filter refused to run. Err is one
// of ErrInvalidWindowSize or ErrImageTooSmall.
type FilterError struct {
	Op     string
	Size   int
	Width  int
	Height int
	Err    error
}

func (e *FilterError) Error() string {
	if errors.Is(e.Err, ErrImageTooSmall) {
		return fmt.Sprintf("%s %dx%d: %s for %dx%d image", e.Op, e.Size, e.Size, e.Err, e.Width, e.Height)
	}
	return fmt.Sprintf("%s %dx%d: %s", e.Op, e.Size, e.Size, e.Err)
}

func (e *FilterError) Unwrap() error {
	return e.Err
}
