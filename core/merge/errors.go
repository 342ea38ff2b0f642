package merge

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when an anchor does not fall inside a target collection.
var ErrOutOfRange = errors.New("anchor index out of range")

// RangeError describes an anchor that does not fit the target it was applied to.
type RangeError struct {
	Anchor int
	Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("insert index (%d) is out of bounds for collection of length %d", e.Anchor, e.Length)
}

// Is lets errors.Is match RangeError against ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
