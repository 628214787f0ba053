package apimodels

import (
	"fmt"
	"strings"
)

// ImageState is the lifecycle state of a catalog entry. The constant values
// are the wire form.
type ImageState string

const (
	StateActive      ImageState = "active"
	StateUnactivated ImageState = "unactivated"
	StateDisabled    ImageState = "disabled"
	StateCreating    ImageState = "creating"
	StateFailed      ImageState = "failed"
)

// imageStateOrder is the closed set of states and fixes their sort order.
var imageStateOrder = map[ImageState]int{
	StateActive:      0,
	StateUnactivated: 1,
	StateDisabled:    2,
	StateCreating:    3,
	StateFailed:      4,
}

func (s ImageState) Valid() bool {
	_, ok := imageStateOrder[s]
	return ok
}

// Compare orders two states, active first and failed last.
func (s ImageState) Compare(other ImageState) int {
	return imageStateOrder[s] - imageStateOrder[other]
}

func (s ImageState) String() string {
	return string(s)
}

// ParseImageState is case-insensitive.
func ParseImageState(value string) (ImageState, error) {
	state := ImageState(strings.ToLower(value))
	if !state.Valid() {
		return "", fmt.Errorf("unknown image state %q", value)
	}
	return state, nil
}
