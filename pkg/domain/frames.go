package domain

import "fmt"

// FrameRange is an integer frame interval.
// Bounds are kept exactly as derived: End >= Start is not enforced, a reversed
// range is a data-quality signal for the consumer, not a parse failure.
type FrameRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// String renders the range in exposure notation.
func (r FrameRange) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("%d", r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// TimeRange is a source interval in seconds, used by audio trim points.
type TimeRange struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}
