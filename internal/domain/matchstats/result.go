package matchstats

// NoDataReason explains why an aggregate had nothing to count.
type NoDataReason string

const (
	NoMatchEvents  NoDataReason = "no events found for the match"
	PlayerNotFound NoDataReason = "player not found in the match events"
)

// Result is either a computed aggregate or an explicit no-data marker.
type Result[T any] struct {
	Value  T
	NoData NoDataReason
}

func found[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func noData[T any](reason NoDataReason) Result[T] {
	return Result[T]{NoData: reason}
}

func (r Result[T]) OK() bool {
	return r.NoData == ""
}

// OrZero maps the no-data marker to T's zero value.
func (r Result[T]) OrZero() T {
	if !r.OK() {
		var zero T
		return zero
	}
	return r.Value
}
