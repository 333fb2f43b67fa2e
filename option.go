package sparseset

type options struct {
	capacity int
	items    []int
}

// Option configures New.
type Option func(*options)

// WithCapacity pre-sizes the dense member list for n members.
// n is clamped to the universe size; n <= 0 leaves the list unsized.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.capacity = n
	}
}

// WithItems inserts items into the new set, in order.
// An item outside the universe panics like Insert.
func WithItems(items ...int) Option {
	return func(o *options) {
		o.items = append(o.items, items...)
	}
}
