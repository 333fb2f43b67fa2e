// Package sparseset provides IndexSet, a sparse set of non-negative
// integers drawn from a fixed universe [0, max).
//
// Membership test, insertion, removal, size and clearing are O(1).
// Iteration costs O(Len()), independent of the universe size.
//
// An IndexSet is not safe for concurrent use. Callers sharing one
// across goroutines must guard it with their own mutex.
package sparseset

import (
	"iter"
)

// IndexSet is a sparse set over the universe [0, max).
//
// dense holds the members, each exactly once, in an unspecified order.
// sparse maps a value to its position hint in dense. A value x is a
// member iff
//
//	sparse[x] < len(dense) && dense[sparse[x]] == x
//
// so stale entries in sparse are never trusted on their own.
// Remove reorders dense: element order is not stable across removals.
type IndexSet struct {
	// universe size, exclusive upper bound of valid values
	max int

	// len(sparse) == max, never resized
	sparse []int

	dense []int
}

// New returns an empty IndexSet able to hold values in [0, max).
// max == 0 is valid and yields a set that can never hold anything.
// New panics with ErrInvalidMax if max is negative.
func New(max int, opts ...Option) *IndexSet {
	if max < 0 {
		panic(ErrInvalidMax)
	}
	o := options{}
	for _, fn := range opts {
		fn(&o)
	}

	capacity := o.capacity
	if capacity > max {
		capacity = max
	}
	s := &IndexSet{
		max:    max,
		sparse: make([]int, max),
		dense:  make([]int, 0, capacity),
	}
	for _, x := range o.items {
		s.Insert(x)
	}
	return s
}

// check panics if x is outside the universe.
func (s *IndexSet) check(x int) {
	if x < 0 || x >= s.max {
		panic(&OutOfRangeError{Value: x, Max: s.max})
	}
}

// has reports membership without a bounds check; x must be in range.
func (s *IndexSet) has(x int) bool {
	r := s.sparse[x]
	return r < len(s.dense) && s.dense[r] == x
}

// Max returns the universe size.
func (s *IndexSet) Max() int { return s.max }

// Cap returns the capacity of the dense member list.
func (s *IndexSet) Cap() int { return cap(s.dense) }

// Contains reports whether x is in the set.
// It panics with *OutOfRangeError if x is not in [0, Max()).
// time complexity: O(1)
func (s *IndexSet) Contains(x int) bool {
	s.check(x)
	return s.has(x)
}

// Insert adds x to the set and reports whether it was newly added.
// If x is already present the set is not modified.
// It panics with *OutOfRangeError if x is not in [0, Max()).
// time complexity: O(1) amortized
func (s *IndexSet) Insert(x int) bool {
	s.check(x)
	if s.has(x) {
		return false
	}
	s.sparse[x] = len(s.dense)
	s.dense = append(s.dense, x)
	return true
}

// Remove deletes x from the set and reports whether it was present.
// The last member takes x's slot, so dense order changes.
// It panics with *OutOfRangeError if x is not in [0, Max()).
// time complexity: O(1)
func (s *IndexSet) Remove(x int) bool {
	s.check(x)
	if !s.has(x) {
		return false
	}
	r := s.sparse[x]
	n := len(s.dense) - 1
	last := s.dense[n]
	s.dense[r] = last
	// when last == x this rewrites x's own stale slot
	s.sparse[last] = r
	s.dense = s.dense[:n]
	return true
}

// IsEmpty reports whether the set has no members.
func (s *IndexSet) IsEmpty() bool { return len(s.dense) == 0 }

// Len returns the number of members.
func (s *IndexSet) Len() int { return len(s.dense) }

// Clear removes all members. The lookup table is left stale.
// time complexity: O(1)
func (s *IndexSet) Clear() {
	s.dense = s.dense[:0]
}

// All returns an iterator over the members in their current dense
// order. The set must not be mutated while iterating.
func (s *IndexSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, x := range s.dense {
			if !yield(x) {
				return
			}
		}
	}
}

// Range calls f sequentially for each member of the set.
// If f returns false, range stops the iteration.
func (s *IndexSet) Range(f func(x int) bool) {
	for _, x := range s.dense {
		if !f(x) {
			return
		}
	}
}

// Items returns a copy of the members in dense order.
func (s *IndexSet) Items() []int {
	items := make([]int, len(s.dense))
	copy(items, s.dense)
	return items
}
