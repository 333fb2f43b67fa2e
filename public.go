package sparseset

// common public function

import (
	"bytes"
	"fmt"
)

// String returns the set as a string of the form "{1 2 3}",
// members in ascending order.
func (s *IndexSet) String() string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, x := range s.Sorted() {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%d", x)
	}
	buf.WriteByte('}')
	return buf.String()
}

// contains reports membership of x in s, treating values outside the
// universe of s as non-members.
func contains(s *IndexSet, x int) bool {
	return x >= 0 && x < s.max && s.has(x)
}

// Adds inserts all x in args into the set.
func Adds(s *IndexSet, args ...int) {
	for _, x := range args {
		s.Insert(x)
	}
}

// Removes deletes all x in args from the set.
func Removes(s *IndexSet, args ...int) {
	for _, x := range args {
		s.Remove(x)
	}
}

// Copy returns an independent copy of s with the same universe
// and the same dense order.
// time complexity: O(Max())
func Copy(s *IndexSet) *IndexSet {
	p := &IndexSet{
		max:    s.max,
		sparse: make([]int, s.max),
		dense:  make([]int, len(s.dense), cap(s.dense)),
	}
	copy(p.dense, s.dense)
	for i, x := range p.dense {
		p.sparse[x] = i
	}
	return p
}

// Union returns the members of s or t.
// The result universe is the larger of both.
// time complexity: O(N)
func Union(s, t *IndexSet) *IndexSet {
	p := New(max(s.max, t.max), WithCapacity(s.Len()+t.Len()))
	for _, x := range s.dense {
		p.Insert(x)
	}
	for _, x := range t.dense {
		p.Insert(x)
	}
	return p
}

// Intersect returns the members in both s and t.
// The result universe is the smaller of both.
// time complexity: O(min(N, M))
func Intersect(s, t *IndexSet) *IndexSet {
	small, large := s, t
	if small.Len() > large.Len() {
		small, large = large, small
	}
	p := New(min(s.max, t.max), WithCapacity(small.Len()))
	for _, x := range small.dense {
		if contains(large, x) {
			p.Insert(x)
		}
	}
	return p
}

// Difference returns the members of s that are not in t.
// The result universe is that of s.
// time complexity: O(N)
func Difference(s, t *IndexSet) *IndexSet {
	p := New(s.max, WithCapacity(s.Len()))
	for _, x := range s.dense {
		if !contains(t, x) {
			p.Insert(x)
		}
	}
	return p
}

// Complement returns the members in s but not in t and
// the members in t but not in s.
// The result universe is the larger of both.
// time complexity: O(N+M)
func Complement(s, t *IndexSet) *IndexSet {
	p := New(max(s.max, t.max))
	for _, x := range s.dense {
		if !contains(t, x) {
			p.Insert(x)
		}
	}
	for _, x := range t.dense {
		if !contains(s, x) {
			p.Insert(x)
		}
	}
	return p
}

// Equal reports whether s and t have the same members.
// Their universe sizes may differ.
// worst time complexity: O(N)
// best  time complexity: O(1)
func Equal(s, t *IndexSet) bool {
	if s.Len() != t.Len() {
		return false
	}
	for _, x := range s.dense {
		if !contains(t, x) {
			return false
		}
	}
	return true
}
