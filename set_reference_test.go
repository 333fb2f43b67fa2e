package sparseset_test

import (
	"sort"

	"github.com/min1324/sparseset"
)

type Interface interface {
	Max() int
	Len() int
	IsEmpty() bool
	Clear()
	Contains(x int) bool
	Insert(x int) bool
	Remove(x int) bool
	Range(f func(x int) bool)
	Items() []int
}

var (
	_ Interface = (*sparseset.IndexSet)(nil)
	_ Interface = (*MapSet)(nil)
)

// MapSet is a map backed model of IndexSet.
type MapSet struct {
	max   int
	items map[int]struct{}
}

func NewMapSet(max int) *MapSet {
	return &MapSet{max: max, items: make(map[int]struct{})}
}

func (s *MapSet) check(x int) {
	if x < 0 || x >= s.max {
		panic(&sparseset.OutOfRangeError{Value: x, Max: s.max})
	}
}

func (s *MapSet) Max() int      { return s.max }
func (s *MapSet) Len() int      { return len(s.items) }
func (s *MapSet) IsEmpty() bool { return len(s.items) == 0 }
func (s *MapSet) Clear()        { s.items = make(map[int]struct{}) }

func (s *MapSet) Contains(x int) bool {
	s.check(x)
	_, ok := s.items[x]
	return ok
}

func (s *MapSet) Insert(x int) bool {
	s.check(x)
	if _, ok := s.items[x]; ok {
		return false
	}
	s.items[x] = struct{}{}
	return true
}

func (s *MapSet) Remove(x int) bool {
	s.check(x)
	if _, ok := s.items[x]; !ok {
		return false
	}
	delete(s.items, x)
	return true
}

// Range visits members in ascending order.
func (s *MapSet) Range(f func(x int) bool) {
	for _, x := range s.Items() {
		if !f(x) {
			return
		}
	}
}

func (s *MapSet) Items() []int {
	items := make([]int, 0, len(s.items))
	for x := range s.items {
		items = append(items, x)
	}
	sort.Ints(items)
	return items
}
