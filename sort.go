package sparseset

import "slices"

// Sorted returns the members in ascending order.
//
// A set filling at least half of its universe is read by walking the
// universe; a sparser set sorts a copy of its members instead.
// time complexity: O(min(Max(), N*log(N)))
func (s *IndexSet) Sorted() []int {
	items := make([]int, 0, len(s.dense))
	if s.max <= 2*len(s.dense) {
		for x := 0; x < s.max; x++ {
			if s.has(x) {
				items = append(items, x)
			}
		}
		return items
	}
	items = append(items, s.dense...)
	slices.Sort(items)
	return items
}

// Sort sorts array in ascending order.
//
// Suited to a small value range with many repeated elements: the
// distinct values are collected in an IndexSet and counted, then
// written back in order. Arrays holding negative values or spanning a
// range wider than twice their length fall back to slices.Sort.
// space complexity: 2x the distinct elements
// time complexity: O(3N)
func Sort(array []int) {
	if len(array) < 2 {
		return
	}
	lo, hi := array[0], array[0]
	for _, x := range array {
		lo = min(lo, x)
		hi = max(hi, x)
	}
	if lo < 0 || hi >= 2*len(array) {
		slices.Sort(array)
		return
	}

	s := New(hi+1, WithCapacity(len(array)))
	count := make(map[int]int)
	for _, x := range array {
		s.Insert(x)
		count[x]++
	}
	j := 0
	for _, x := range s.Sorted() {
		for n := count[x]; n > 0; n-- {
			array[j] = x
			j++
		}
	}
}
