package toc

import "sort"

// ExpandPageRange grows each anchor forward by extra pages, clips to the
// document bounds, and returns a sorted, deduplicated index list.
func ExpandPageRange(anchors []int, extra, pageCount int) []int {
	seen := make(map[int]struct{}, len(anchors)*(extra+1))
	for _, a := range anchors {
		for i := a; i <= a+extra; i++ {
			if i < 0 || i >= pageCount {
				continue
			}
			seen[i] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
