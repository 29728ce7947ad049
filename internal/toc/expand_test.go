package toc

import (
	"reflect"
	"testing"
)

func TestExpandPageRange(t *testing.T) {
	tests := []struct {
		name      string
		anchors   []int
		extra     int
		pageCount int
		want      []int
	}{
		{"single anchor grows forward", []int{2}, 2, 10, []int{2, 3, 4}},
		{"overlapping anchors dedupe", []int{2, 3}, 1, 10, []int{2, 3, 4}},
		{"clipped at document end", []int{8}, 5, 10, []int{8, 9}},
		{"zero extra keeps anchors", []int{1, 4}, 0, 10, []int{1, 4}},
		{"no anchors", nil, 3, 10, []int{}},
		{"unsorted anchors come back sorted", []int{7, 0}, 1, 10, []int{0, 1, 7, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandPageRange(tt.anchors, tt.extra, tt.pageCount)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
