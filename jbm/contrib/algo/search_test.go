package algo

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearch(t *testing.T) {
	a := []float64{0, 1, 2, 4, 8}
	tests := []struct {
		x    float64
		want int
	}{
		{-5, 0},
		{0, 0},
		{0.5, 0},
		{1, 1},
		{3.9, 2},
		{4, 3},
		{7.99, 3},
		{8, 3},
		{100, 3},
		{math.Inf(1), 3},
		{math.Inf(-1), 0},
	}
	for _, tt := range tests {
		if got := Search(tt.x, a); got != tt.want {
			t.Errorf("Search(%v, %v) = %d, want %d", tt.x, a, got, tt.want)
		}
	}
}

func TestSearchShortTables(t *testing.T) {
	assert.Equal(t, 0, Search(1.0, nil))
	assert.Equal(t, 0, Search(1.0, []float64{3}))
	assert.Equal(t, 0, Search(5.0, []float64{3, 4}))
	assert.Equal(t, 0, Search[float32](-5, []float32{3, 4}))
}

func TestSearchMatchesLinearScan(t *testing.T) {
	a := make([]float64, 37)
	for i := range a {
		a[i] = float64(i*i) / 7
	}
	for x := -1.0; x < 200; x += 0.37 {
		want := 0
		for i := 0; i < len(a)-1; i++ {
			if a[i] <= x {
				want = i
			}
		}
		if got := Search(x, a); got != want {
			t.Fatalf("Search(%v) = %d, want %d", x, got, want)
		}
	}
}

func TestSearchExtended(t *testing.T) {
	a := []float64{0, 1, 2, 4, 8}
	tests := []struct {
		x    float64
		want int
	}{
		{-0.1, -1},
		{0, 0},
		{3, 2},
		{7.99, 3},
		{8, 4},
		{9, 4},
	}
	for _, tt := range tests {
		if got := SearchExtended(tt.x, a); got != tt.want {
			t.Errorf("SearchExtended(%v) = %d, want %d", tt.x, got, tt.want)
		}
	}
	assert.Equal(t, -1, SearchExtended(1.0, []float64{}))
	assert.Equal(t, 0, SearchExtended(1.0, []float64{1}))
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want []float64
	}{
		{"disjoint", []float64{1, 3, 5}, []float64{2, 4, 6}, []float64{1, 2, 3, 4, 5, 6}},
		{"shared", []float64{1, 2, 3}, []float64{2, 3, 4}, []float64{1, 2, 3, 4}},
		{"repeats", []float64{1, 1, 2}, []float64{2, 2}, []float64{1, 2}},
		{"emptyA", nil, []float64{1, 2}, []float64{1, 2}},
		{"emptyB", []float64{-1}, nil, []float64{-1}},
		{"both empty", nil, nil, []float64{}},
		{"tail", []float64{0.5}, []float64{0, 1, 2}, []float64{0, 0.5, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.a, tt.b)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Merge(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMergeDoesNotAlias(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{3}
	out := Merge(a, b)
	out[0] = 100
	assert.Equal(t, 1.0, a[0])
}
