package astar_test

import (
	"testing"

	"github.com/katalvlaran/keymaze/astar"
	"github.com/katalvlaran/keymaze/maze"
)

// openRows builds an n×n open maze with the entry and key at opposite corners.
func openRows(n int) []string {
	rows := make([]string, n)
	for y := range rows {
		b := make([]byte, n)
		for x := range b {
			b[x] = '.'
		}
		rows[y] = string(b)
	}
	rows[0] = "I" + rows[0][1:]
	rows[n-1] = rows[n-1][:n-1] + "K"
	return rows
}

// BenchmarkSearch_Open measures a corner-to-corner search on a 300×300 open grid.
// Complexity: O(N log N), N = W×H.
func BenchmarkSearch_Open(b *testing.B) {
	m, err := maze.New(openRows(300), maze.DefaultOptions())
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	keys := m.Keys()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.Search(m, m.Entry(), keys); err != nil {
			b.Fatalf("Search failed: %v", err)
		}
	}
}
