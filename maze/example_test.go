// File: maze/example_test.go
package maze_test

import (
	"fmt"

	"github.com/katalvlaran/keymaze/maze"
)

////////////////////////////////////////////////////////////////////////////////
// Example: LegalMoves
////////////////////////////////////////////////////////////////////////////////

// ExampleMaze_LegalMoves lists the moves out of the entry cell of a small
// maze. Walls and borders are filtered; order is always Up, Down, Left, Right.
func ExampleMaze_LegalMoves() {
	m, err := maze.New([]string{
		"XXXX",
		"XI.X",
		"X.KX",
		"XXGX",
	}, maze.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, tr := range m.LegalMoves(m.Entry()) {
		fmt.Printf("%s -> %v cost %d\n", tr.Move, tr.To, m.CostOf(tr.To))
	}
	// Output:
	// D -> (1,2) cost 1
	// R -> (2,1) cost 1
}

////////////////////////////////////////////////////////////////////////////////
// Example: Verify
////////////////////////////////////////////////////////////////////////////////

// ExampleMaze_Verify replays a proposed action sequence.
func ExampleMaze_Verify() {
	m, _ := maze.New([]string{
		"XXXXXXX",
		"XI...KX",
		"X.....X",
		"X.X.XGX",
		"XXXXXXX",
	}, maze.DefaultOptions())

	moves, _ := maze.ParseMoves([]string{"R", "R", "R", "R", "D", "D"})
	valid, cost := m.Verify(moves)
	fmt.Printf("valid=%t cost=%d\n", valid, cost)

	valid, cost = m.Verify([]maze.Move{maze.Up})
	fmt.Printf("valid=%t cost=%d\n", valid, cost)
	// Output:
	// valid=true cost=6
	// valid=false cost=-1
}
