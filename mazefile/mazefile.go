// Package mazefile reads mazes from plain text files and named maze
// scenarios from YAML suites.
//
// Text format: one row per line using the maze characters X . I G K M;
// blank trailing lines and carriage returns are ignored.
//
// Suite format:
//
//	mazes:
//	  - name: corridor
//	    rows: ["XXXXXXX", "XI...KX", "X.....X", "X.X.XGX", "XXXXXXX"]
//	    expect: {solvable: true, cost: 6}
//	  - name: no-entry
//	    rows: ["XXX"]
//	    expect: {malformed: true}
package mazefile

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/keymaze/maze"
)

// Read parses a text maze from r. Rows may be of any width.
func Read(r io.Reader, opts maze.Options) (*maze.Maze, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("mazefile: read: %w", err)
	}

	return maze.Parse(string(text), opts)
}

// Load reads the text maze stored at path.
func Load(path string, opts maze.Options) (*maze.Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
