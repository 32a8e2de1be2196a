package maze

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Maze is an immutable rectangular grid of cell kinds together with the
// derived entry coordinate, goal list and key set.
// width and height define dimensions; cells[row][col] holds each Kind.
// goals and keys keep row-major scan order.
type Maze struct {
	width, height int

	cells   [][]Kind
	entry   Coord
	goals   []Coord
	goalSet map[Coord]struct{}
	keys    []Coord
	keySet  map[Coord]struct{}
}

// New constructs a Maze from equal-length text rows, one character per cell.
// Row 0 is the top row; the character index within a row is the column.
//
// Zero keys or zero goals are accepted: the caller treats them as "no
// solution", not as malformed input.
//
// Returns ErrEmptyMaze, ErrNonRectangular, ErrUnknownCell, ErrNoEntry,
// ErrMultipleEntries or ErrMultipleKeys; all wrap ErrMalformed.
// Complexity: O(W×H) time and memory.
func New(rows []string, opts Options) (*Maze, error) {
	if len(rows) == 0 || rows[0] == "" {
		return nil, ErrEmptyMaze
	}
	w := utf8.RuneCountInString(rows[0])

	m := &Maze{
		width:   w,
		height:  len(rows),
		cells:   make([][]Kind, len(rows)),
		goalSet: make(map[Coord]struct{}),
		keySet:  make(map[Coord]struct{}),
	}
	entries := 0
	for row, line := range rows {
		if utf8.RuneCountInString(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrNonRectangular, row, utf8.RuneCountInString(line), w)
		}
		m.cells[row] = make([]Kind, 0, w)
		col := 0
		for _, r := range line {
			k, ok := KindOf(r)
			if !ok {
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrUnknownCell, r, col, row)
			}
			c := Coord{Col: col, Row: row}
			switch k {
			case Entry:
				entries++
				if entries > 1 {
					return nil, fmt.Errorf("%w: second entry at %v", ErrMultipleEntries, c)
				}
				m.entry = c
			case Goal:
				m.goals = append(m.goals, c)
				m.goalSet[c] = struct{}{}
			case Key:
				if len(m.keys) > 0 && !opts.MultiKey {
					return nil, fmt.Errorf("%w: second key at %v", ErrMultipleKeys, c)
				}
				m.keys = append(m.keys, c)
				m.keySet[c] = struct{}{}
			}
			m.cells[row] = append(m.cells[row], k)
			col++
		}
	}
	if entries == 0 {
		return nil, ErrNoEntry
	}

	return m, nil
}

// Parse splits text into rows and calls New. Carriage returns are stripped
// and trailing blank lines ignored.
func Parse(text string, opts Options) (*Maze, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return New(lines, opts)
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (m *Maze) InBounds(c Coord) bool {
	return c.Col >= 0 && c.Col < m.width && c.Row >= 0 && c.Row < m.height
}

// At returns the kind of cell c; ok is false when c is out of bounds.
func (m *Maze) At(c Coord) (k Kind, ok bool) {
	if !m.InBounds(c) {
		return Wall, false
	}

	return m.cells[c.Row][c.Col], true
}

// Entry returns the entry coordinate.
func (m *Maze) Entry() Coord { return m.entry }

// Goals returns a copy of the goal coordinates in row-major order.
func (m *Maze) Goals() []Coord { return append([]Coord(nil), m.goals...) }

// Keys returns a copy of the key coordinates in row-major order.
func (m *Maze) Keys() []Coord { return append([]Coord(nil), m.keys...) }

// Key returns the first key coordinate; ok is false if the maze has no key.
func (m *Maze) Key() (c Coord, ok bool) {
	if len(m.keys) == 0 {
		return Coord{}, false
	}

	return m.keys[0], true
}

// HasKey reports whether at least one key exists.
func (m *Maze) HasKey() bool { return len(m.keys) > 0 }

// HasGoal reports whether at least one goal exists.
func (m *Maze) HasGoal() bool { return len(m.goals) > 0 }

// IsGoal reports whether c is a goal cell.
func (m *Maze) IsGoal(c Coord) bool {
	_, ok := m.goalSet[c]
	return ok
}

// IsKey reports whether c is a key cell. Always false in a maze without keys.
func (m *Maze) IsKey(c Coord) bool {
	_, ok := m.keySet[c]
	return ok
}

// CostOf returns the cost of arriving at c: 1 for Entry, Goal, Key and Open,
// 3 for Mud. Walls and out-of-bounds cells report 0; the search never
// queries them.
func (m *Maze) CostOf(c Coord) int {
	k, ok := m.At(c)
	if !ok {
		return 0
	}

	return k.Cost()
}

// Rows renders the maze back into its text rows.
func (m *Maze) Rows() []string {
	out := make([]string, m.height)
	var sb strings.Builder
	for row := range m.cells {
		sb.Reset()
		for _, k := range m.cells[row] {
			sb.WriteRune(k.Rune())
		}
		out[row] = sb.String()
	}

	return out
}

// String renders the maze as newline-separated rows.
func (m *Maze) String() string {
	return strings.Join(m.Rows(), "\n")
}
