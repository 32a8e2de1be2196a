package maze

import (
	"fmt"
	"strings"
)

// Move is one of the four compass directions.
type Move uint8

const (
	// Up moves to row-1.
	Up Move = iota
	// Down moves to row+1.
	Down
	// Left moves to col-1.
	Left
	// Right moves to col+1.
	Right
)

// Moves lists every Move in the fixed expansion order: Up, Down, Left, Right.
var Moves = [...]Move{Up, Down, Left, Right}

// moveDeltas is the fixed delta table, indexed by Move.
var moveDeltas = [...]Coord{
	Up:    {Col: 0, Row: -1},
	Down:  {Col: 0, Row: 1},
	Left:  {Col: -1, Row: 0},
	Right: {Col: 1, Row: 0},
}

var moveTokens = [...]string{
	Up:    "U",
	Down:  "D",
	Left:  "L",
	Right: "R",
}

// Valid reports whether m is one of the four defined moves.
func (m Move) Valid() bool {
	return int(m) < len(moveDeltas)
}

// Delta returns the coordinate offset of m. Invalid moves return the zero Coord.
func (m Move) Delta() Coord {
	if !m.Valid() {
		return Coord{}
	}

	return moveDeltas[m]
}

// String returns the one-letter token of m.
func (m Move) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Move(%d)", uint8(m))
	}

	return moveTokens[m]
}

// ParseMove converts a token ("U", "D", "L", "R"; case-insensitive) to a Move.
func ParseMove(token string) (Move, error) {
	t := strings.ToUpper(strings.TrimSpace(token))
	for i, tok := range moveTokens {
		if tok == t {
			return Move(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMove, token)
}

// ParseMoves converts a token sequence. The first unknown token aborts with
// ErrUnknownMove and its index.
func ParseMoves(tokens []string) ([]Move, error) {
	moves := make([]Move, 0, len(tokens))
	for i, tok := range tokens {
		m, err := ParseMove(tok)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		moves = append(moves, m)
	}

	return moves, nil
}

// FormatMoves returns the token form of moves.
func FormatMoves(moves []Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}

	return out
}

// Transition is one legal move out of a cell and the cell it lands on.
type Transition struct {
	Move Move
	To   Coord
}

// LegalMoves returns the moves available from c, in Up, Down, Left, Right
// order. A destination is included only if it is in bounds and not a Wall.
// Complexity: O(1).
func (m *Maze) LegalMoves(c Coord) []Transition {
	out := make([]Transition, 0, len(Moves))
	for _, mv := range Moves {
		to := c.Add(moveDeltas[mv])
		if k, ok := m.At(to); ok && k != Wall {
			out = append(out, Transition{Move: mv, To: to})
		}
	}

	return out
}
