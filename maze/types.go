// Package maze defines the value types of the Grid Model: coordinates,
// cell kinds, moves and construction options.
package maze

import "fmt"

// Coord is a cell position: Col grows rightward, Row grows downward, both
// zero-indexed. It is comparable and is used directly as a map key.
type Coord struct {
	Col, Row int
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Col: c.Col + d.Col, Row: c.Row + d.Row}
}

// String formats c as "(col,row)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Kind classifies a single maze cell.
type Kind uint8

const (
	// Wall cells are never entered.
	Wall Kind = iota
	// Open cells cost 1 to enter.
	Open
	// Entry is the unique starting cell; entering it again costs 1.
	Entry
	// Goal cells end a route; entering costs 1.
	Goal
	// Key cells must be visited before a goal; entering costs 1.
	Key
	// Mud cells cost 3 to enter.
	Mud
)

// kindRunes is the fixed text encoding, indexed by Kind.
var kindRunes = [...]rune{
	Wall:  'X',
	Open:  '.',
	Entry: 'I',
	Goal:  'G',
	Key:   'K',
	Mud:   'M',
}

var kindNames = [...]string{
	Wall:  "wall",
	Open:  "open",
	Entry: "entry",
	Goal:  "goal",
	Key:   "key",
	Mud:   "mud",
}

// KindOf maps a text character to its Kind. ok is false for characters
// outside the recognized set.
func KindOf(r rune) (k Kind, ok bool) {
	for i, kr := range kindRunes {
		if kr == r {
			return Kind(i), true
		}
	}

	return Wall, false
}

// Rune returns the text character for k.
func (k Kind) Rune() rune {
	if int(k) < len(kindRunes) {
		return kindRunes[k]
	}

	return '?'
}

// String returns the lower-case name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Cost returns the price of arriving on a cell of kind k.
// Wall reports 0: it is never entered.
func (k Kind) Cost() int {
	switch k {
	case Open, Entry, Goal, Key:
		return 1
	case Mud:
		return 3
	default:
		return 0
	}
}

// Options contains tunable parameters for maze construction.
type Options struct {
	// MultiKey accepts several 'K' cells; touching any of them satisfies the
	// key condition.
	MultiKey bool
}

// DefaultOptions returns Options with MultiKey=false: at most one key.
func DefaultOptions() Options {
	return Options{MultiKey: false}
}
