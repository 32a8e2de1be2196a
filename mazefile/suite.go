package mazefile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/keymaze/maze"
)

// Sentinel errors for suite decoding.
var (
	// ErrEmptySuite indicates a suite without mazes.
	ErrEmptySuite = errors.New("mazefile: suite has no mazes")
	// ErrUnnamedCase indicates a case without a name.
	ErrUnnamedCase = errors.New("mazefile: case has no name")
	// ErrDuplicateCase indicates two cases with the same name.
	ErrDuplicateCase = errors.New("mazefile: duplicate case name")
)

// Expect is the recorded outcome of a case.
type Expect struct {
	Solvable  bool `yaml:"solvable"`
	Cost      int  `yaml:"cost"`
	Malformed bool `yaml:"malformed"`
}

// Case is one named maze layout.
type Case struct {
	Name     string   `yaml:"name"`
	Rows     []string `yaml:"rows"`
	MultiKey bool     `yaml:"multi_key"`
	Expect   Expect   `yaml:"expect"`
}

// Options returns the maze options the case asks for.
func (c Case) Options() maze.Options {
	opts := maze.DefaultOptions()
	opts.MultiKey = c.MultiKey
	return opts
}

// Build constructs the case's maze.
func (c Case) Build() (*maze.Maze, error) {
	return maze.New(c.Rows, c.Options())
}

// Suite is an ordered list of cases.
type Suite struct {
	Mazes []Case `yaml:"mazes"`
}

// Lookup returns the case named name.
func (s *Suite) Lookup(name string) (Case, bool) {
	for _, c := range s.Mazes {
		if c.Name == name {
			return c, true
		}
	}

	return Case{}, false
}

// DecodeSuite decodes and validates a YAML suite. Unknown fields are errors.
func DecodeSuite(r io.Reader) (*Suite, error) {
	s := &Suite{}
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySuite
		}
		return nil, fmt.Errorf("mazefile: decode suite: %w", err)
	}
	if len(s.Mazes) == 0 {
		return nil, ErrEmptySuite
	}
	seen := make(map[string]struct{}, len(s.Mazes))
	for i, c := range s.Mazes {
		if c.Name == "" {
			return nil, fmt.Errorf("%w: index %d", ErrUnnamedCase, i)
		}
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCase, c.Name)
		}
		seen[c.Name] = struct{}{}
	}

	return s, nil
}

// LoadSuite decodes the YAML suite stored at path.
func LoadSuite(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := DecodeSuite(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}
