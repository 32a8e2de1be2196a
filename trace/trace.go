// Package trace adapts astar's expansion and generation hooks to logrus, so
// search diagnostics go through the caller's logger instead of the algorithm.
package trace

import (
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/keymaze/astar"
)

// Expansions returns an OnExpand hook that logs every expansion at debug level.
func Expansions(logger log.FieldLogger) func(astar.Expansion) {
	return func(e astar.Expansion) {
		logger.WithFields(fields(e)).Debug("expand")
	}
}

// Generations returns an OnGenerate hook that logs every generated child at
// trace level.
func Generations(logger log.FieldLogger) func(astar.Expansion) {
	return func(e astar.Expansion) {
		logger.WithFields(fields(e)).Trace("generate")
	}
}

// Options bundles both hooks as astar options.
func Options(logger log.FieldLogger) []astar.Option {
	return []astar.Option{
		astar.WithOnExpand(Expansions(logger)),
		astar.WithOnGenerate(Generations(logger)),
	}
}

func fields(e astar.Expansion) log.Fields {
	f := log.Fields{
		"step":      e.Step,
		"cell":      e.Coord.String(),
		"history":   e.History,
		"heuristic": e.Heuristic,
		"eval":      e.Eval(),
	}
	if !e.Root {
		f["move"] = e.Move.String()
	}
	return f
}
