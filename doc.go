// Package keymaze solves grid mazes in which a route must collect a key before
// it may finish on a goal cell, minimizing the total cost of the cells entered.
//
// The module is organized into subpackages:
//
//	maze/      grid model: parsing, cell kinds and costs, legal moves, Verify
//	astar/     A* toward a set of target cells, with expansion hooks
//	solver/    two-phase entry → key → goal search and route checking
//	mazefile/  maze text files and YAML scenario suites
//	trace/     logrus observers for search expansions
//	config/    environment and .env settings
//	mazesrv/   gin HTTP endpoints for solve and verify
//	cmd/mazesolve  command-line front end
//
// Quick example:
//
//	XXXXXXX
//	XI...KX     I entry, K key, G goal,
//	X.....X     X wall, M mud (cost 3), . open (cost 1)
//	X.X.XGX
//	XXXXXXX
//
//	m, _ := maze.Parse(text, maze.DefaultOptions())
//	route, _ := solver.Solve(m)
//	fmt.Println(route, route.Cost) // R R R R D D 6
package keymaze
