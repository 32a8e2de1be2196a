package mazesrv

import (
	"github.com/google/uuid"
)

// SolveRequest carries a maze to solve.
type SolveRequest struct {
	Rows     []string `json:"rows" binding:"required"`
	MultiKey bool     `json:"multi_key"`
}

// SolveResponse reports the route found for a SolveRequest.
// Valid and Cost are re-derived by replaying Moves against the maze.
type SolveResponse struct {
	RunID    uuid.UUID `json:"run_id"`
	Found    bool      `json:"found"`
	Moves    []string  `json:"moves"`
	Cost     int       `json:"cost"`
	Valid    bool      `json:"valid"`
	Expanded int       `json:"expanded"`
}

// VerifyRequest carries a maze and a move sequence to replay on it.
type VerifyRequest struct {
	Rows     []string `json:"rows" binding:"required"`
	Moves    []string `json:"moves"`
	MultiKey bool     `json:"multi_key"`
}

// VerifyResponse is the outcome of replaying a VerifyRequest.
type VerifyResponse struct {
	Valid bool `json:"valid"`
	Cost  int  `json:"cost"`
}
