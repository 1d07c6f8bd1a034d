package elimination

import (
	"errors"

	"github.com/katalvlaran/pennant/flow"
	"github.com/katalvlaran/pennant/roster"
)

var (
	// ErrInvalidTeam is returned for a team name absent from the roster.
	// It is the roster's sentinel, so errors.Is matches either name.
	ErrInvalidTeam = roster.ErrInvalidTeam

	// ErrFlowInvariant is returned when the flow computation for a query
	// breaks a capacity or conservation constraint. The query is aborted.
	ErrFlowInvariant = flow.ErrFlowInvariant

	// ErrNotEliminated is returned by Explain for a team still in contention.
	ErrNotEliminated = errors.New("elimination: team is not eliminated")

	// ErrNilRoster is returned by New when given no roster.
	ErrNilRoster = errors.New("elimination: nil roster")
)
