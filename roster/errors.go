// SPDX-License-Identifier: MIT
// Package roster: sentinel error set.
// Every error returned by this package wraps exactly one of these sentinels,
// so callers match with errors.Is and read the wrapped message for context.

package roster

import "errors"

var (
	// ErrInvalidTeam indicates a query named a team that is not in the roster.
	ErrInvalidTeam = errors.New("roster: invalid team")

	// ErrMalformedInput indicates the roster data violates a structural
	// invariant (shape, sign, symmetry, remaining-game totals) or could not
	// be parsed. No partial Roster is ever returned alongside it.
	ErrMalformedInput = errors.New("roster: malformed input")
)
