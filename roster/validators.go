// SPDX-License-Identifier: MIT
// Package: roster
//
// Purpose:
//   - Single source of truth for roster invariants.
//   - Each validator checks one invariant and assumes the earlier ones hold.

package roster

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// validate runs every validator in the documented order.
func validate(teams []Team, cfg options) error {
	checks := []func([]Team) error{
		validateNotEmpty,
		validateNames,
		validateCounts,
		validateShape,
		validateDiagonal,
		validateSymmetric,
	}
	for _, check := range checks {
		if err := check(teams); err != nil {
			return err
		}
	}

	return validateRemaining(teams, cfg.outsideGames)
}

// MaxCount bounds every count of a team so that wins + remaining and the
// sum of a schedule row cannot overflow.
const MaxCount = math.MaxInt32 / 2

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}

func validateNotEmpty(teams []Team) error {
	if len(teams) == 0 {
		return malformed("roster has no teams")
	}

	return nil
}

// validateNames requires unique, non-empty names without whitespace, since
// the text format is whitespace-delimited.
func validateNames(teams []Team) error {
	seen := make(map[string]int, len(teams))
	for i, t := range teams {
		if t.Name == "" {
			return malformed("team %d has an empty name", i)
		}
		if strings.IndexFunc(t.Name, unicode.IsSpace) >= 0 {
			return malformed("team name %q contains whitespace", t.Name)
		}
		if j, dup := seen[t.Name]; dup {
			return malformed("team name %q used at positions %d and %d", t.Name, j, i)
		}
		seen[t.Name] = i
	}

	return nil
}

func validateCounts(teams []Team) error {
	for _, t := range teams {
		if t.Wins < 0 || t.Losses < 0 || t.Remaining < 0 {
			return malformed("team %q has a negative count (w=%d l=%d r=%d)", t.Name, t.Wins, t.Losses, t.Remaining)
		}
		if t.Wins > MaxCount || t.Losses > MaxCount || t.Remaining > MaxCount {
			return malformed("team %q has a count above %d (w=%d l=%d r=%d)", t.Name, MaxCount, t.Wins, t.Losses, t.Remaining)
		}
		for j, g := range t.Against {
			if g < 0 {
				return malformed("team %q has negative games (%d) against team %d", t.Name, g, j)
			}
			if g > MaxCount {
				return malformed("team %q has %d games against team %d, above %d", t.Name, g, j, MaxCount)
			}
		}
	}

	return nil
}

func validateShape(teams []Team) error {
	for _, t := range teams {
		if len(t.Against) != len(teams) {
			return malformed("team %q lists %d opponents, want %d", t.Name, len(t.Against), len(teams))
		}
	}

	return nil
}

func validateDiagonal(teams []Team) error {
	for i, t := range teams {
		if t.Against[i] != 0 {
			return malformed("team %q has %d games against itself", t.Name, t.Against[i])
		}
	}

	return nil
}

// validateSymmetric scans the upper triangle only.
func validateSymmetric(teams []Team) error {
	for i := range teams {
		for j := i + 1; j < len(teams); j++ {
			if teams[i].Against[j] != teams[j].Against[i] {
				return malformed("games between %q and %q disagree: %d vs %d",
					teams[i].Name, teams[j].Name, teams[i].Against[j], teams[j].Against[i])
			}
		}
	}

	return nil
}

// validateRemaining requires Remaining == Σ Against, or ≥ when games outside
// the division are allowed.
func validateRemaining(teams []Team, outsideGames bool) error {
	for _, t := range teams {
		sum := 0
		for _, g := range t.Against {
			sum += g
			if sum > MaxCount {
				return malformed("team %q has more than %d games scheduled", t.Name, MaxCount)
			}
		}
		switch {
		case outsideGames && t.Remaining < sum:
			return malformed("team %q has %d remaining games but %d scheduled in division", t.Name, t.Remaining, sum)
		case !outsideGames && t.Remaining != sum:
			return malformed("team %q has %d remaining games but %d scheduled", t.Name, t.Remaining, sum)
		}
	}

	return nil
}
