// SPDX-License-Identifier: MIT
//
// File: roster.go
// Role: Immutable division roster: team records plus a name → index mapping.
// Policy:
//   - Construction validates every invariant once; accessors never re-check.
//   - Accessors return copies; a Roster is never mutated after New returns.
//   - Safe for concurrent readers without locking.

package roster

import "fmt"

// Team is one team's standing: wins and losses so far, games still to play,
// and how many of those are against each team of the division (indexed by
// roster position; the entry for the team itself is zero).
type Team struct {
	Name      string `yaml:"name"`
	Wins      int    `yaml:"wins"`
	Losses    int    `yaml:"losses"`
	Remaining int    `yaml:"remaining"`
	Against   []int  `yaml:"against"`
}

// MaxWins is the most wins t can finish with: every remaining game won.
func (t Team) MaxWins() int { return t.Wins + t.Remaining }

func (t Team) clone() Team {
	c := t
	c.Against = append([]int(nil), t.Against...)

	return c
}

// Roster is an immutable, validated division.
type Roster struct {
	teams []Team
	index map[string]int
}

// New validates teams and builds a Roster that owns a private copy of them.
//
// Validation order (first violation wins, wrapped in ErrMalformedInput):
// non-empty roster → unique, non-empty, whitespace-free names → non-negative
// counts → matrix shape → zero diagonal → symmetry → remaining-game totals.
//
// Complexity: O(n²) time, O(n²) space.
func New(teams []Team, opts ...Option) (*Roster, error) {
	cfg := gatherOptions(opts)

	r := &Roster{
		teams: make([]Team, len(teams)),
		index: make(map[string]int, len(teams)),
	}
	for i, t := range teams {
		r.teams[i] = t.clone()
	}
	if err := validate(r.teams, cfg); err != nil {
		return nil, err
	}
	for i, t := range r.teams {
		r.index[t.Name] = i
	}

	return r, nil
}

// TeamCount returns the number of teams.
func (r *Roster) TeamCount() int { return len(r.teams) }

// TeamNames returns all team names in insertion order.
func (r *Roster) TeamNames() []string {
	names := make([]string, len(r.teams))
	for i, t := range r.teams {
		names[i] = t.Name
	}

	return names
}

// Index returns the roster position of name.
func (r *Roster) Index(name string) (int, error) {
	i, ok := r.index[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrInvalidTeam, name)
	}

	return i, nil
}

// Team returns a copy of the team at position i. It panics if i is out of range.
func (r *Roster) Team(i int) Team { return r.teams[i].clone() }

// Lookup returns a copy of the named team.
func (r *Roster) Lookup(name string) (Team, error) {
	i, err := r.Index(name)
	if err != nil {
		return Team{}, err
	}

	return r.Team(i), nil
}

// Wins returns the number of wins for the named team.
func (r *Roster) Wins(name string) (int, error) {
	i, err := r.Index(name)
	if err != nil {
		return 0, err
	}

	return r.teams[i].Wins, nil
}

// Losses returns the number of losses for the named team.
func (r *Roster) Losses(name string) (int, error) {
	i, err := r.Index(name)
	if err != nil {
		return 0, err
	}

	return r.teams[i].Losses, nil
}

// Remaining returns the number of remaining games for the named team.
func (r *Roster) Remaining(name string) (int, error) {
	i, err := r.Index(name)
	if err != nil {
		return 0, err
	}

	return r.teams[i].Remaining, nil
}

// GamesBetween returns the number of remaining games between two teams.
// The result is symmetric in its arguments.
func (r *Roster) GamesBetween(name1, name2 string) (int, error) {
	i, err := r.Index(name1)
	if err != nil {
		return 0, err
	}
	j, err := r.Index(name2)
	if err != nil {
		return 0, err
	}

	return r.teams[i].Against[j], nil
}

// Against returns the remaining games between the teams at positions i and j
// without a name lookup. It panics if either index is out of range.
func (r *Roster) Against(i, j int) int { return r.teams[i].Against[j] }
