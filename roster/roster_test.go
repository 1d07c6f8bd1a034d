// SPDX-License-Identifier: MIT

package roster_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pennant/roster"
)

// fourTeams is the classic four-team division.
func fourTeams() []roster.Team {
	return []roster.Team{
		{Name: "Atlanta", Wins: 83, Losses: 71, Remaining: 8, Against: []int{0, 1, 6, 1}},
		{Name: "Philadelphia", Wins: 80, Losses: 79, Remaining: 3, Against: []int{1, 0, 0, 2}},
		{Name: "New_York", Wins: 78, Losses: 78, Remaining: 6, Against: []int{6, 0, 0, 0}},
		{Name: "Montreal", Wins: 77, Losses: 82, Remaining: 3, Against: []int{1, 2, 0, 0}},
	}
}

// RosterSuite covers construction, validation and accessors.
type RosterSuite struct {
	suite.Suite
	r *roster.Roster
}

func (s *RosterSuite) SetupTest() {
	r, err := roster.New(fourTeams())
	require.NoError(s.T(), err)
	s.r = r
}

func (s *RosterSuite) TestAccessors() {
	require.Equal(s.T(), 4, s.r.TeamCount())
	require.Equal(s.T(), []string{"Atlanta", "Philadelphia", "New_York", "Montreal"}, s.r.TeamNames())

	w, err := s.r.Wins("Atlanta")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 83, w)

	l, err := s.r.Losses("Philadelphia")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 79, l)

	rem, err := s.r.Remaining("New_York")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 6, rem)

	g, err := s.r.GamesBetween("Atlanta", "New_York")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 6, g)

	i, err := s.r.Index("Montreal")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, i)
	require.Equal(s.T(), 2, s.r.Against(i, 1))

	team, err := s.r.Lookup("Montreal")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 80, team.MaxWins())
}

// TestGamesBetweenSymmetric: gamesBetween(A, B) == gamesBetween(B, A) for all pairs.
func (s *RosterSuite) TestGamesBetweenSymmetric() {
	names := s.r.TeamNames()
	for _, a := range names {
		for _, b := range names {
			ab, err := s.r.GamesBetween(a, b)
			require.NoError(s.T(), err)
			ba, err := s.r.GamesBetween(b, a)
			require.NoError(s.T(), err)
			require.Equal(s.T(), ab, ba, "%s vs %s", a, b)
		}
	}
}

func (s *RosterSuite) TestInvalidTeam() {
	_, err := s.r.Wins("Boston")
	require.ErrorIs(s.T(), err, roster.ErrInvalidTeam)
	require.Contains(s.T(), err.Error(), `"Boston"`)

	_, err = s.r.Losses("")
	require.ErrorIs(s.T(), err, roster.ErrInvalidTeam)
	_, err = s.r.Remaining("boston")
	require.ErrorIs(s.T(), err, roster.ErrInvalidTeam)
	_, err = s.r.GamesBetween("Atlanta", "Boston")
	require.ErrorIs(s.T(), err, roster.ErrInvalidTeam)
	_, err = s.r.GamesBetween("Boston", "Atlanta")
	require.ErrorIs(s.T(), err, roster.ErrInvalidTeam)
	_, err = s.r.Index("Boston")
	require.ErrorIs(s.T(), err, roster.ErrInvalidTeam)
	_, err = s.r.Lookup("Boston")
	require.ErrorIs(s.T(), err, roster.ErrInvalidTeam)
}

// TestImmutable: neither the input slice nor returned copies alias the roster.
func (s *RosterSuite) TestImmutable() {
	teams := fourTeams()
	r, err := roster.New(teams)
	require.NoError(s.T(), err)

	teams[0].Wins = 0
	teams[0].Against[2] = 99
	got := r.Team(0)
	require.Equal(s.T(), 83, got.Wins)
	require.Equal(s.T(), 6, got.Against[2])

	got.Against[2] = 42
	require.Equal(s.T(), 6, r.Against(0, 2))

	names := r.TeamNames()
	names[0] = "Changed"
	require.Equal(s.T(), "Atlanta", r.TeamNames()[0])
}

func (s *RosterSuite) TestMalformed() {
	cases := []struct {
		name   string
		mutate func([]roster.Team) []roster.Team
		want   string
	}{
		{"empty", func([]roster.Team) []roster.Team { return nil }, "no teams"},
		{"empty name", func(t []roster.Team) []roster.Team { t[1].Name = ""; return t }, "empty name"},
		{"space in name", func(t []roster.Team) []roster.Team { t[1].Name = "New York"; return t }, "whitespace"},
		{"duplicate name", func(t []roster.Team) []roster.Team { t[3].Name = "Atlanta"; return t }, "positions 0 and 3"},
		{"negative wins", func(t []roster.Team) []roster.Team { t[0].Wins = -1; return t }, "negative count"},
		{"negative games", func(t []roster.Team) []roster.Team { t[0].Against[1] = -1; return t }, "negative games"},
		{"short row", func(t []roster.Team) []roster.Team { t[2].Against = []int{6, 0, 0}; return t }, "lists 3 opponents"},
		{"self games", func(t []roster.Team) []roster.Team { t[2].Against[2] = 1; return t }, "against itself"},
		{"asymmetric", func(t []roster.Team) []roster.Team {
			t[0].Against[1], t[0].Against[2] = 2, 5
			return t
		}, "disagree"},
		{"huge wins", func(t []roster.Team) []roster.Team { t[0].Wins = math.MaxInt; return t }, "count above"},
		{"huge remaining", func(t []roster.Team) []roster.Team { t[1].Remaining = roster.MaxCount + 1; return t }, "count above"},
		{"huge games", func(t []roster.Team) []roster.Team {
			t[0].Against[1], t[1].Against[0] = math.MaxInt, math.MaxInt
			return t
		}, "games against team 1"},
		{"schedule sum", func(t []roster.Team) []roster.Team {
			t[0].Against[1], t[1].Against[0] = roster.MaxCount, roster.MaxCount
			t[0].Against[2], t[2].Against[0] = roster.MaxCount, roster.MaxCount
			return t
		}, "more than"},
		{"sum mismatch", func(t []roster.Team) []roster.Team { t[0].Remaining = 9; return t }, "9 remaining games but 8 scheduled"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := roster.New(tc.mutate(fourTeams()))
			require.ErrorIs(s.T(), err, roster.ErrMalformedInput)
			require.Contains(s.T(), err.Error(), tc.want)
		})
	}
}

// TestCeilingCannotWrap: a leader whose wins + remaining would overflow is
// rejected instead of ending up with a negative ceiling.
func (s *RosterSuite) TestCeilingCannotWrap() {
	_, err := roster.New([]roster.Team{
		{Name: "Leader", Wins: math.MaxInt, Remaining: 1, Against: []int{0, 1}},
		{Name: "Trailer", Wins: 0, Remaining: 1, Against: []int{1, 0}},
	})
	require.ErrorIs(s.T(), err, roster.ErrMalformedInput)

	r, err := roster.New([]roster.Team{
		{Name: "Leader", Wins: roster.MaxCount - 1, Remaining: 1, Against: []int{0, 1}},
		{Name: "Trailer", Wins: 0, Remaining: 1, Against: []int{1, 0}},
	})
	require.NoError(s.T(), err)
	leader, err := r.Lookup("Leader")
	require.NoError(s.T(), err)
	require.Equal(s.T(), roster.MaxCount, leader.MaxWins())
}

func (s *RosterSuite) TestOutsideGames() {
	teams := fourTeams()
	teams[0].Remaining = 20

	_, err := roster.New(teams)
	require.ErrorIs(s.T(), err, roster.ErrMalformedInput)

	r, err := roster.New(teams, roster.WithOutsideGames())
	require.NoError(s.T(), err)
	rem, _ := r.Remaining("Atlanta")
	require.Equal(s.T(), 20, rem)

	// Fewer remaining games than scheduled is never valid.
	teams[0].Remaining = 7
	_, err = roster.New(teams, roster.WithOutsideGames())
	require.ErrorIs(s.T(), err, roster.ErrMalformedInput)
}

func (s *RosterSuite) TestSingleTeam() {
	r, err := roster.New([]roster.Team{{Name: "Solo", Wins: 3, Against: []int{0}}})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, r.TeamCount())
	g, err := r.GamesBetween("Solo", "Solo")
	require.NoError(s.T(), err)
	require.Zero(s.T(), g)
}

func TestRosterSuite(t *testing.T) {
	suite.Run(t, new(RosterSuite))
}
