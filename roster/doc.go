// Package roster holds the immutable standings of one division: every
// team's wins, losses, remaining games, and the symmetric matrix of games
// still to be played between division rivals.
//
// A Roster is built once, validated once, and then only read:
//
//	r, err := roster.New([]roster.Team{
//	    {Name: "Atlanta", Wins: 83, Losses: 71, Remaining: 8, Against: []int{0, 1, 6, 1}},
//	    ...
//	})
//	w, err := r.Wins("Atlanta")               // 83
//	g, err := r.GamesBetween("Atlanta", "New_York")
//
// Loaders read the whitespace-token text format (Parse) or YAML (ParseYAML);
// Load picks one from the file extension.
//
// # Invariants
//
//   - names are unique, non-empty and free of whitespace;
//   - all counts are non-negative and Against has one entry per team;
//   - Against[i][i] == 0 and Against[i][j] == Against[j][i];
//   - Remaining == Σ Against (or ≥ with WithOutsideGames).
//
// # Errors
//
//	ErrMalformedInput - construction or parsing rejected the input.
//	ErrInvalidTeam    - an accessor was given a name not in the roster.
//
// A Roster is safe for concurrent use.
package roster
