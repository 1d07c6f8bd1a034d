package elimination

import "fmt"

// Status is the elimination status of a team.
type Status int

const (
	// NotEliminated means some outcome of the remaining games leaves the
	// team in first place or tied for it.
	NotEliminated Status = iota
	// Eliminated means no outcome does.
	Eliminated
)

func (s Status) String() string {
	switch s {
	case NotEliminated:
		return "not_eliminated"
	case Eliminated:
		return "eliminated"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// MarshalText renders s by name.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText parses the names produced by MarshalText.
func (s *Status) UnmarshalText(b []byte) error {
	switch string(b) {
	case "not_eliminated":
		*s = NotEliminated
	case "eliminated":
		*s = Eliminated
	default:
		return fmt.Errorf("elimination: unknown status %q", b)
	}

	return nil
}

// Result is the cached answer for one team.
type Result struct {
	Team   string `json:"team"`
	Status Status `json:"status"`
	// Certificate lists, in roster order, the rivals that prove elimination.
	// It is nil exactly when Status is NotEliminated.
	Certificate []string `json:"certificate,omitempty"`
	// Trivial is set when a single rival's wins already exceed MaxWins.
	Trivial bool `json:"trivial"`
	// MaxWins is wins + remaining of the team.
	MaxWins int `json:"max_wins"`
	// FlowValue and TotalGames describe the flow check; both are zero when
	// the trivial check decided.
	FlowValue  int64 `json:"flow_value"`
	TotalGames int64 `json:"total_games"`
}

// Eliminated reports whether r.Status is Eliminated.
func (r Result) Eliminated() bool { return r.Status == Eliminated }

func (r Result) clone() Result {
	if r.Certificate != nil {
		r.Certificate = append([]string(nil), r.Certificate...)
	}

	return r
}

// Evidence is the arithmetic behind a certificate: the subset R has won
// SubsetWins games and must still play SubsetGames among themselves, so some
// member of R finishes with at least (SubsetWins+SubsetGames)/|R| wins, more
// than the team's MaxWins.
type Evidence struct {
	Team        string   `json:"team"`
	MaxWins     int      `json:"max_wins"`
	Subset      []string `json:"subset"`
	SubsetWins  int      `json:"subset_wins"`
	SubsetGames int      `json:"subset_games"`
}

// Average returns (SubsetWins+SubsetGames)/|Subset|, the average final win
// total across the subset.
func (e Evidence) Average() float64 {
	if len(e.Subset) == 0 {
		return 0
	}

	return float64(e.SubsetWins+e.SubsetGames) / float64(len(e.Subset))
}

// Excludes reports whether the subset's average exceeds MaxWins, which
// proves the team cannot finish first.
func (e Evidence) Excludes() bool {
	return len(e.Subset) > 0 && e.SubsetWins+e.SubsetGames > e.MaxWins*len(e.Subset)
}

func (e Evidence) String() string {
	return fmt.Sprintf("%v won %d with %d left among them: average %.2f > %d possible for %s",
		e.Subset, e.SubsetWins, e.SubsetGames, e.Average(), e.MaxWins, e.Team)
}
