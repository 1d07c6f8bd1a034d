package elimination

// layout is the vertex numbering of one query's flow network. It skips the
// queried team and is rebuilt for every query:
//
//	0                            source
//	1 .. games                   one vertex per unordered pair of rivals
//	games+1 .. games+rivals      one vertex per rival
//	games+rivals+1               sink
type layout struct {
	skip   int // roster index of the queried team
	rivals int // teams other than skip
	games  int // rivals choose 2
}

func newLayout(teams, skip int) layout {
	rivals := teams - 1

	return layout{skip: skip, rivals: rivals, games: rivals * (rivals - 1) / 2}
}

func (l layout) vertexCount() int { return l.games + l.rivals + 2 }

func (l layout) source() int { return 0 }

func (l layout) sink() int { return l.games + l.rivals + 1 }

// rank maps a roster index other than skip onto 0..rivals-1.
func (l layout) rank(i int) int {
	if i > l.skip {
		return i - 1
	}

	return i
}

// gameVertex returns the vertex of the pair {i, j}, i ≠ j, both ≠ skip.
// Pairs are numbered row by row over the upper triangle of ranks.
func (l layout) gameVertex(i, j int) int {
	a, b := l.rank(i), l.rank(j)
	if a > b {
		a, b = b, a
	}

	return 1 + a*l.rivals - a*(a+1)/2 + (b - a - 1)
}

// teamVertex returns the vertex of rival i ≠ skip.
func (l layout) teamVertex(i int) int { return 1 + l.games + l.rank(i) }
