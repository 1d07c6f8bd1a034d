// SPDX-License-Identifier: MIT
//
// File: parse.go
// Role: Loaders turning division files into a validated Roster.
// Formats:
//   - text: "n" then n lines "name wins losses remaining g_0 … g_{n-1}",
//     any whitespace between tokens.
//   - YAML: {teams: [{name, wins, losses, remaining, against: [...]}]}.

package roster

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxTeams bounds the declared team count before anything is allocated.
const maxTeams = 4096

// Parse reads a roster in the whitespace-token text format.
func Parse(r io.Reader, opts ...Option) (*Roster, error) {
	tok := newTokenizer(r)

	n, err := tok.integer("team count")
	if err != nil {
		return nil, err
	}
	if n <= 0 || n > maxTeams {
		return nil, malformed("team count %d outside 1..%d", n, maxTeams)
	}

	teams := make([]Team, n)
	for i := range teams {
		t := &teams[i]
		if t.Name, err = tok.word(fmt.Sprintf("team %d name", i)); err != nil {
			return nil, err
		}
		for _, f := range []struct {
			dst  *int
			what string
		}{{&t.Wins, "wins"}, {&t.Losses, "losses"}, {&t.Remaining, "remaining"}} {
			if *f.dst, err = tok.integer(fmt.Sprintf("%s %s", t.Name, f.what)); err != nil {
				return nil, err
			}
		}
		t.Against = make([]int, n)
		for j := range t.Against {
			if t.Against[j], err = tok.integer(fmt.Sprintf("%s games against team %d", t.Name, j)); err != nil {
				return nil, err
			}
		}
	}
	if extra, err := tok.word("trailing"); err == nil {
		return nil, malformed("unexpected trailing token %q at position %d", extra, tok.pos)
	}

	return New(teams, opts...)
}

// rosterFile is the YAML document shape.
type rosterFile struct {
	Teams []Team `yaml:"teams"`
}

// ParseYAML reads a roster in YAML form. Unknown fields are rejected.
func ParseYAML(r io.Reader, opts ...Option) (*Roster, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc rosterFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, malformed("empty YAML document")
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return New(doc.Teams, opts...)
}

// Load opens path and parses it as YAML for .yaml/.yml files and as the text
// format otherwise.
func Load(path string, opts ...Option) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roster: open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f, opts...)
	default:
		return Parse(f, opts...)
	}
}

// tokenizer yields whitespace-separated tokens and tracks their position
// for error messages.
type tokenizer struct {
	sc  *bufio.Scanner
	pos int
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenizer{sc: sc}
}

func (t *tokenizer) word(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", fmt.Errorf("roster: read %s: %w", what, err)
		}
		return "", malformed("unexpected end of input reading %s", what)
	}
	t.pos++

	return t.sc.Text(), nil
}

func (t *tokenizer) integer(what string) (int, error) {
	w, err := t.word(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(w)
	if err != nil {
		return 0, malformed("token %d (%s): %q is not an integer", t.pos, what, w)
	}

	return v, nil
}
