// SPDX-License-Identifier: MIT

package roster_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pennant/roster"
)

func ExampleParse() {
	const division = `3
Red   10 4 3   0 2 1
Blue   9 5 2   2 0 0
Green  8 6 1   1 0 0
`
	r, err := roster.Parse(strings.NewReader(division))
	if err != nil {
		fmt.Println(err)
		return
	}
	g, _ := r.GamesBetween("Red", "Blue")
	fmt.Println(r.TeamNames(), g)
	// Output:
	// [Red Blue Green] 2
}
