// SPDX-License-Identifier: MIT

package roster

// Option configures roster construction and loading.
type Option func(*options)

type options struct {
	outsideGames bool
}

// WithOutsideGames relaxes the remaining-games check from equality to
// Remaining ≥ Σ Against, for divisions whose teams also play opponents
// outside the division. Those games can only add losses to the outside
// opponent, never wins to a division rival, so elimination is unaffected.
func WithOutsideGames() Option {
	return func(o *options) { o.outsideGames = true }
}

func gatherOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
