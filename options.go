package countish

import "math/rand/v2"

// StickyOption configures a Sticky sampler.
type StickyOption func(*Sticky)

// WithRand sets the sampler's random source. Fixing the seed makes runs
// reproducible.
func WithRand(rng *rand.Rand) StickyOption {
	return func(s *Sticky) { s.rng = rng }
}
