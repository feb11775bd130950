package countish

import (
	"math"
	"math/rand/v2"
	"slices"
)

// Sticky implements the randomized Sticky Sampling sketch. New keys are
// admitted with probability 1/rate; once admitted, every occurrence is
// counted. The rate starts at 1 and doubles on a geometric schedule: the
// initial rate covers the first 2t observations, and each subsequent rate r
// persists for r·t observations, where t = ⌈(1/ε)·ln(1/(s·δ))⌉. On each
// rate change, stored counts are thinned so every observation's inclusion
// probability stays 1/rate.
type Sticky struct {
	Support         float64
	ErrorTolerance  float64
	FailureProb     float64
	T               uint64
	Rate            uint64
	NextRateChange  uint64
	N               uint64
	D               map[string]*FDelta
	StoredKeysBytes int

	rng *rand.Rand
}

var _ Counter = &Sticky{}

// NewSticky returns a Sticky Sampling sketch with the given support
// threshold, error tolerance and failure probability. With probability
// at least 1−failureProb, no key with true frequency ≥ support·N is missed
// at query time.
func NewSticky(support, errorTolerance, failureProb float64, opts ...StickyOption) (*Sticky, error) {
	if err := validateSupport(support); err != nil {
		return nil, err
	}
	if err := validateErrorTolerance(support, errorTolerance); err != nil {
		return nil, err
	}
	if err := validateFailureProb(failureProb); err != nil {
		return nil, err
	}
	t := uint64(math.Ceil(1 / errorTolerance * math.Log(1/(support*failureProb))))
	out := &Sticky{
		Support:        support,
		ErrorTolerance: errorTolerance,
		FailureProb:    failureProb,
		T:              t,
		Rate:           1,
		NextRateChange: 2 * t,
		D:              make(map[string]*FDelta),
	}
	for _, opt := range opts {
		opt(out)
	}
	if out.rng == nil {
		out.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return out, nil
}

// Observe records one occurrence of the given key.
func (me *Sticky) Observe(key string) {
	me.N++
	if me.N > me.NextRateChange {
		me.Rate *= 2
		me.NextRateChange += me.Rate * me.T
		me.thin()
	}
	if e, ok := me.D[key]; ok {
		e.F++
		return
	}
	if me.rng.Float64() >= 1/float64(me.Rate) {
		return
	}
	me.D[key] = &FDelta{F: 1, Delta: me.N - 1}
	me.StoredKeysBytes += len(key)
}

// thin resamples stored counts after a rate doubling: each unit of f
// survives an unbiased coin toss, i.e. f becomes Binomial(f, 1/2). Entries
// thinned to zero are removed. Keys are visited in sorted order so that a
// fixed-seed run consumes the random stream deterministically.
func (me *Sticky) thin() {
	keys := make([]string, 0, len(me.D))
	for key := range me.D {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		e := me.D[key]
		var f uint64
		for i := uint64(0); i < e.F; i++ {
			if me.rng.Float64() < 0.5 {
				f++
			}
		}
		if f == 0 {
			me.StoredKeysBytes -= len(key)
			delete(me.D, key)
			continue
		}
		e.F = f
	}
}

// Count returns the stored count of the given key, a lower bound on its
// true count. Keys not tracked report 0.
func (me *Sticky) Count(key string) uint64 {
	if e, ok := me.D[key]; ok {
		return e.F
	}
	return 0
}

// Len returns the number of tracked keys.
func (me *Sticky) Len() int { return len(me.D) }

// ItemsAboveThreshold returns every tracked key whose stored count is at
// least (threshold − ε)·N.
func (me *Sticky) ItemsAboveThreshold(threshold float64) ([]Entry, error) {
	if err := validateThreshold(threshold); err != nil {
		return nil, err
	}
	if me.N == 0 {
		return nil, nil
	}
	n := float64(me.N)
	var out []Entry
	for key, e := range me.D {
		if float64(e.F) >= (threshold-me.ErrorTolerance)*n {
			out = append(out, Entry{Key: key, Frequency: float64(e.F) / n})
		}
	}
	return out, nil
}

// SizeBytes returns the current size of the sketch in bytes.
func (me *Sticky) SizeBytes() int {
	return sizeofStickyStruct +
		sizeofStringFDeltaMap + (sizeofString+sizeofInt+sizeofFDelta)*len(me.D) +
		me.StoredKeysBytes
}
