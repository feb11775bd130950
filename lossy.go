package countish

import "math"

// Lossy implements the deterministic Lossy Counting sketch. The stream is
// divided into buckets of ⌈1/ε⌉ observations; at every bucket boundary,
// entries whose worst-case total count cannot exceed the current bucket id
// are pruned. Stored counts underestimate true counts by at most ε·N, and
// every key with true frequency ≥ support·N is reported.
type Lossy struct {
	Support         float64
	ErrorTolerance  float64
	BucketWidth     uint64
	N               uint64
	CurrentBucket   uint64
	D               map[string]*FDelta
	StoredKeysBytes int
}

var _ Counter = &Lossy{}

// NewLossy returns a Lossy Counting sketch with the given support threshold
// and error tolerance, 0 < errorTolerance < support <= 1.
func NewLossy(support, errorTolerance float64) (*Lossy, error) {
	if err := validateSupport(support); err != nil {
		return nil, err
	}
	if err := validateErrorTolerance(support, errorTolerance); err != nil {
		return nil, err
	}
	return &Lossy{
		Support:        support,
		ErrorTolerance: errorTolerance,
		BucketWidth:    uint64(math.Ceil(1 / errorTolerance)),
		D:              make(map[string]*FDelta),
	}, nil
}

// Observe records one occurrence of the given key.
func (me *Lossy) Observe(key string) {
	me.N++
	me.CurrentBucket = (me.N + me.BucketWidth - 1) / me.BucketWidth
	if e, ok := me.D[key]; ok {
		e.F++
	} else {
		// Delta covers the observations of buckets 1..CurrentBucket-1,
		// during which this key may have been admitted and pruned.
		me.D[key] = &FDelta{F: 1, Delta: me.CurrentBucket - 1}
		me.StoredKeysBytes += len(key)
	}
	if me.N%me.BucketWidth == 0 {
		me.prune()
	}
}

// prune drops every entry whose upper-bound count does not exceed the
// current bucket id. Such entries cannot reach ε·N at any future query.
func (me *Lossy) prune() {
	for key, e := range me.D {
		if e.F+e.Delta <= me.CurrentBucket {
			me.StoredKeysBytes -= len(key)
			delete(me.D, key)
		}
	}
}

// Count returns the stored count of the given key, a lower bound on its
// true count. Keys not tracked report 0.
func (me *Lossy) Count(key string) uint64 {
	if e, ok := me.D[key]; ok {
		return e.F
	}
	return 0
}

// Len returns the number of tracked keys.
func (me *Lossy) Len() int { return len(me.D) }

// ItemsAboveThreshold returns every tracked key whose stored count is at
// least (threshold − ε)·N. Keys with true frequency ≥ threshold are always
// included; no key with true frequency below threshold − ε ever is.
func (me *Lossy) ItemsAboveThreshold(threshold float64) ([]Entry, error) {
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
func (me *Lossy) SizeBytes() int {
	return sizeofLossyStruct +
		sizeofStringFDeltaMap + (sizeofString+sizeofInt+sizeofFDelta)*len(me.D) +
		me.StoredKeysBytes
}
