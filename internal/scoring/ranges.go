package scoring

// Bucket maps one interval of a range table to a fixed score and a
// human-readable label. Intervals are half-open: a value v matches when
// Min <= v < Max. A degenerate bucket (Min == Max) matches only the
// exact value and is scanned before any covering bucket.
type Bucket struct {
	Min   float64
	Max   float64
	Score int
	Label string
}

// RangeTable is an ordered list of buckets scanned front to back.
// Tables are expected to cover the full real line; terminal buckets use
// +/-Inf bounds. A value that still falls outside the table span binds
// to the nearest terminal bucket.
type RangeTable []Bucket

// Lookup returns the bucket containing v. Every real input maps to
// exactly one bucket; out-of-span values bind to a terminal bucket.
func (t RangeTable) Lookup(v float64) Bucket {
	for _, b := range t {
		if b.Min == b.Max {
			if v == b.Min {
				return b
			}
			continue
		}
		if v >= b.Min && v < b.Max {
			return b
		}
	}
	if v < t[0].Min {
		return t[0]
	}
	return t[len(t)-1]
}

// Score returns the score of the bucket containing v.
func (t RangeTable) Score(v float64) int {
	return t.Lookup(v).Score
}

// Bounds returns the lowest and highest score the table can produce.
func (t RangeTable) Bounds() (min, max int) {
	min, max = t[0].Score, t[0].Score
	for _, b := range t[1:] {
		if b.Score < min {
			min = b.Score
		}
		if b.Score > max {
			max = b.Score
		}
	}
	return min, max
}
