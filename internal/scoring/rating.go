package scoring

// Rating is an ordered suitability label derived from a numeric score.
type Rating int

const (
	Poor Rating = iota
	Fair
	Good
	VeryGood
	Excellent
)

func (r Rating) String() string {
	switch r {
	case Excellent:
		return "Excellent"
	case VeryGood:
		return "Very Good"
	case Good:
		return "Good"
	case Fair:
		return "Fair"
	default:
		return "Poor"
	}
}

// MarshalText renders the rating as its label in JSON responses.
func (r Rating) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Rate maps a total score to a rating via the configured cut points.
// The mapping covers the full real line: any total below the Fair
// threshold is Poor.
func (c Config) Rate(total float64) Rating {
	switch {
	case total >= c.Ratings.Excellent:
		return Excellent
	case total >= c.Ratings.VeryGood:
		return VeryGood
	case total >= c.Ratings.Good:
		return Good
	case total >= c.Ratings.Fair:
		return Fair
	default:
		return Poor
	}
}
