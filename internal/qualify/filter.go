package qualify

import "prospect-engine/internal/domain"

// Verdict classifies one candidate. Exactly one verdict per candidate; the
// precedence of the rejection checks decides which reason gets reported.
type Verdict int

const (
	Accept Verdict = iota
	RejectHasWebsite
	RejectLowRating
	RejectNoPhone
)

// DefaultMinRating is the acceptance threshold when config leaves it unset.
const DefaultMinRating = 4.0

func (v Verdict) Accepted() bool { return v == Accept }

// Reason is the short label used in skip notifications.
func (v Verdict) Reason() string {
	switch v {
	case RejectHasWebsite:
		return "Has Website"
	case RejectLowRating:
		return "Low Rating"
	case RejectNoPhone:
		return "No Phone"
	default:
		return "Accepted"
	}
}

// Evaluate applies the strict acceptance rules in precedence order:
// website present beats rating, rating beats phone. Pure and total.
func Evaluate(c domain.Candidate, minRating float64) Verdict {
	if minRating <= 0 {
		minRating = DefaultMinRating
	}
	switch {
	case c.HasWebsite:
		return RejectHasWebsite
	case c.Rating == nil || *c.Rating < minRating:
		return RejectLowRating
	case c.Phone == "":
		return RejectNoPhone
	default:
		return Accept
	}
}
