package engine

import (
	"math"

	"sobi/internal/core"
)

// NormalizeProfile projects a summary set onto the four character-relevant
// categories and scales each to an integer share of their sub-total.
// Categories outside the four are ignored entirely, not folded into a rest
// bucket. A zero sub-total yields the all-zero profile.
//
// Shares round half-away-from-zero, independently per dimension, so the
// four values may sum to 99 or 101; that approximation is accepted and not
// corrected after the fact.
func NormalizeProfile(set core.SummarySet) core.Profile {
	cats := core.ProfileCategories()

	var amounts [4]int64
	var sum int64
	for i, cat := range cats {
		amounts[i] = set[cat].TotalAmount
		sum += amounts[i]
	}
	if sum <= 0 {
		return core.Profile{}
	}

	share := func(a int64) int {
		return int(math.Round(float64(a) / float64(sum) * 100))
	}
	return core.Profile{
		Food:      share(amounts[0]),
		Transport: share(amounts[1]),
		Telecom:   share(amounts[2]),
		Leisure:   share(amounts[3]),
	}
}
