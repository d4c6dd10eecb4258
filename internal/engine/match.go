package engine

import (
	"errors"
	"math"

	"sobi/internal/core"
)

// ErrEmptyCatalogue is returned when matching is attempted against an empty
// archetype list. This is a configuration fault: the catalogue is compiled
// in and a correctly initialized process never hits it.
var ErrEmptyCatalogue = errors.New("empty archetype catalogue")

// Distance is the Euclidean distance between two profiles in 4-space.
func Distance(a, b core.Profile) float64 {
	da, db := a.Dimensions(), b.Dimensions()
	var sum float64
	for i := range da {
		d := float64(da[i] - db[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// MatchCharacter selects the archetype nearest to the profile. Ties break
// toward the earlier catalogue entry, so the fixed enumeration order is
// significant. Similarity is max(0, 100-distance); archetype patterns are
// used as published, without renormalization, so distances above 100 and a
// floored similarity of 0 are legitimate outcomes.
func MatchCharacter(p core.Profile, archetypes []core.Archetype) (core.MatchResult, error) {
	if len(archetypes) == 0 {
		return core.MatchResult{}, ErrEmptyCatalogue
	}

	best := archetypes[0]
	bestDist := Distance(p, best.Pattern)
	for _, a := range archetypes[1:] {
		if d := Distance(p, a.Pattern); d < bestDist {
			best = a
			bestDist = d
		}
	}

	return core.MatchResult{
		Archetype:  best,
		Profile:    p,
		Distance:   bestDist,
		Similarity: math.Max(0, 100-bestDist),
	}, nil
}
