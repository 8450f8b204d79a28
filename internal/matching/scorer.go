// internal/matching/scorer.go
// Pairwise compatibility scoring: zodiac + hobbies + intent.

package matching

import (
	"math"

	"github.com/orbitcampus/orbit-backend/internal/zodiac"
)

// Component weights. These are product constants; changing them changes
// every score in the system.
const (
	weightSun    = 0.40
	weightMoon   = 0.25
	weightHobby  = 0.20
	weightIntent = 0.15
)

// hobbyFullOverlap is the shared-hobby count that maxes out the hobby score.
const hobbyFullOverlap = 3

// ScorePair computes the 0-100 compatibility total for two candidates along
// with its breakdown. Scoring is pure: same inputs always produce the same
// score, and ScorePair(a, b) == ScorePair(b, a).
func ScorePair(a, b *Candidate) (int, Breakdown) {
	// 1. Sun sign compatibility (40% weight)
	sunScore := zodiac.NeutralScore
	if a.Sun.Valid() && b.Sun.Valid() {
		sunScore = zodiac.Compatibility(a.Sun, b.Sun)
	}

	// 2. Moon sign compatibility (25% weight); missing moon placements
	// inherit the sun score rather than a separate default
	moonScore := sunScore
	if a.Moon.Valid() && b.Moon.Valid() {
		moonScore = zodiac.Compatibility(a.Moon, b.Moon)
	}

	// 3. Hobby overlap (20% weight)
	overlap := hobbyOverlap(a.Hobbies, b.Hobbies)
	hobbyScore := zodiac.NeutralScore
	if len(a.Hobbies) > 0 || len(b.Hobbies) > 0 {
		hobbyScore = overlapScore(overlap)
	}

	// 4. Looking-for alignment (15% weight)
	intentScore := intentAlignment(a.LookingFor.Normalize(), b.LookingFor.Normalize())

	total := int(math.Round(
		float64(sunScore)*weightSun +
			float64(moonScore)*weightMoon +
			float64(hobbyScore)*weightHobby +
			float64(intentScore)*weightIntent,
	))

	return total, Breakdown{
		SunScore:     sunScore,
		MoonScore:    moonScore,
		HobbyOverlap: overlap,
		HobbyScore:   hobbyScore,
		IntentScore:  intentScore,
	}
}

// hobbyOverlap counts distinct shared hobbies; duplicate tags collapse.
func hobbyOverlap(hobbies1, hobbies2 []string) int {
	if len(hobbies1) == 0 || len(hobbies2) == 0 {
		return 0
	}

	set := make(map[string]bool, len(hobbies1))
	for _, h := range hobbies1 {
		set[h] = true
	}

	count := 0
	for _, h := range hobbies2 {
		if set[h] {
			count++
			delete(set, h)
		}
	}
	return count
}

// overlapScore maps a shared-hobby count to 0-100, capped at full overlap.
func overlapScore(count int) int {
	if count >= hobbyFullOverlap {
		return 100
	}
	return int(math.Round(float64(count) / hobbyFullOverlap * 100))
}

// intentAlignment scores how well two intents line up: identical intents
// score 100, "both" on either side scores 80, a direct friend/date
// mismatch scores 40.
func intentAlignment(i1, i2 Intent) int {
	if i1 == i2 {
		return 100
	}
	if i1 == IntentBoth || i2 == IntentBoth {
		return 80
	}
	return 40
}
