// internal/matching/filter.go

package matching

// Eligible reports whether two candidates may be paired, based on mutual
// gender preferences. An empty InterestedIn set accepts anyone; an
// undisclosed gender waives the other side's check against it. The
// predicate is pure and symmetric.
func Eligible(a, b *Candidate) bool {
	if len(a.InterestedIn) == 0 && len(b.InterestedIn) == 0 {
		return true
	}
	if len(a.InterestedIn) == 0 {
		return acceptsGender(b.InterestedIn, a.Gender)
	}
	if len(b.InterestedIn) == 0 {
		return acceptsGender(a.InterestedIn, b.Gender)
	}
	return acceptsGender(a.InterestedIn, b.Gender) && acceptsGender(b.InterestedIn, a.Gender)
}

// acceptsGender checks gender against a preference set. An undisclosed
// gender passes any set.
func acceptsGender(interestedIn []string, gender string) bool {
	if gender == "" {
		return true
	}
	for _, g := range interestedIn {
		if g == gender {
			return true
		}
	}
	return false
}
