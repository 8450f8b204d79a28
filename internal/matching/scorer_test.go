package matching

import (
	"testing"

	"github.com/orbitcampus/orbit-backend/internal/zodiac"
)

func TestScorePairWeightedTotal(t *testing.T) {
	// Leo x Sagittarius (93), no moon placements, one shared hobby, date
	// meets both: 93*0.40 + 93*0.25 + 33*0.20 + 80*0.15 = 79.05 -> 79
	a := &Candidate{
		UserID:     1,
		Sun:        zodiac.Leo,
		Moon:       zodiac.Unknown,
		Hobbies:    []string{"hiking", "painting"},
		LookingFor: IntentDate,
	}
	b := &Candidate{
		UserID:     2,
		Sun:        zodiac.Sagittarius,
		Moon:       zodiac.Unknown,
		Hobbies:    []string{"hiking", "gaming"},
		LookingFor: IntentBoth,
	}

	score, breakdown := ScorePair(a, b)

	if score != 79 {
		t.Errorf("score = %d, want 79", score)
	}
	if breakdown.SunScore != 93 {
		t.Errorf("sun score = %d, want 93", breakdown.SunScore)
	}
	if breakdown.MoonScore != 93 {
		t.Errorf("moon score = %d, want 93 (inherited from sun)", breakdown.MoonScore)
	}
	if breakdown.HobbyOverlap != 1 || breakdown.HobbyScore != 33 {
		t.Errorf("hobby overlap/score = %d/%d, want 1/33", breakdown.HobbyOverlap, breakdown.HobbyScore)
	}
	if breakdown.IntentScore != 80 {
		t.Errorf("intent score = %d, want 80", breakdown.IntentScore)
	}
}

func TestScorePairSymmetric(t *testing.T) {
	a := &Candidate{Sun: zodiac.Cancer, Moon: zodiac.Pisces, Hobbies: []string{"film", "cooking"}, LookingFor: IntentFriend}
	b := &Candidate{Sun: zodiac.Scorpio, Moon: zodiac.Taurus, Hobbies: []string{"cooking"}, LookingFor: IntentDate}

	scoreAB, _ := ScorePair(a, b)
	scoreBA, _ := ScorePair(b, a)

	if scoreAB != scoreBA {
		t.Errorf("ScorePair not symmetric: %d vs %d", scoreAB, scoreBA)
	}
}

func TestScorePairMoonPlacements(t *testing.T) {
	a := &Candidate{Sun: zodiac.Leo, Moon: zodiac.Cancer, LookingFor: IntentBoth}
	b := &Candidate{Sun: zodiac.Sagittarius, Moon: zodiac.Pisces, LookingFor: IntentBoth}

	_, breakdown := ScorePair(a, b)
	if want := zodiac.Compatibility(zodiac.Cancer, zodiac.Pisces); breakdown.MoonScore != want {
		t.Errorf("moon score = %d, want %d from moon matrix", breakdown.MoonScore, want)
	}

	// One missing moon falls back to the sun component for both
	b.Moon = zodiac.Unknown
	_, breakdown = ScorePair(a, b)
	if breakdown.MoonScore != breakdown.SunScore {
		t.Errorf("moon score = %d, want sun score %d when a moon is missing",
			breakdown.MoonScore, breakdown.SunScore)
	}
}

func TestScorePairUnknownSuns(t *testing.T) {
	a := &Candidate{Sun: zodiac.Unknown, LookingFor: IntentBoth}
	b := &Candidate{Sun: zodiac.Unknown, LookingFor: IntentBoth}

	_, breakdown := ScorePair(a, b)
	if breakdown.SunScore != zodiac.NeutralScore {
		t.Errorf("sun score = %d, want neutral %d", breakdown.SunScore, zodiac.NeutralScore)
	}
}

func TestScorePairHobbyComponent(t *testing.T) {
	tests := []struct {
		name        string
		hobbies1    []string
		hobbies2    []string
		wantOverlap int
		wantScore   int
	}{
		{"both empty is neutral", nil, nil, 0, 50},
		{"one side empty scores zero", []string{"chess"}, nil, 0, 0},
		{"no overlap", []string{"chess"}, []string{"tennis"}, 0, 0},
		{"one shared", []string{"chess", "tennis"}, []string{"chess"}, 1, 33},
		{"two shared", []string{"chess", "tennis", "film"}, []string{"chess", "tennis"}, 2, 67},
		{"three shared caps out", []string{"a", "b", "c"}, []string{"a", "b", "c"}, 3, 100},
		{"beyond three stays capped", []string{"a", "b", "c", "d"}, []string{"a", "b", "c", "d"}, 4, 100},
		{"duplicate tags collapse", []string{"chess", "chess"}, []string{"chess", "chess"}, 1, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Candidate{Sun: zodiac.Aries, Hobbies: tt.hobbies1, LookingFor: IntentBoth}
			b := &Candidate{Sun: zodiac.Aries, Hobbies: tt.hobbies2, LookingFor: IntentBoth}

			_, breakdown := ScorePair(a, b)
			if breakdown.HobbyOverlap != tt.wantOverlap {
				t.Errorf("overlap = %d, want %d", breakdown.HobbyOverlap, tt.wantOverlap)
			}
			if breakdown.HobbyScore != tt.wantScore {
				t.Errorf("hobby score = %d, want %d", breakdown.HobbyScore, tt.wantScore)
			}
		})
	}
}

func TestIntentAlignment(t *testing.T) {
	tests := []struct {
		i1, i2 Intent
		want   int
	}{
		{IntentFriend, IntentFriend, 100},
		{IntentDate, IntentDate, 100},
		{IntentBoth, IntentBoth, 100},
		{IntentBoth, IntentDate, 80},
		{IntentFriend, IntentBoth, 80},
		{IntentFriend, IntentDate, 40},
	}

	for _, tt := range tests {
		if got := intentAlignment(tt.i1, tt.i2); got != tt.want {
			t.Errorf("intentAlignment(%q, %q) = %d, want %d", tt.i1, tt.i2, got, tt.want)
		}
	}
}

func TestScorePairRange(t *testing.T) {
	// Extremes stay in 0-100
	low := &Candidate{Sun: zodiac.Cancer, LookingFor: IntentFriend, Hobbies: []string{"x"}}
	lowPartner := &Candidate{Sun: zodiac.Sagittarius, LookingFor: IntentDate, Hobbies: []string{"y"}}
	high := &Candidate{Sun: zodiac.Taurus, LookingFor: IntentBoth, Hobbies: []string{"a", "b", "c"}}
	highPartner := &Candidate{Sun: zodiac.Capricorn, Moon: zodiac.Capricorn, LookingFor: IntentBoth, Hobbies: []string{"a", "b", "c"}}

	for _, pair := range [][2]*Candidate{{low, lowPartner}, {high, highPartner}} {
		score, _ := ScorePair(pair[0], pair[1])
		if score < 0 || score > 100 {
			t.Errorf("score %d out of range", score)
		}
	}
}
