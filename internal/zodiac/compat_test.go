package zodiac

import "testing"

func TestCompatibility_MatrixIsSymmetric(t *testing.T) {
	for a := Sign(0); a < NumSigns; a++ {
		for b := Sign(0); b < NumSigns; b++ {
			ab := Compatibility(a, b)
			ba := Compatibility(b, a)
			if ab != ba {
				t.Errorf("Compatibility(%s, %s)=%d but Compatibility(%s, %s)=%d", a, b, ab, b, a, ba)
			}
		}
	}
}

func TestCompatibility_ScoresWithinRange(t *testing.T) {
	for a := Sign(0); a < NumSigns; a++ {
		for b := Sign(0); b < NumSigns; b++ {
			score := Compatibility(a, b)
			if score < 0 || score > 100 {
				t.Errorf("Compatibility(%s, %s)=%d out of [0,100]", a, b, score)
			}
		}
	}
}

func TestCompatibility_SelfPairingIsDefined(t *testing.T) {
	for s := Sign(0); s < NumSigns; s++ {
		if got := Compatibility(s, s); got != 75 {
			t.Errorf("Compatibility(%s, %s)=%d, want 75", s, s, got)
		}
	}
}

func TestCompatibility_KnownPairs(t *testing.T) {
	tests := []struct {
		a, b Sign
		want int
	}{
		{Leo, Sagittarius, 93},
		{Taurus, Capricorn, 95},
		{Cancer, Pisces, 95},
		{Taurus, Sagittarius, 40},
		{Aries, Cancer, 42},
	}

	for _, tt := range tests {
		if got := Compatibility(tt.a, tt.b); got != tt.want {
			t.Errorf("Compatibility(%s, %s)=%d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompatibility_UnknownSignFallsBackToNeutral(t *testing.T) {
	if got := Compatibility(Unknown, Leo); got != NeutralScore {
		t.Errorf("Compatibility(Unknown, Leo)=%d, want %d", got, NeutralScore)
	}
	if got := Compatibility(Leo, Sign(99)); got != NeutralScore {
		t.Errorf("Compatibility(Leo, 99)=%d, want %d", got, NeutralScore)
	}
}

func TestCompatibilityByName_CaseInsensitive(t *testing.T) {
	want := Compatibility(Leo, Sagittarius)

	for _, pair := range [][2]string{
		{"Leo", "Sagittarius"},
		{"leo", "sagittarius"},
		{"LEO", "SAGITTARIUS"},
		{"lEo", "SagiTTarius"},
	} {
		if got := CompatibilityByName(pair[0], pair[1]); got != want {
			t.Errorf("CompatibilityByName(%q, %q)=%d, want %d", pair[0], pair[1], got, want)
		}
	}
}

func TestCompatibilityByName_UnrecognizedName(t *testing.T) {
	if got := CompatibilityByName("Ophiuchus", "Leo"); got != NeutralScore {
		t.Errorf("CompatibilityByName(Ophiuchus, Leo)=%d, want %d", got, NeutralScore)
	}
	if got := CompatibilityByName("", ""); got != NeutralScore {
		t.Errorf("CompatibilityByName empty=%d, want %d", got, NeutralScore)
	}
}
