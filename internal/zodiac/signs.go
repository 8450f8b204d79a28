// internal/zodiac/signs.go
// Zodiac sign enumeration and static sign lore tables

package zodiac

import "strings"

// Sign is a zodiac sign. Using a small integer enum instead of strings
// keeps compatibility lookups index-based.
type Sign int

const (
	Unknown Sign = iota - 1
	Aries
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// NumSigns is the size of the zodiac wheel.
const NumSigns = 12

var signNames = [NumSigns]string{
	"Aries", "Taurus", "Gemini", "Cancer",
	"Leo", "Virgo", "Libra", "Scorpio",
	"Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// String returns the canonical capitalized name, or "Unknown".
func (s Sign) String() string {
	if s < 0 || int(s) >= NumSigns {
		return "Unknown"
	}
	return signNames[s]
}

// Valid reports whether s is one of the twelve signs.
func (s Sign) Valid() bool {
	return s >= 0 && int(s) < NumSigns
}

// Parse resolves a sign name case-insensitively. Anything outside the
// twelve known names maps to Unknown.
func Parse(name string) Sign {
	name = strings.TrimSpace(name)
	for i, n := range signNames {
		if strings.EqualFold(name, n) {
			return Sign(i)
		}
	}
	return Unknown
}

// SunSignFor determines the sun sign from a birth month and day.
func SunSignFor(month, day int) Sign {
	switch {
	case (month == 3 && day >= 21) || (month == 4 && day <= 19):
		return Aries
	case (month == 4 && day >= 20) || (month == 5 && day <= 20):
		return Taurus
	case (month == 5 && day >= 21) || (month == 6 && day <= 20):
		return Gemini
	case (month == 6 && day >= 21) || (month == 7 && day <= 22):
		return Cancer
	case (month == 7 && day >= 23) || (month == 8 && day <= 22):
		return Leo
	case (month == 8 && day >= 23) || (month == 9 && day <= 22):
		return Virgo
	case (month == 9 && day >= 23) || (month == 10 && day <= 22):
		return Libra
	case (month == 10 && day >= 23) || (month == 11 && day <= 21):
		return Scorpio
	case (month == 11 && day >= 22) || (month == 12 && day <= 21):
		return Sagittarius
	case (month == 12 && day >= 22) || (month == 1 && day <= 19):
		return Capricorn
	case (month == 1 && day >= 20) || (month == 2 && day <= 18):
		return Aquarius
	default:
		return Pisces
	}
}

var elements = [NumSigns]string{
	"Fire", "Earth", "Air", "Water",
	"Fire", "Earth", "Air", "Water",
	"Fire", "Earth", "Air", "Water",
}

var modalities = [NumSigns]string{
	"Cardinal", "Fixed", "Mutable", "Cardinal",
	"Fixed", "Mutable", "Cardinal", "Fixed",
	"Mutable", "Cardinal", "Fixed", "Mutable",
}

// Element returns the classical element for a sign ("Unknown" otherwise).
func Element(s Sign) string {
	if !s.Valid() {
		return "Unknown"
	}
	return elements[s]
}

// Modality returns the modality for a sign ("Unknown" otherwise).
func Modality(s Sign) string {
	if !s.Valid() {
		return "Unknown"
	}
	return modalities[s]
}

var descriptions = [NumSigns]string{
	"The Ram - Bold, ambitious, and ready to charge into anything",
	"The Bull - Grounded, loyal, and unapologetically stubborn",
	"The Twins - Witty, curious, and never boring",
	"The Crab - Nurturing, intuitive, and emotionally deep",
	"The Lion - Confident, dramatic, and impossible to ignore",
	"The Maiden - Analytical, helpful, and detail-obsessed",
	"The Scales - Charming, fair, and aesthetically gifted",
	"The Scorpion - Intense, magnetic, and fiercely loyal",
	"The Archer - Adventurous, optimistic, and brutally honest",
	"The Goat - Disciplined, ambitious, and surprisingly funny",
	"The Water Bearer - Innovative, independent, and wonderfully weird",
	"The Fish - Dreamy, empathetic, and creatively gifted",
}

var emojis = [NumSigns]string{
	"♈", "♉", "♊", "♋", "♌", "♍", "♎", "♏", "♐", "♑", "♒", "♓",
}

// Description returns the short sign blurb shown on cosmic profiles.
func Description(s Sign) string {
	if !s.Valid() {
		return ""
	}
	return descriptions[s]
}

// Emoji returns the astrological symbol for a sign.
func Emoji(s Sign) string {
	if !s.Valid() {
		return ""
	}
	return emojis[s]
}
