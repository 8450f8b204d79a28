// internal/zodiac/compat.go
// 12x12 zodiac compatibility matrix, scores 0-100.
// Same sign, trine (4 apart) and sextile (2 apart) score high;
// square (3 apart) reads as tension, opposition (6 apart) as attraction.

package zodiac

// NeutralScore is returned when either sign is outside the known wheel.
const NeutralScore = 50

var compatMatrix = [NumSigns][NumSigns]int{
	//   Ari  Tau  Gem  Can  Leo  Vir  Lib  Sco  Sag  Cap  Aqu  Pis
	{75, 55, 78, 42, 93, 50, 72, 48, 93, 47, 78, 67}, // Aries
	{55, 75, 60, 85, 55, 90, 62, 88, 40, 95, 58, 85}, // Taurus
	{78, 60, 75, 55, 80, 62, 88, 48, 78, 50, 93, 55}, // Gemini
	{42, 85, 55, 75, 50, 78, 42, 92, 40, 62, 48, 95}, // Cancer
	{93, 55, 80, 50, 75, 55, 85, 58, 93, 48, 65, 50}, // Leo
	{50, 90, 62, 78, 55, 75, 55, 82, 48, 92, 50, 68}, // Virgo
	{72, 62, 88, 42, 85, 55, 75, 60, 72, 48, 85, 55}, // Libra
	{48, 88, 48, 92, 58, 82, 60, 75, 55, 78, 50, 90}, // Scorpio
	{93, 40, 78, 40, 93, 48, 72, 55, 75, 50, 85, 62}, // Sagittarius
	{47, 95, 50, 62, 48, 92, 48, 78, 50, 75, 55, 70}, // Capricorn
	{78, 58, 93, 48, 65, 50, 85, 50, 85, 55, 75, 58}, // Aquarius
	{67, 85, 55, 95, 50, 68, 55, 90, 62, 70, 58, 75}, // Pisces
}

// Compatibility returns the affinity score between two signs.
// The matrix is symmetric; unknown signs resolve to NeutralScore.
func Compatibility(a, b Sign) int {
	if !a.Valid() || !b.Valid() {
		return NeutralScore
	}
	return compatMatrix[a][b]
}

// CompatibilityByName is the string form of Compatibility. Names are
// matched case-insensitively; unrecognized names score NeutralScore.
func CompatibilityByName(a, b string) int {
	return Compatibility(Parse(a), Parse(b))
}
