// internal/profile/astrology.go
// Natal chart calculation collaborator.

package profile

import (
	"context"
	"time"

	"github.com/orbitcampus/orbit-backend/internal/zodiac"
)

// Chart is a computed natal chart. Moon and Rising stay Unknown when the
// chart source cannot resolve them.
type Chart struct {
	Sun    zodiac.Sign
	Moon   zodiac.Sign
	Rising zodiac.Sign
}

// ChartService computes a natal chart from birth data. Full chart math
// (ephemeris, houses) lives outside this service; implementations wrap an
// external computation and must degrade gracefully.
type ChartService interface {
	NatalChart(ctx context.Context, dob time.Time, birthTime, city string) (*Chart, error)
}

// SunOnlyChartService derives just the sun sign from the birth date. It is
// the default chart source and the fallback path when a richer one fails.
type SunOnlyChartService struct{}

func NewSunOnlyChartService() *SunOnlyChartService {
	return &SunOnlyChartService{}
}

func (s *SunOnlyChartService) NatalChart(ctx context.Context, dob time.Time, birthTime, city string) (*Chart, error) {
	return &Chart{
		Sun:    zodiac.SunSignFor(int(dob.Month()), dob.Day()),
		Moon:   zodiac.Unknown,
		Rising: zodiac.Unknown,
	}, nil
}
