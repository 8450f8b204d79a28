// internal/profile/service.go
// Business logic for profile onboarding and the matching views of users.

package profile

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/orbitcampus/orbit-backend/internal/matching"
	"github.com/orbitcampus/orbit-backend/internal/zodiac"
)

type Service interface {
	GetUser(ctx context.Context, userID int64) (*User, error)
	UpdateProfile(ctx context.Context, userID int64, dto *UpdateProfileDTO) (*User, error)
	CosmicProfile(ctx context.Context, userID int64) (*CosmicProfileResponse, error)

	// Matching collaborators
	MatchingCandidates(ctx context.Context) ([]*matching.Candidate, error)
	PartnerCard(ctx context.Context, userID int64) (*matching.PartnerCard, error)
}

type service struct {
	repo   Repository
	charts ChartService
}

func NewService(repo Repository, charts ChartService) Service {
	return &service{repo: repo, charts: charts}
}

func (s *service) GetUser(ctx context.Context, userID int64) (*User, error) {
	return s.repo.GetByID(ctx, userID)
}

// UpdateProfile applies onboarding edits. Supplying a birth date triggers
// chart derivation; the chart source failing degrades to sun-sign-only
// rather than failing the update.
func (s *service) UpdateProfile(ctx context.Context, userID int64, dto *UpdateProfileDTO) (*User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		user.Name = *dto.Name
	}
	if dto.BirthTime != nil {
		user.BirthTime = dto.BirthTime
	}
	if dto.BirthLocation != nil {
		user.BirthLocation = dto.BirthLocation
	}
	if dto.Phone != nil {
		user.Phone = dto.Phone
	}
	if dto.Instagram != nil {
		user.Instagram = dto.Instagram
	}
	if dto.Hobbies != nil {
		user.Hobbies = dto.Hobbies
	}
	if dto.Year != nil {
		user.Year = dto.Year
	}
	if dto.VibeAnswers != nil {
		user.VibeAnswers = dto.VibeAnswers
	}
	if dto.LookingFor != nil {
		user.LookingFor = dto.LookingFor
	}
	if dto.Gender != nil {
		user.Gender = dto.Gender
	}
	if dto.InterestedIn != nil {
		user.InterestedIn = dto.InterestedIn
	}

	if dto.DOB != nil {
		dob, err := time.Parse("2006-01-02", *dto.DOB)
		if err != nil {
			return nil, fmt.Errorf("invalid date format, use YYYY-MM-DD: %w", err)
		}
		user.DOB = &dob
		s.deriveChart(ctx, user, dob)
	}

	if dto.OnboardingComplete {
		user.OnboardingComplete = true
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// deriveChart fills the user's zodiac placements from birth data.
func (s *service) deriveChart(ctx context.Context, user *User, dob time.Time) {
	birthTime := ""
	if user.BirthTime != nil {
		birthTime = *user.BirthTime
	}
	city := ""
	if user.BirthLocation != nil {
		city = *user.BirthLocation
	}

	chart, err := s.charts.NatalChart(ctx, dob, birthTime, city)
	if err != nil {
		log.Printf("natal chart calculation failed for user %d: %v", user.ID, err)
		chart = &Chart{Sun: zodiac.SunSignFor(int(dob.Month()), dob.Day())}
		chart.Moon = zodiac.Unknown
		chart.Rising = zodiac.Unknown
	}

	user.SunSign = signPtr(chart.Sun)
	user.MoonSign = signPtr(chart.Moon)
	user.RisingSign = signPtr(chart.Rising)
}

func signPtr(s zodiac.Sign) *string {
	if !s.Valid() {
		return nil
	}
	name := s.String()
	return &name
}

func (s *service) CosmicProfile(ctx context.Context, userID int64) (*CosmicProfileResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &CosmicProfileResponse{
		Name:       user.Name,
		SunSign:    user.SunSign,
		MoonSign:   user.MoonSign,
		RisingSign: user.RisingSign,
		Element:    "Unknown",
		Modality:   "Unknown",
	}

	if user.SunSign != nil {
		sun := zodiac.Parse(*user.SunSign)
		resp.SunDescription = zodiac.Description(sun)
		resp.SunEmoji = zodiac.Emoji(sun)
		resp.Element = zodiac.Element(sun)
		resp.Modality = zodiac.Modality(sun)
	}

	return resp, nil
}

// MatchingCandidates converts every onboarded user into the matcher's view
// of them. Implements matching.CandidateSource.
func (s *service) MatchingCandidates(ctx context.Context) ([]*matching.Candidate, error) {
	users, err := s.repo.GetOnboarded(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]*matching.Candidate, 0, len(users))
	for _, user := range users {
		candidates = append(candidates, toCandidate(user))
	}

	return candidates, nil
}

func toCandidate(user *User) *matching.Candidate {
	candidate := &matching.Candidate{
		UserID:       user.ID,
		Name:         user.Name,
		Sun:          zodiac.Unknown,
		Moon:         zodiac.Unknown,
		Hobbies:      user.Hobbies,
		LookingFor:   matching.IntentBoth,
		InterestedIn: user.InterestedIn,
	}

	if user.SunSign != nil {
		candidate.Sun = zodiac.Parse(*user.SunSign)
	}
	if user.MoonSign != nil {
		candidate.Moon = zodiac.Parse(*user.MoonSign)
	}
	if user.LookingFor != nil {
		candidate.LookingFor = matching.Intent(*user.LookingFor).Normalize()
	}
	if user.Gender != nil {
		candidate.Gender = *user.Gender
	}

	return candidate
}

// PartnerCard builds the post-reveal partner view. Implements
// matching.PartnerDirectory.
func (s *service) PartnerCard(ctx context.Context, userID int64) (*matching.PartnerCard, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	card := &matching.PartnerCard{
		Name:      user.Name,
		Hobbies:   user.Hobbies,
		Instagram: user.Instagram,
		Phone:     user.Phone,
	}
	if card.Hobbies == nil {
		card.Hobbies = []string{}
	}
	if user.SunSign != nil {
		card.SunSign = *user.SunSign
	}
	if user.MoonSign != nil {
		card.MoonSign = *user.MoonSign
	}

	return card, nil
}
