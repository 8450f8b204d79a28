// internal/profile/dto.go
package profile

import "time"

// UpdateProfileDTO carries onboarding and profile edits. Nil pointers mean
// "leave unchanged".
type UpdateProfileDTO struct {
	Name          *string           `json:"name,omitempty" validate:"omitempty,max=100"`
	DOB           *string           `json:"dob,omitempty" validate:"omitempty,datetime=2006-01-02"`
	BirthTime     *string           `json:"birth_time,omitempty" validate:"omitempty,datetime=15:04"`
	BirthLocation *string           `json:"birth_location,omitempty" validate:"omitempty,max=200"`
	Phone         *string           `json:"phone,omitempty" validate:"omitempty,max=30"`
	Instagram     *string           `json:"instagram,omitempty" validate:"omitempty,max=50"`
	Hobbies       []string          `json:"hobbies,omitempty" validate:"omitempty,max=20,dive,max=60"`
	Year          *string           `json:"year,omitempty" validate:"omitempty,oneof=freshman sophomore junior senior grad other"`
	VibeAnswers   map[string]string `json:"vibe_answers,omitempty"`
	LookingFor    *string           `json:"looking_for,omitempty" validate:"omitempty,oneof=friend date both"`
	Gender        *string           `json:"gender,omitempty" validate:"omitempty,max=40"`
	InterestedIn  []string          `json:"interested_in,omitempty" validate:"omitempty,dive,max=40"`

	OnboardingComplete bool `json:"onboarding_complete,omitempty"`
}

// UserResponse is the JSON shape of a user profile.
type UserResponse struct {
	ID                 int64             `json:"id"`
	Email              string            `json:"email"`
	IsGuest            bool              `json:"is_guest"`
	Name               string            `json:"name"`
	DOB                *string           `json:"dob"`
	BirthTime          *string           `json:"birth_time"`
	BirthLocation      *string           `json:"birth_location"`
	Phone              *string           `json:"phone"`
	Instagram          *string           `json:"instagram"`
	Hobbies            []string          `json:"hobbies"`
	Year               *string           `json:"year"`
	VibeAnswers        map[string]string `json:"vibe_answers"`
	LookingFor         *string           `json:"looking_for"`
	Gender             *string           `json:"gender"`
	InterestedIn       []string          `json:"interested_in"`
	Zodiac             Zodiac            `json:"zodiac"`
	School             string            `json:"school"`
	OnboardingComplete bool              `json:"onboarding_complete"`
	EmailVerified      bool              `json:"email_verified"`
	CreatedAt          string            `json:"created_at"`
}

// NewUserResponse converts a stored user to its API shape.
func NewUserResponse(u *User) *UserResponse {
	var dob *string
	if u.DOB != nil {
		formatted := u.DOB.Format("2006-01-02")
		dob = &formatted
	}

	hobbies := []string(u.Hobbies)
	if hobbies == nil {
		hobbies = []string{}
	}
	interestedIn := []string(u.InterestedIn)
	if interestedIn == nil {
		interestedIn = []string{}
	}
	vibes := map[string]string(u.VibeAnswers)
	if vibes == nil {
		vibes = map[string]string{}
	}

	return &UserResponse{
		ID:                 u.ID,
		Email:              u.Email,
		IsGuest:            u.IsGuest,
		Name:               u.Name,
		DOB:                dob,
		BirthTime:          u.BirthTime,
		BirthLocation:      u.BirthLocation,
		Phone:              u.Phone,
		Instagram:          u.Instagram,
		Hobbies:            hobbies,
		Year:               u.Year,
		VibeAnswers:        vibes,
		LookingFor:         u.LookingFor,
		Gender:             u.Gender,
		InterestedIn:       interestedIn,
		Zodiac:             u.Zodiac(),
		School:             u.School,
		OnboardingComplete: u.OnboardingComplete,
		EmailVerified:      u.EmailVerified,
		CreatedAt:          u.CreatedAt.Format(time.RFC3339),
	}
}

// CosmicProfileResponse is the detailed zodiac card for one user.
type CosmicProfileResponse struct {
	Name           string  `json:"name"`
	SunSign        *string `json:"sun_sign"`
	MoonSign       *string `json:"moon_sign"`
	RisingSign     *string `json:"rising_sign"`
	SunDescription string  `json:"sun_description"`
	SunEmoji       string  `json:"sun_emoji"`
	Element        string  `json:"element"`
	Modality       string  `json:"modality"`
}
