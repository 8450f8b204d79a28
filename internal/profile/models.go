// internal/profile/models.go

package profile

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/lib/pq"
)

// User is a student account with everything onboarding collects. Zodiac
// placements are derived server-side from the birth data, never accepted
// from the client.
type User struct {
	ID            int64          `json:"id" db:"id"`
	Email         string         `json:"email" db:"email"`
	PasswordHash  *string        `json:"-" db:"password_hash"`
	IsGuest       bool           `json:"is_guest" db:"is_guest"`
	Name          string         `json:"name" db:"name"`
	DOB           *time.Time     `json:"dob,omitempty" db:"dob"`
	BirthTime     *string        `json:"birth_time,omitempty" db:"birth_time"` // "HH:MM"
	BirthLocation *string        `json:"birth_location,omitempty" db:"birth_location"`
	Phone         *string        `json:"phone,omitempty" db:"phone"`
	Instagram     *string        `json:"instagram,omitempty" db:"instagram"`
	Hobbies       pq.StringArray `json:"hobbies" db:"hobbies"`
	Year          *string        `json:"year,omitempty" db:"year"`
	VibeAnswers   VibeAnswers    `json:"vibe_answers" db:"vibe_answers"`
	LookingFor    *string        `json:"looking_for,omitempty" db:"looking_for"`
	Gender        *string        `json:"gender,omitempty" db:"gender"`
	InterestedIn  pq.StringArray `json:"interested_in" db:"interested_in"`

	SunSign    *string `json:"-" db:"sun_sign"`
	MoonSign   *string `json:"-" db:"moon_sign"`
	RisingSign *string `json:"-" db:"rising_sign"`

	School             string    `json:"school" db:"school"`
	OnboardingComplete bool      `json:"onboarding_complete" db:"onboarding_complete"`
	EmailVerified      bool      `json:"email_verified" db:"email_verified"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// VibeAnswers holds the onboarding quiz answers, e.g.
// {"weekend": "out", "love_language": "time", "red_flag": "flaky"}
type VibeAnswers map[string]string

// Scan implements the sql.Scanner interface for VibeAnswers
func (v *VibeAnswers) Scan(value interface{}) error {
	if value == nil {
		*v = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("vibe_answers: unsupported scan type")
	}
	return json.Unmarshal(bytes, v)
}

// Value implements the driver.Valuer interface for VibeAnswers
func (v VibeAnswers) Value() (driver.Value, error) {
	if v == nil {
		return json.Marshal(VibeAnswers{})
	}
	return json.Marshal(v)
}

// Zodiac is the derived chart placement trio shown on profiles.
type Zodiac struct {
	Sun    *string `json:"sun"`
	Moon   *string `json:"moon"`
	Rising *string `json:"rising"`
}

// Zodiac bundles the user's stored placements.
func (u *User) Zodiac() Zodiac {
	return Zodiac{Sun: u.SunSign, Moon: u.MoonSign, Rising: u.RisingSign}
}
