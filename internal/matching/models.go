// internal/matching/models.go

package matching

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/orbitcampus/orbit-backend/internal/zodiac"
)

// Intent is what a participant is looking for on campus.
type Intent string

const (
	IntentFriend Intent = "friend"
	IntentDate   Intent = "date"
	IntentBoth   Intent = "both"
)

// Normalize maps an unset intent to IntentBoth.
func (i Intent) Normalize() Intent {
	switch i {
	case IntentFriend, IntentDate, IntentBoth:
		return i
	default:
		return IntentBoth
	}
}

// Candidate is the slice of a user the matcher needs. Callers build these
// from onboarded users only; the engine does not re-check onboarding.
type Candidate struct {
	UserID       int64
	Name         string
	Sun          zodiac.Sign
	Moon         zodiac.Sign // zodiac.Unknown when the chart had no moon placement
	Hobbies      []string
	LookingFor   Intent
	Gender       string   // empty when undisclosed
	InterestedIn []string // empty means no restriction
}

// Breakdown exposes the raw sub-scores behind a compatibility total so the
// description generator and the frontend can explain the number.
type Breakdown struct {
	SunScore     int `json:"sun_compat"`
	MoonScore    int `json:"moon_compat"`
	HobbyOverlap int `json:"hobby_overlap"`
	HobbyScore   int `json:"hobby_score"`
	IntentScore  int `json:"intent_score"`
}

// Scan implements sql.Scanner so Breakdown maps to a jsonb column.
func (b *Breakdown) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("breakdown: unsupported scan type")
	}
	return json.Unmarshal(bytes, b)
}

// Value implements driver.Valuer for Breakdown.
func (b Breakdown) Value() (driver.Value, error) {
	return json.Marshal(b)
}

// ScoredPair is an ephemeral candidate pairing produced during a run.
// It is discarded once the greedy commit phase finishes.
type ScoredPair struct {
	A         *Candidate
	B         *Candidate
	Score     int
	Breakdown Breakdown
}

// Match is the persisted outcome of a run. The engine creates it once and
// never mutates it afterwards; only the reveal workflow flips Revealed.
type Match struct {
	ID          int64      `json:"id" db:"id"`
	User1ID     int64      `json:"user1_id" db:"user1_id"`
	User2ID     int64      `json:"user2_id" db:"user2_id"`
	Score       int        `json:"compatibility_score" db:"compatibility_score"`
	Breakdown   Breakdown  `json:"astro_breakdown" db:"astro_breakdown"`
	Description string     `json:"cosmic_description" db:"cosmic_description"`
	MatchType   string     `json:"match_type" db:"match_type"`
	Revealed    bool       `json:"revealed" db:"revealed"`
	RevealAt    *time.Time `json:"reveal_at,omitempty" db:"reveal_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// PartnerOf returns the other participant's id, or 0 if userID is not part
// of the match.
func (m *Match) PartnerOf(userID int64) int64 {
	switch userID {
	case m.User1ID:
		return m.User2ID
	case m.User2ID:
		return m.User1ID
	default:
		return 0
	}
}

// RunSummary reports what a matching run produced.
type RunSummary struct {
	RunID          uuid.UUID `json:"run_id"`
	MatchesCreated int       `json:"matches_created"`
	UsersMatched   int       `json:"users_matched"`
	PairsScored    int       `json:"pairs_scored"`
}
