// internal/matching/dto.go
package matching

import "time"

// GenerateMatchesDTO guards the admin-only run trigger.
type GenerateMatchesDTO struct {
	AdminSecret string `json:"admin_secret" validate:"required"`
}

// Match view statuses for the "get my match" read path.
const (
	StatusWaiting   = "waiting"
	StatusCountdown = "countdown"
	StatusRevealed  = "revealed"
)

// PartnerCard is what a matched user may see about their partner after the
// reveal.
type PartnerCard struct {
	Name      string   `json:"name"`
	SunSign   string   `json:"sun_sign"`
	MoonSign  string   `json:"moon_sign,omitempty"`
	Hobbies   []string `json:"hobbies"`
	Instagram *string  `json:"instagram,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
}

// MatchView is the response for GET /matches/me. Before the reveal it is a
// teaser without partner details.
type MatchView struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Match   *MatchDetail `json:"match"`
}

type MatchDetail struct {
	ID          int64        `json:"id"`
	Score       int          `json:"compatibility_score"`
	MatchType   string       `json:"match_type"`
	Revealed    bool         `json:"revealed"`
	RevealAt    *time.Time   `json:"reveal_at,omitempty"`
	Breakdown   *Breakdown   `json:"astro_breakdown,omitempty"`
	Description string       `json:"cosmic_description,omitempty"`
	Partner     *PartnerCard `json:"partner,omitempty"`
	CreatedAt   *time.Time   `json:"created_at,omitempty"`
}
