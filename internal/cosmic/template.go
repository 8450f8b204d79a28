// internal/cosmic/template.go
// Template-based cosmic descriptions, used when no generation API is
// configured.

package cosmic

import (
	"context"
	"fmt"

	"github.com/orbitcampus/orbit-backend/internal/matching"
)

// TemplateDescriber produces canned blurbs keyed off the score band. It is
// fully deterministic and never fails, which makes it the default hook in
// development and the safety net behind the Gemini describer.
type TemplateDescriber struct{}

func NewTemplateDescriber() *TemplateDescriber {
	return &TemplateDescriber{}
}

func (d *TemplateDescriber) Describe(ctx context.Context, a, b *matching.Candidate, score int) (string, error) {
	sun1 := signOr(a, "Cosmic")
	sun2 := signOr(b, "Cosmic")

	switch {
	case score >= 80:
		return fmt.Sprintf(
			"When a %s meets a %s, the campus literally shakes. At %d%% cosmic alignment, you two were basically written in the stars. Expect spontaneous library study sessions that turn into deep talks about life.",
			sun1, sun2, score,
		), nil
	case score >= 60:
		return fmt.Sprintf(
			"A %s and %s combo? The planets have been gossiping about this. Your %d%% compatibility means the universe did NOT put you in the same orbit by accident. The stars predict a late-night campus walk that changes everything.",
			sun1, sun2, score,
		), nil
	default:
		return fmt.Sprintf(
			"The %s-%s energy is giving main character duo vibes. %d%% cosmically matched means even Mercury retrograde can't mess this up. The stars say your first hangout involves food and unhinged laughter.",
			sun1, sun2, score,
		), nil
	}
}

func signOr(c *matching.Candidate, fallback string) string {
	if c == nil || !c.Sun.Valid() {
		return fallback
	}
	return c.Sun.String()
}
