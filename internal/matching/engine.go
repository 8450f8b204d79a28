// internal/matching/engine.go
// Greedy one-to-one valentine assignment over all onboarded users.

package matching

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
)

// MatchStore is the persistence surface a run writes through. The caller
// decides its transactional scope; the engine only clears and creates.
type MatchStore interface {
	Clear(ctx context.Context) error
	Create(ctx context.Context, match *Match) error
}

// Describer turns a committed pair into a short human-readable blurb.
// Implementations may call out to an external generation service and are
// expected to bound their own latency.
type Describer interface {
	Describe(ctx context.Context, a, b *Candidate, score int) (string, error)
}

// Engine computes and commits one matching run. A run replaces all prior
// matches; it is not additive. The engine itself is stateless between runs
// but assumes at most one concurrent invocation - the service layer holds
// a run lock around it.
type Engine struct {
	describer Describer
	matchType string
	revealAt  *time.Time
}

// NewEngine creates a matching engine. revealAt may be nil when no reveal
// deadline is configured.
func NewEngine(describer Describer, revealAt *time.Time) *Engine {
	return &Engine{
		describer: describer,
		matchType: "valentine",
		revealAt:  revealAt,
	}
}

// Run pairs the given candidates and persists the result through store.
//
// Pair enumeration and scoring are O(n²) over the candidate pool. That is a
// deliberate limit: the pool is one campus, loaded whole into memory, and a
// run is an offline event. Do not point this at an unbounded user set.
//
// The commit phase is greedy: highest score first, each user in at most one
// match, ties broken by enumeration order via the stable sort. A locally
// best pair is never revisited even when it blocks a better global
// assignment.
func (e *Engine) Run(ctx context.Context, candidates []*Candidate, store MatchStore) (*RunSummary, error) {
	start := time.Now()
	summary := &RunSummary{RunID: uuid.New()}

	if len(candidates) < 2 {
		log.Printf("matching run %s: %d candidate(s), nothing to pair", summary.RunID, len(candidates))
		return summary, nil
	}

	// Every run starts from a clean slate
	if err := store.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clear matches: %w", err)
	}

	pairs := e.enumerate(candidates)
	summary.PairsScored = len(pairs)

	// Stable sort keeps enumeration order as the tie-break for equal scores
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Score > pairs[j].Score
	})

	matched := make(map[int64]bool, len(candidates))
	for _, pair := range pairs {
		if matched[pair.A.UserID] || matched[pair.B.UserID] {
			continue
		}

		match := &Match{
			User1ID:     pair.A.UserID,
			User2ID:     pair.B.UserID,
			Score:       pair.Score,
			Breakdown:   pair.Breakdown,
			Description: e.describe(ctx, pair),
			MatchType:   e.matchType,
			RevealAt:    e.revealAt,
		}

		if err := store.Create(ctx, match); err != nil {
			return nil, fmt.Errorf("create match for users %d/%d: %w", match.User1ID, match.User2ID, err)
		}

		matched[pair.A.UserID] = true
		matched[pair.B.UserID] = true
		summary.MatchesCreated++
		RecordMatchCreated(pair.Score)
	}

	summary.UsersMatched = 2 * summary.MatchesCreated
	RecordRun(time.Since(start), summary.PairsScored)

	log.Printf("matching run %s: %d pairs scored, %d matches created, %d users matched",
		summary.RunID, summary.PairsScored, summary.MatchesCreated, summary.UsersMatched)

	return summary, nil
}

// enumerate scores every eligible unordered pair of distinct candidates.
func (e *Engine) enumerate(candidates []*Candidate) []*ScoredPair {
	var pairs []*ScoredPair
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			a, b := candidates[i], candidates[j]
			if !Eligible(a, b) {
				continue
			}
			score, breakdown := ScorePair(a, b)
			pairs = append(pairs, &ScoredPair{A: a, B: b, Score: score, Breakdown: breakdown})
		}
	}
	return pairs
}

// describe invokes the description hook and falls back to a local template
// when it fails. A hook failure never aborts the run.
func (e *Engine) describe(ctx context.Context, pair *ScoredPair) string {
	text, err := e.describer.Describe(ctx, pair.A, pair.B, pair.Score)
	if err != nil {
		log.Printf("description generation failed for users %d/%d: %v",
			pair.A.UserID, pair.B.UserID, err)
		RecordDescriptionFallback()
		return fallbackDescription(pair.A, pair.B, pair.Score)
	}
	return text
}

// fallbackDescription builds a deterministic blurb from the two sun signs
// and the score alone.
func fallbackDescription(a, b *Candidate, score int) string {
	return fmt.Sprintf(
		"A %s and a %s walk onto campus... The stars say you're %d%% cosmically aligned. The universe clearly has plans for you two.",
		sunName(a), sunName(b), score,
	)
}

func sunName(c *Candidate) string {
	if !c.Sun.Valid() {
		return "mysterious"
	}
	return c.Sun.String()
}
