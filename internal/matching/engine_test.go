package matching

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/orbitcampus/orbit-backend/internal/zodiac"
)

type fakeStore struct {
	matches    []*Match
	clearCalls int
	createErr  error
}

func (s *fakeStore) Clear(ctx context.Context) error {
	s.clearCalls++
	s.matches = nil
	return nil
}

func (s *fakeStore) Create(ctx context.Context, match *Match) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.matches = append(s.matches, match)
	return nil
}

type fakeDescriber struct {
	text string
	err  error
}

func (d *fakeDescriber) Describe(ctx context.Context, a, b *Candidate, score int) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	return d.text, nil
}

// candidate builds a minimal open-to-anyone participant for engine tests.
func candidate(id int64, sun zodiac.Sign) *Candidate {
	return &Candidate{
		UserID:     id,
		Name:       fmt.Sprintf("user-%d", id),
		Sun:        sun,
		Moon:       zodiac.Unknown,
		LookingFor: IntentBoth,
	}
}

func TestRunGreedyPicksBestPairFirst(t *testing.T) {
	// Taurus-Capricorn (95) outranks Taurus-Virgo (90) and Capricorn-Virgo
	// (92), so Virgo stays unmatched in a pool of three.
	candidates := []*Candidate{
		candidate(1, zodiac.Taurus),
		candidate(2, zodiac.Capricorn),
		candidate(3, zodiac.Virgo),
	}

	store := &fakeStore{}
	engine := NewEngine(&fakeDescriber{text: "written in the stars"}, nil)

	summary, err := engine.Run(context.Background(), candidates, store)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if summary.PairsScored != 3 {
		t.Errorf("pairs scored = %d, want 3", summary.PairsScored)
	}
	if summary.MatchesCreated != 1 || summary.UsersMatched != 2 {
		t.Errorf("summary = %d matches / %d users, want 1/2",
			summary.MatchesCreated, summary.UsersMatched)
	}
	if len(store.matches) != 1 {
		t.Fatalf("stored %d matches, want 1", len(store.matches))
	}

	match := store.matches[0]
	if match.User1ID != 1 || match.User2ID != 2 {
		t.Errorf("matched users %d/%d, want 1/2", match.User1ID, match.User2ID)
	}
	if match.Description != "written in the stars" {
		t.Errorf("description = %q, want describer output", match.Description)
	}
}

func TestRunEachUserAtMostOnce(t *testing.T) {
	candidates := []*Candidate{
		candidate(1, zodiac.Aries),
		candidate(2, zodiac.Leo),
		candidate(3, zodiac.Sagittarius),
		candidate(4, zodiac.Gemini),
		candidate(5, zodiac.Aquarius),
		candidate(6, zodiac.Libra),
	}

	store := &fakeStore{}
	engine := NewEngine(&fakeDescriber{text: "x"}, nil)

	summary, err := engine.Run(context.Background(), candidates, store)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	seen := make(map[int64]bool)
	for _, m := range store.matches {
		for _, id := range []int64{m.User1ID, m.User2ID} {
			if seen[id] {
				t.Errorf("user %d appears in more than one match", id)
			}
			seen[id] = true
		}
	}

	if summary.UsersMatched != 2*summary.MatchesCreated {
		t.Errorf("users matched = %d, want %d", summary.UsersMatched, 2*summary.MatchesCreated)
	}
}

func TestRunDeterministic(t *testing.T) {
	candidates := []*Candidate{
		candidate(1, zodiac.Pisces),
		candidate(2, zodiac.Cancer),
		candidate(3, zodiac.Scorpio),
		candidate(4, zodiac.Taurus),
	}

	engine := NewEngine(&fakeDescriber{text: "x"}, nil)

	first := &fakeStore{}
	if _, err := engine.Run(context.Background(), candidates, first); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second := &fakeStore{}
	if _, err := engine.Run(context.Background(), candidates, second); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if len(first.matches) != len(second.matches) {
		t.Fatalf("run sizes differ: %d vs %d", len(first.matches), len(second.matches))
	}
	for i := range first.matches {
		a, b := first.matches[i], second.matches[i]
		if a.User1ID != b.User1ID || a.User2ID != b.User2ID || a.Score != b.Score {
			t.Errorf("match %d differs between runs: %d/%d@%d vs %d/%d@%d",
				i, a.User1ID, a.User2ID, a.Score, b.User1ID, b.User2ID, b.Score)
		}
	}
}

func TestRunEqualScoresTieBreakByEnumerationOrder(t *testing.T) {
	// All Leo: every pair scores the same, so the first enumerated pair
	// (1,2) wins and 3 stays unmatched.
	candidates := []*Candidate{
		candidate(1, zodiac.Leo),
		candidate(2, zodiac.Leo),
		candidate(3, zodiac.Leo),
	}

	store := &fakeStore{}
	engine := NewEngine(&fakeDescriber{text: "x"}, nil)

	if _, err := engine.Run(context.Background(), candidates, store); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(store.matches) != 1 {
		t.Fatalf("stored %d matches, want 1", len(store.matches))
	}
	if store.matches[0].User1ID != 1 || store.matches[0].User2ID != 2 {
		t.Errorf("tie broke to %d/%d, want 1/2",
			store.matches[0].User1ID, store.matches[0].User2ID)
	}
}

func TestRunTooFewCandidates(t *testing.T) {
	engine := NewEngine(&fakeDescriber{text: "x"}, nil)

	for _, candidates := range [][]*Candidate{nil, {candidate(1, zodiac.Leo)}} {
		store := &fakeStore{}
		summary, err := engine.Run(context.Background(), candidates, store)
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if summary.MatchesCreated != 0 || summary.UsersMatched != 0 || summary.PairsScored != 0 {
			t.Errorf("summary not empty for %d candidate(s)", len(candidates))
		}
		if store.clearCalls != 0 {
			t.Errorf("store cleared with %d candidate(s); prior matches should survive", len(candidates))
		}
	}
}

func TestRunRespectsEligibility(t *testing.T) {
	a := candidate(1, zodiac.Leo)
	a.Gender = "man"
	a.InterestedIn = []string{"woman"}
	b := candidate(2, zodiac.Sagittarius)
	b.Gender = "man"
	b.InterestedIn = []string{"woman"}

	store := &fakeStore{}
	engine := NewEngine(&fakeDescriber{text: "x"}, nil)

	summary, err := engine.Run(context.Background(), []*Candidate{a, b}, store)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.PairsScored != 0 || summary.MatchesCreated != 0 {
		t.Errorf("ineligible pair was scored or matched: %+v", summary)
	}
}

func TestRunDescriberFailureUsesFallback(t *testing.T) {
	candidates := []*Candidate{
		candidate(1, zodiac.Leo),
		candidate(2, zodiac.Sagittarius),
	}

	store := &fakeStore{}
	engine := NewEngine(&fakeDescriber{err: errors.New("quota exceeded")}, nil)

	summary, err := engine.Run(context.Background(), candidates, store)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.MatchesCreated != 1 {
		t.Fatalf("matches created = %d, want 1", summary.MatchesCreated)
	}

	desc := store.matches[0].Description
	if !strings.Contains(desc, "Leo") || !strings.Contains(desc, "Sagittarius") {
		t.Errorf("fallback description missing sun signs: %q", desc)
	}
	if !strings.Contains(desc, fmt.Sprintf("%d%%", store.matches[0].Score)) {
		t.Errorf("fallback description missing score: %q", desc)
	}
}

func TestFallbackDescriptionUnknownSun(t *testing.T) {
	a := candidate(1, zodiac.Unknown)
	b := candidate(2, zodiac.Virgo)

	desc := fallbackDescription(a, b, 61)
	if !strings.Contains(desc, "mysterious") {
		t.Errorf("unknown sun should read as mysterious: %q", desc)
	}
}

func TestRunStoreCreateFailureAborts(t *testing.T) {
	candidates := []*Candidate{
		candidate(1, zodiac.Leo),
		candidate(2, zodiac.Sagittarius),
	}

	store := &fakeStore{createErr: errors.New("connection reset")}
	engine := NewEngine(&fakeDescriber{text: "x"}, nil)

	if _, err := engine.Run(context.Background(), candidates, store); err == nil {
		t.Fatal("Run should surface store failures")
	}
}
