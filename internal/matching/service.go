// internal/matching/service.go
// Service layer: run orchestration, run lock, reveal read path.

package matching

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

var (
	ErrRunInProgress = errors.New("a matching run is already in progress")
)

const (
	runLockKey = "matching:run_lock"
	runLockTTL = 5 * time.Minute
)

// CandidateSource supplies the participants eligible for a run. It must
// already filter to onboarded users; the engine trusts it.
type CandidateSource interface {
	MatchingCandidates(ctx context.Context) ([]*Candidate, error)
}

// PartnerDirectory resolves the partner card shown after the reveal.
type PartnerDirectory interface {
	PartnerCard(ctx context.Context, userID int64) (*PartnerCard, error)
}

// RevealNotifier tells matched users their valentine is live. Failures are
// logged by implementations and never surface here.
type RevealNotifier interface {
	MatchesRevealed(ctx context.Context, userIDs []int64)
}

type Service interface {
	RunMatching(ctx context.Context) (*RunSummary, error)
	GetMatchForUser(ctx context.Context, userID int64) (*MatchView, error)
	RevealDueMatches(ctx context.Context) (int, error)
}

type service struct {
	repo      Repository
	source    CandidateSource
	directory PartnerDirectory
	engine    *Engine
	notifier  RevealNotifier
	redis     *redis.Client
	revealAt  *time.Time

	runMu sync.Mutex // serializes runs within this process
}

// NewService wires the matching service. redisClient and notifier may be
// nil; the run lock then only guards against concurrent runs in-process.
func NewService(
	repo Repository,
	source CandidateSource,
	directory PartnerDirectory,
	describer Describer,
	notifier RevealNotifier,
	redisClient *redis.Client,
	revealAt *time.Time,
) Service {
	return &service{
		repo:      repo,
		source:    source,
		directory: directory,
		engine:    NewEngine(describer, revealAt),
		notifier:  notifier,
		redis:     redisClient,
		revealAt:  revealAt,
	}
}

// RunMatching executes one full matching run. The whole clear-and-recreate
// phase happens inside a single transaction, so a mid-commit failure leaves
// the previous match set untouched.
func (s *service) RunMatching(ctx context.Context) (*RunSummary, error) {
	if !s.runMu.TryLock() {
		return nil, ErrRunInProgress
	}
	defer s.runMu.Unlock()

	release, err := s.acquireRunLock(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	candidates, err := s.source.MatchingCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	var summary *RunSummary
	err = s.repo.WithTx(ctx, func(store MatchStore) error {
		var runErr error
		summary, runErr = s.engine.Run(ctx, candidates, store)
		return runErr
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}

// acquireRunLock takes the cross-instance run lock in Redis. Without Redis
// the in-process mutex is the only guard.
func (s *service) acquireRunLock(ctx context.Context) (func(), error) {
	if s.redis == nil {
		return func() {}, nil
	}

	ok, err := s.redis.SetNX(ctx, runLockKey, time.Now().Format(time.RFC3339), runLockTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, ErrRunInProgress
	}

	return func() {
		if err := s.redis.Del(context.Background(), runLockKey).Err(); err != nil {
			log.Printf("failed to release matching run lock: %v", err)
		}
	}, nil
}

// GetMatchForUser returns the match view for one user: waiting when no
// match exists yet, a teaser before the reveal deadline, the full card
// after it.
func (s *service) GetMatchForUser(ctx context.Context, userID int64) (*MatchView, error) {
	match, err := s.repo.GetForUser(ctx, userID)
	if err == ErrMatchNotFound {
		return &MatchView{
			Status:  StatusWaiting,
			Message: "Your cosmic match is being aligned by the stars...",
		}, nil
	}
	if err != nil {
		return nil, err
	}

	if !s.isRevealed(match) {
		return &MatchView{
			Status:  StatusCountdown,
			Message: "Your cosmic match will be revealed on Valentine's Eve!",
			Match: &MatchDetail{
				ID:        match.ID,
				Score:     match.Score,
				MatchType: match.MatchType,
				Revealed:  false,
				RevealAt:  match.RevealAt,
			},
		}, nil
	}

	if !match.Revealed {
		if err := s.repo.MarkRevealed(ctx, match.ID); err != nil {
			log.Printf("failed to mark match %d revealed: %v", match.ID, err)
		}
	}

	partner, err := s.directory.PartnerCard(ctx, match.PartnerOf(userID))
	if err != nil {
		return nil, fmt.Errorf("load partner: %w", err)
	}

	breakdown := match.Breakdown
	return &MatchView{
		Status:  StatusRevealed,
		Message: "The stars have aligned!",
		Match: &MatchDetail{
			ID:          match.ID,
			Score:       match.Score,
			MatchType:   match.MatchType,
			Revealed:    true,
			RevealAt:    match.RevealAt,
			Breakdown:   &breakdown,
			Description: match.Description,
			Partner:     partner,
			CreatedAt:   &match.CreatedAt,
		},
	}, nil
}

func (s *service) isRevealed(match *Match) bool {
	if match.Revealed {
		return true
	}
	if match.RevealAt == nil {
		return false
	}
	return !time.Now().Before(*match.RevealAt)
}

// RevealDueMatches bulk-flips every match whose reveal deadline has passed
// and notifies the affected users. Called by the reveal scheduler.
func (s *service) RevealDueMatches(ctx context.Context) (int, error) {
	userIDs, err := s.repo.RevealDue(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	if len(userIDs) > 0 && s.notifier != nil {
		s.notifier.MatchesRevealed(ctx, userIDs)
	}

	return len(userIDs) / 2, nil
}
