package matching

import (
	"context"
	"log"
	"time"
)

// RevealScheduler flips matches to revealed once the configured deadline
// passes, then keeps sweeping hourly for matches created late.
type RevealScheduler struct {
	service  Service
	revealAt *time.Time
}

func NewRevealScheduler(service Service, revealAt *time.Time) *RevealScheduler {
	return &RevealScheduler{service: service, revealAt: revealAt}
}

func (s *RevealScheduler) Start(ctx context.Context) {
	if s.revealAt == nil {
		log.Println("reveal scheduler: no reveal date configured, not starting")
		return
	}

	if wait := time.Until(*s.revealAt); wait > 0 {
		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return
		}
	}

	s.sweep(ctx)

	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (s *RevealScheduler) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	revealed, err := s.service.RevealDueMatches(sweepCtx)
	if err != nil {
		log.Printf("reveal sweep failed: %v", err)
		return
	}
	if revealed > 0 {
		log.Printf("reveal sweep: %d matches revealed", revealed)
	}
}
