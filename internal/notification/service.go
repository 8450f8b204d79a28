// internal/notification/service.go

package notification

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Contact is the delivery address book entry for one user.
type Contact struct {
	UserID int64   `db:"id"`
	Name   string  `db:"name"`
	Email  string  `db:"email"`
	Phone  *string `db:"phone"`
}

// ContactSource resolves users to their delivery addresses.
type ContactSource interface {
	GetContacts(ctx context.Context, userIDs []int64) ([]*Contact, error)
}

// Service sends product notifications: signup verification codes and the
// match reveal announcement. Delivery failures are logged, never fatal.
type Service struct {
	email    EmailProvider
	sms      SMSProvider
	contacts ContactSource
}

func NewService(email EmailProvider, sms SMSProvider, contacts ContactSource) *Service {
	return &Service{email: email, sms: sms, contacts: contacts}
}

// SendVerificationCode emails a signup verification code.
func (s *Service) SendVerificationCode(ctx context.Context, to, code string, expiresIn time.Duration) error {
	subject := "Your Orbit verification code"
	plain := fmt.Sprintf(
		"Your verification code is: %s\n\nThis code will expire in %d minutes.",
		code, int(expiresIn.Minutes()),
	)
	html := fmt.Sprintf(
		"<p>Your verification code is: <strong>%s</strong></p><p>This code will expire in %d minutes.</p>",
		code, int(expiresIn.Minutes()),
	)

	return s.email.SendEmail(ctx, to, subject, plain, html)
}

// MatchesRevealed announces the reveal to every matched user. Implements
// matching.RevealNotifier.
func (s *Service) MatchesRevealed(ctx context.Context, userIDs []int64) {
	contacts, err := s.contacts.GetContacts(ctx, userIDs)
	if err != nil {
		log.Printf("reveal notification: failed to load contacts: %v", err)
		return
	}

	for _, contact := range contacts {
		if contact.Email != "" {
			plain := "The stars have aligned! Your cosmic valentine is waiting for you on Orbit."
			html := "<p>The stars have aligned! Your cosmic valentine is waiting for you on <strong>Orbit</strong>.</p>"
			if err := s.email.SendEmail(ctx, contact.Email, "Your match is revealed", plain, html); err != nil {
				log.Printf("reveal notification: email to user %d failed: %v", contact.UserID, err)
			}
		}

		if contact.Phone != nil && *contact.Phone != "" {
			body := "Orbit: the stars have aligned! Your cosmic valentine is live. Go take a look."
			if err := s.sms.SendSMS(ctx, *contact.Phone, body); err != nil {
				log.Printf("reveal notification: sms to user %d failed: %v", contact.UserID, err)
			}
		}
	}
}
