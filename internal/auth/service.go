// internal/auth/service.go
// Signup, login, guest access, and email verification.

package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/orbitcampus/orbit-backend/internal/common/utils"
	"github.com/orbitcampus/orbit-backend/internal/profile"
)

var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrEmailDomainNotAllowed = errors.New("email domain not allowed")
	ErrEmailNotVerified      = errors.New("email not verified")
	ErrInvalidCode           = errors.New("invalid or expired verification code")
)

// CodeSender delivers verification codes. The notification service
// implements this.
type CodeSender interface {
	SendVerificationCode(ctx context.Context, to, code string, expiresIn time.Duration) error
}

// codeStore persists pending verification codes with a TTL.
type codeStore interface {
	Set(ctx context.Context, key, code string, ttl time.Duration) error
	Get(ctx context.Context, key string) (code string, found bool, err error)
	Del(ctx context.Context, key string)
}

type Service interface {
	Register(ctx context.Context, dto *RegisterDTO) (*profile.User, error)
	Login(ctx context.Context, dto *LoginDTO) (*AuthResponse, error)
	GuestLogin(ctx context.Context, dto *GuestLoginDTO) (*AuthResponse, error)
	VerifyEmail(ctx context.Context, dto *VerifyEmailDTO) (*AuthResponse, error)
	ResendCode(ctx context.Context, email string) error
	ValidateToken(ctx context.Context, token string) (*utils.JWTClaims, error)
}

// Config holds auth service configuration.
type Config struct {
	JWTSecret           string
	AccessTokenExpiry   time.Duration
	BCryptCost          int
	AllowedEmailDomains []string
	VerificationExpiry  time.Duration
}

type service struct {
	users  profile.Repository
	codes  codeStore
	sender CodeSender
	config *Config
}

// NewService wires the auth service. A nil redis client disables the
// verification code flow; accounts are then verified on creation.
func NewService(users profile.Repository, redisClient *redis.Client, sender CodeSender, config *Config) Service {
	var codes codeStore
	if redisClient != nil {
		codes = &redisCodeStore{client: redisClient}
	}
	return &service{users: users, codes: codes, sender: sender, config: config}
}

// Register creates an account and sends a verification code to the campus
// email. The account cannot log in until the code is confirmed.
func (s *service) Register(ctx context.Context, dto *RegisterDTO) (*profile.User, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	if !s.domainAllowed(email) {
		return nil, ErrEmailDomainNotAllowed
	}

	taken, err := s.users.IsEmailTaken(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.config.BCryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	user := &profile.User{
		Email:         email,
		PasswordHash:  &hashStr,
		Name:          strings.TrimSpace(dto.Name),
		School:        emailDomain(email),
		EmailVerified: s.codes == nil,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if s.codes != nil {
		if err := s.issueVerificationCode(ctx, email); err != nil {
			return nil, err
		}
	}

	return user, nil
}

// Login authenticates a verified account and issues an access token.
func (s *service) Login(ctx context.Context, dto *LoginDTO) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err == profile.ErrUserNotFound {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if user.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(dto.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	return s.issueToken(user)
}

// GuestLogin creates a throwaway account with no password and no email
// verification. Guests can onboard and be matched like anyone else.
func (s *service) GuestLogin(ctx context.Context, dto *GuestLoginDTO) (*AuthResponse, error) {
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		name = "Guest"
	}

	user := &profile.User{
		Email:         fmt.Sprintf("guest-%s@guest.local", uuid.NewString()),
		IsGuest:       true,
		Name:          name,
		School:        "guest",
		EmailVerified: true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create guest: %w", err)
	}

	return s.issueToken(user)
}

// VerifyEmail confirms a pending code, marks the account verified and logs
// it in. The token is only issued on the unverified-to-verified transition:
// an already-verified account must authenticate with its password, so a
// guessed code can never stand in for one.
func (s *service) VerifyEmail(ctx context.Context, dto *VerifyEmailDTO) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err == profile.ErrUserNotFound {
		return nil, ErrInvalidCode
	}
	if err != nil {
		return nil, err
	}

	if user.EmailVerified || s.codes == nil {
		return nil, ErrInvalidCode
	}

	stored, found, err := s.codes.Get(ctx, verifyKey(email))
	if err != nil {
		return nil, fmt.Errorf("failed to read verification code: %w", err)
	}
	if !found || subtle.ConstantTimeCompare([]byte(stored), []byte(dto.Code)) != 1 {
		return nil, ErrInvalidCode
	}

	if err := s.users.MarkEmailVerified(ctx, user.ID); err != nil {
		return nil, err
	}
	user.EmailVerified = true
	s.codes.Del(ctx, verifyKey(email))

	return s.issueToken(user)
}

// ResendCode issues a fresh verification code for an unverified account.
// Always succeeds from the caller's perspective so it cannot be used to
// probe which emails exist.
func (s *service) ResendCode(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err == profile.ErrUserNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	if user.EmailVerified || s.codes == nil {
		return nil
	}

	return s.issueVerificationCode(ctx, email)
}

func (s *service) ValidateToken(ctx context.Context, token string) (*utils.JWTClaims, error) {
	return utils.ValidateJWT(token, s.config.JWTSecret)
}

func (s *service) issueToken(user *profile.User) (*AuthResponse, error) {
	now := time.Now()
	token, err := utils.GenerateJWT(&utils.JWTClaims{
		UserID:    user.ID,
		Email:     user.Email,
		IsGuest:   user.IsGuest,
		Type:      "access",
		ExpiresAt: now.Add(s.config.AccessTokenExpiry).Unix(),
		IssuedAt:  now.Unix(),
		Issuer:    "orbit",
	}, s.config.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{Token: token, User: profile.NewUserResponse(user)}, nil
}

func (s *service) issueVerificationCode(ctx context.Context, email string) error {
	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	if err := s.codes.Set(ctx, verifyKey(email), code, s.config.VerificationExpiry); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	return s.sender.SendVerificationCode(ctx, email, code, s.config.VerificationExpiry)
}

func (s *service) domainAllowed(email string) bool {
	if len(s.config.AllowedEmailDomains) == 0 {
		return true
	}
	domain := emailDomain(email)
	for _, allowed := range s.config.AllowedEmailDomains {
		if strings.EqualFold(domain, allowed) {
			return true
		}
	}
	return false
}

func emailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return ""
	}
	return email[at+1:]
}

func verifyKey(email string) string {
	return "auth:verify:" + email
}

// generateCode produces a 6-digit numeric code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// redisCodeStore keeps verification codes in Redis under their TTL.
type redisCodeStore struct {
	client *redis.Client
}

func (s *redisCodeStore) Set(ctx context.Context, key, code string, ttl time.Duration) error {
	return s.client.Set(ctx, key, code, ttl).Err()
}

func (s *redisCodeStore) Get(ctx context.Context, key string) (string, bool, error) {
	code, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return code, true, nil
}

func (s *redisCodeStore) Del(ctx context.Context, key string) {
	s.client.Del(ctx, key)
}
