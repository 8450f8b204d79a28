package profile

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/orbitcampus/orbit-backend/internal/notification"
)

var ErrUserNotFound = errors.New("user not found")

const userColumns = `
    id, email, password_hash, is_guest, name, dob, birth_time, birth_location,
    phone, instagram, hobbies, year, vibe_answers, looking_for, gender,
    interested_in, sun_sign, moon_sign, rising_sign, school,
    onboarding_complete, email_verified, created_at, updated_at
`

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *User) error
	MarkEmailVerified(ctx context.Context, id int64) error
	GetOnboarded(ctx context.Context) ([]*User, error)
	GetContacts(ctx context.Context, userIDs []int64) ([]*notification.Contact, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, user *User) error {
	query := `
        INSERT INTO users (email, password_hash, is_guest, name, school, email_verified)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, hobbies, interested_in, vibe_answers, created_at, updated_at
    `

	return r.db.QueryRowxContext(
		ctx, query,
		user.Email, user.PasswordHash, user.IsGuest, user.Name, user.School, user.EmailVerified,
	).Scan(&user.ID, &user.Hobbies, &user.InterestedIn, &user.VibeAnswers, &user.CreatedAt, &user.UpdatedAt)
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	var user User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	err := r.db.QueryRowxContext(ctx, query, id).StructScan(&user)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	err := r.db.QueryRowxContext(ctx, query, email).StructScan(&user)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *postgresRepository) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	err := r.db.GetContext(ctx, &exists, query, email)
	return exists, err
}

func (r *postgresRepository) Update(ctx context.Context, user *User) error {
	query := `
        UPDATE users SET
            name = $2, dob = $3, birth_time = $4, birth_location = $5,
            phone = $6, instagram = $7, hobbies = $8, year = $9,
            vibe_answers = $10, looking_for = $11, gender = $12,
            interested_in = $13, sun_sign = $14, moon_sign = $15,
            rising_sign = $16, onboarding_complete = $17,
            updated_at = CURRENT_TIMESTAMP
        WHERE id = $1
        RETURNING updated_at
    `

	err := r.db.QueryRowxContext(
		ctx, query,
		user.ID, user.Name, user.DOB, user.BirthTime, user.BirthLocation,
		user.Phone, user.Instagram, user.Hobbies, user.Year,
		user.VibeAnswers, user.LookingFor, user.Gender,
		user.InterestedIn, user.SunSign, user.MoonSign,
		user.RisingSign, user.OnboardingComplete,
	).Scan(&user.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrUserNotFound
	}

	return err
}

func (r *postgresRepository) MarkEmailVerified(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET email_verified = TRUE, updated_at = CURRENT_TIMESTAMP WHERE id = $1`, id)
	return err
}

// GetOnboarded returns every user eligible for a matching run, ordered by
// id so pair enumeration order is reproducible between runs.
func (r *postgresRepository) GetOnboarded(ctx context.Context) ([]*User, error) {
	var users []*User
	query := `SELECT ` + userColumns + ` FROM users WHERE onboarding_complete = TRUE ORDER BY id`

	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var user User
		if err := rows.StructScan(&user); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	return users, rows.Err()
}

func (r *postgresRepository) GetContacts(ctx context.Context, userIDs []int64) ([]*notification.Contact, error) {
	var contacts []*notification.Contact
	query := `SELECT id, name, email, phone FROM users WHERE id = ANY($1)`

	err := r.db.SelectContext(ctx, &contacts, query, pq.Array(userIDs))
	return contacts, err
}
