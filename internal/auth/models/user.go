package models

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`)

// Email is a validated, lowercased address.
type Email string

func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", dErrors.New(dErrors.CodeInvariantViolation, "email is required")
	}
	if !emailPattern.MatchString(trimmed) {
		return "", dErrors.New(dErrors.CodeInvariantViolation, "email format is invalid")
	}
	return Email(strings.ToLower(trimmed)), nil
}

func (e Email) String() string { return string(e) }

const passwordSpecials = "!@#$%^&*()"

// Password holds a plaintext password between the request and the hasher.
// It never prints its value.
type Password struct {
	value string
}

func NewPassword(raw string) (Password, error) {
	if len(raw) < 8 {
		return Password{}, dErrors.New(dErrors.CodeInvariantViolation, "password must be at least 8 characters")
	}
	var letter, digit, special bool
	for _, r := range raw {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	if !letter || !digit || !special {
		return Password{}, dErrors.New(dErrors.CodeInvariantViolation,
			"password must contain a letter, a digit and one of "+passwordSpecials)
	}
	return Password{value: raw}, nil
}

func (p Password) String() string { return "********" }

// Hash returns the bcrypt hash of the password.
func (p Password) Hash() (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(p.value), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
	UserStatusDeleted  UserStatus = "DELETED"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is an account that can author prompts.
//
// Invariants:
//   - Email is valid and lowercased
//   - Name is non-empty
//   - PasswordHash is set
type User struct {
	ID           id.UserID
	UUID         uuid.UUID
	Email        Email
	Name         string
	PasswordHash string
	TeamID       *int64
	Status       UserStatus
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewUser(email Email, name, passwordHash string, now time.Time) (*User, error) {
	name = strings.TrimSpace(name)
	if email == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "email is required")
	}
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "name is required")
	}
	if len([]rune(name)) > 100 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "name must be 100 characters or less")
	}
	if passwordHash == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "password hash is required")
	}
	return &User{
		UUID:         uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Status:       UserStatusActive,
		Role:         RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

func (u *User) HasTeam() bool {
	return u.TeamID != nil
}

// CheckPassword compares plaintext against the stored hash.
func (u *User) CheckPassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plaintext)) == nil
}

// RefreshToken is the single live refresh token of a user.
type RefreshToken struct {
	UserID    id.UserID
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
