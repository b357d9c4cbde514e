package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
)

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (r *SignUpRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Name = strings.TrimSpace(r.Name)
}

func (r *SignUpRequest) Validate() error {
	if r.Email == "" {
		return dErrors.New(dErrors.CodeValidation, "email is required")
	}
	if r.Password == "" {
		return dErrors.New(dErrors.CodeValidation, "password is required")
	}
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

func (r *LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return dErrors.New(dErrors.CodeValidation, "email and password are required")
	}
	return nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (r *RefreshRequest) Validate() error {
	if strings.TrimSpace(r.RefreshToken) == "" {
		return dErrors.New(dErrors.CodeValidation, "refreshToken is required")
	}
	return nil
}

// TokenResult is returned by login and refresh.
type TokenResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}

type UserResponse struct {
	ID        id.UserID  `json:"id"`
	UUID      uuid.UUID  `json:"uuid"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      Role       `json:"role"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		UUID:      u.UUID,
		Email:     u.Email.String(),
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}

type LoginHistoryResponse struct {
	ID        int64       `json:"id"`
	LoginAt   time.Time   `json:"loginAt"`
	IP        string      `json:"ipAddress"`
	UserAgent string      `json:"userAgent"`
	Browser   string      `json:"browser"`
	OS        string      `json:"os"`
	Device    string      `json:"device"`
	Status    LoginStatus `json:"status"`
}

func NewLoginHistoryResponse(h *LoginHistory) LoginHistoryResponse {
	return LoginHistoryResponse{
		ID:        h.ID,
		LoginAt:   h.LoginAt,
		IP:        h.IP,
		UserAgent: h.UserAgent,
		Browser:   h.Browser,
		OS:        h.OS,
		Device:    h.Device,
		Status:    h.Status,
	}
}
