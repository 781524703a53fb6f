package handler

import (
	"time"

	"github.com/99minutos/auth-service/internal/core/domain"
)

// --- Requests ---

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Responses ---

// messageResponse is also the error envelope rendered by the API error handler.
type messageResponse struct {
	Message string `json:"message"`
}

// userRecordResponse is a stored user as returned by signup and the admin
// listing, password hash included.
// TODO: drop Password once clients stop reading it from /signup and /users.
type userRecordResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type signupResponse struct {
	Message string             `json:"message"`
	User    userRecordResponse `json:"user"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type profileResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toUserRecord(u *domain.User) userRecordResponse {
	return userRecordResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.PasswordHash,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

func toUserRecords(users []*domain.User) []userRecordResponse {
	out := make([]userRecordResponse, len(users))
	for i, u := range users {
		out[i] = toUserRecord(u)
	}
	return out
}

func toProfile(u *domain.User) profileResponse {
	return profileResponse{Name: u.Name, Email: u.Email, Role: u.Role}
}
