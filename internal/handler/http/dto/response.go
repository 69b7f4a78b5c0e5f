package dto

import (
	"time"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
)

// UserResponse is the public view of a user. The password hash never leaves the server.
type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	PhotoURL string `json:"photoURL,omitempty"`
	DOB      string `json:"dob,omitempty"`
	Phone    string `json:"phone,omitempty"`
	JoinedAt string `json:"joinedAt"`
}

// PublicUserResponse drops the contact and security fields shown only to the owner.
type PublicUserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	PhotoURL string `json:"photoURL,omitempty"`
	JoinedAt string `json:"joinedAt"`
}

// AuthResponse is returned by signup, login and OAuth login.
type AuthResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"accessToken"`
}

// converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Role:     string(user.Role),
		PhotoURL: user.PhotoURL,
		DOB:      user.DOB,
		Phone:    user.Phone,
		JoinedAt: user.JoinedAt.Format(time.RFC3339),
	}
}

func ToPublicUserResponse(user entity.User) PublicUserResponse {
	return PublicUserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Role:     string(user.Role),
		PhotoURL: user.PhotoURL,
		JoinedAt: user.JoinedAt.Format(time.RFC3339),
	}
}

func ToUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(*u))
	}
	return out
}

// UserListResponse is one page of the admin user listing.
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"totalPages"`
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
