package entity

import (
	"time"
)

// User represents a registered reader or author of the blog
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         UserRole  `bson:"role" json:"role"`
	PhotoURL     string    `bson:"photo_url,omitempty" json:"photoURL,omitempty"`
	DOB          string    `bson:"dob,omitempty" json:"dob,omitempty"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	JoinedAt     time.Time `bson:"joined_at" json:"joinedAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == UserRoleAdmin
}

// Snapshot copies the author fields that get embedded into a post.
func (u *User) Snapshot() AuthorSnapshot {
	return AuthorSnapshot{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		PhotoURL: u.PhotoURL,
	}
}
