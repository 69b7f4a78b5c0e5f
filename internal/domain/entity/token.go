package entity

import "time"

type TokenType string

const (
	TokenTypePasswordReset TokenType = "password_reset"
)

// Token is a hashed one-time secret, looked up by its verifier.
type Token struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	TokenType TokenType `bson:"token_type" json:"token_type"`
	TokenHash string    `bson:"token_hash" json:"-"`
	Verifier  string    `bson:"verifier" json:"verifier"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	Revoke    bool      `bson:"revoke" json:"revoke"`
}
