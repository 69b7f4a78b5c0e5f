package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// resetTokenDocument is the stored shape of a password reset token. expires_at carries a
// TTL index so Mongo purges stale tokens on its own.
type resetTokenDocument struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Kind      string    `bson:"kind"`
	Hash      string    `bson:"hash"`
	Verifier  string    `bson:"verifier"`
	IssuedAt  time.Time `bson:"issued_at"`
	ExpiresAt time.Time `bson:"expires_at"`
	Revoked   bool      `bson:"revoked"`
}

func (d *resetTokenDocument) toEntity() *entity.Token {
	return &entity.Token{
		ID:        d.ID,
		UserID:    d.UserID,
		TokenType: entity.TokenType(d.Kind),
		TokenHash: d.Hash,
		Verifier:  d.Verifier,
		CreatedAt: d.IssuedAt,
		ExpiresAt: d.ExpiresAt,
		Revoke:    d.Revoked,
	}
}

func newResetTokenDocument(t *entity.Token) *resetTokenDocument {
	return &resetTokenDocument{
		ID:        t.ID,
		UserID:    t.UserID,
		Kind:      string(t.TokenType),
		Hash:      t.TokenHash,
		Verifier:  t.Verifier,
		IssuedAt:  t.CreatedAt,
		ExpiresAt: t.ExpiresAt,
		Revoked:   t.Revoke,
	}
}

type TokenRepository struct {
	Collection *mongo.Collection
}

var _ contract.ITokenRepository = (*TokenRepository)(nil)

func NewTokenRepository(colln *mongo.Collection) *TokenRepository {
	return &TokenRepository{Collection: colln}
}

func (r *TokenRepository) CreateToken(ctx context.Context, token *entity.Token) error {
	if _, err := r.Collection.InsertOne(ctx, newResetTokenDocument(token)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("token verifier collision: %w", err)
		}
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

func (r *TokenRepository) GetTokenByVerifier(ctx context.Context, verifier string) (*entity.Token, error) {
	var doc resetTokenDocument
	if err := r.Collection.FindOne(ctx, bson.M{"verifier": verifier}).Decode(&doc); err != nil {
		return nil, notFound(err, "token", verifier)
	}
	return doc.toEntity(), nil
}

// RevokeToken is idempotent for a token that exists.
func (r *TokenRepository) RevokeToken(ctx context.Context, id string) error {
	res, err := r.Collection.UpdateByID(ctx, id, bson.M{"$set": bson.M{"revoked": true}})
	if err != nil {
		return fmt.Errorf("failed to revoke token %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("token %s: %w", id, entity.ErrNotFound)
	}
	return nil
}

// RevokeAllTokensForUser revokes every live token of the given kind, so only the newest
// reset request stays usable.
func (r *TokenRepository) RevokeAllTokensForUser(ctx context.Context, userID string, tokenType entity.TokenType) error {
	_, err := r.Collection.UpdateMany(ctx,
		bson.M{"user_id": userID, "kind": string(tokenType), "revoked": false},
		bson.M{"$set": bson.M{"revoked": true}},
	)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("failed to revoke tokens for user %s: %w", userID, err)
	}
	return nil
}

// EnsureIndexes adds a unique verifier index and a TTL index on expires_at.
func (r *TokenRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "verifier", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "expires_at", Value: 1}}, Options: options.Index().SetExpireAfterSeconds(0)},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "kind", Value: 1}}},
	})
	return err
}
