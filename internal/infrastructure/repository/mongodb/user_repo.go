package mongodb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoUserRepository struct {
	collection *mongo.Collection
}

var _ contract.IUserRepository = (*MongoUserRepository)(nil)

func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{collection: collection}
}

// EnsureIndexes creates the unique email index that backs ErrEmailTaken.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	_, err := r.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w", user.Email, entity.ErrEmailTaken)
	}
	return err
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, notFound(err, "user", id)
	}
	return &user, nil
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, notFound(err, "user", email)
	}
	return &user, nil
}

// UpdateUser updates an existing user and returns the updated user
func (r *MongoUserRepository) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	user.UpdatedAt = time.Now()
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	filter := bson.M{"_id": user.ID}
	update := bson.M{"$set": bson.M{
		"email":      user.Email,
		"name":       user.Name,
		"role":       user.Role,
		"photo_url":  user.PhotoURL,
		"dob":        user.DOB,
		"phone":      user.Phone,
		"updated_at": user.UpdatedAt,
	}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", user.Email, entity.ErrEmailTaken)
		}
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("user %s: %w", user.ID, entity.ErrNotFound)
	}
	return r.GetUserByID(ctx, user.ID)
}

func (r *MongoUserRepository) UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"password_hash": hashedPassword, "updated_at": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", id, entity.ErrNotFound)
	}
	return nil
}

func (r *MongoUserRepository) ListUsers(ctx context.Context, page, limit int) ([]*entity.User, int64, error) {
	window := contract.PostFilterOptions{Page: page, Limit: limit}
	window.Normalize()
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "joined_at", Value: 1}}).
		SetSkip(int64(window.Offset())).
		SetLimit(int64(window.Limit))
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	users := []*entity.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *MongoUserRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
