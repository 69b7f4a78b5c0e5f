package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrCommentConflict is returned when a thread keeps changing underneath a write.
var ErrCommentConflict = errors.New("comment thread modified concurrently")

const maxThreadWriteAttempts = 5

// commentThread is one document per post holding the whole comment tree.
type commentThread struct {
	PostID   string           `bson:"_id"`
	Comments []entity.Comment `bson:"comments"`
	Version  int64            `bson:"version"`
}

// CommentRepository stores comment trees in MongoDB with optimistic versioning.
type CommentRepository struct {
	collection *mongo.Collection
}

var _ contract.ICommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{collection: db.Collection("comment_threads")}
}

func (r *CommentRepository) loadThread(ctx context.Context, postID string) (*commentThread, bool, error) {
	var t commentThread
	err := r.collection.FindOne(ctx, bson.M{"_id": postID}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &commentThread{PostID: postID, Comments: []entity.Comment{}}, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &t, true, nil
}

// saveThread writes t back if nobody else changed it since it was read. It reports false
// on a version conflict.
func (r *CommentRepository) saveThread(ctx context.Context, t *commentThread, existed bool) (bool, error) {
	if !existed {
		t.Version = 1
		_, err := r.collection.InsertOne(ctx, t)
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return err == nil, err
	}
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": t.PostID, "version": t.Version},
		bson.M{"$set": bson.M{"comments": t.Comments}, "$inc": bson.M{"version": 1}},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount == 1, nil
}

// mutate retries fn against a freshly loaded thread until the write lands.
func (r *CommentRepository) mutate(ctx context.Context, postID string, fn func(t *commentThread) error) error {
	for attempt := 0; attempt < maxThreadWriteAttempts; attempt++ {
		t, existed, err := r.loadThread(ctx, postID)
		if err != nil {
			return err
		}
		if err := fn(t); err != nil {
			return err
		}
		ok, err := r.saveThread(ctx, t, existed)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
	return fmt.Errorf("post %s: %w", postID, ErrCommentConflict)
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]entity.Comment, error) {
	t, _, err := r.loadThread(ctx, postID)
	if err != nil {
		return nil, err
	}
	result := make([]entity.Comment, len(t.Comments))
	for i, c := range t.Comments {
		result[i] = c.Clone()
	}
	return result, nil
}

func (r *CommentRepository) AddComment(ctx context.Context, postID, parentID string, comment entity.Comment) (bool, error) {
	comment = comment.Clone()
	var asReply bool
	err := r.mutate(ctx, postID, func(t *commentThread) error {
		asReply = parentID != "" && entity.InsertReply(t.Comments, parentID, comment)
		if !asReply {
			t.Comments = append(t.Comments, comment)
		}
		return nil
	})
	return asReply, err
}

func (r *CommentRepository) LikeComment(ctx context.Context, postID, commentID string) (*entity.Comment, error) {
	var liked entity.Comment
	err := r.mutate(ctx, postID, func(t *commentThread) error {
		c := entity.FindComment(t.Comments, commentID)
		if c == nil {
			return fmt.Errorf("comment %s: %w", commentID, entity.ErrNotFound)
		}
		c.Likes++
		liked = c.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &liked, nil
}

func (r *CommentRepository) CountComments(ctx context.Context) (int64, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var n int64
	for cursor.Next(ctx) {
		var t commentThread
		if err := cursor.Decode(&t); err != nil {
			return 0, err
		}
		n += int64(entity.CountComments(t.Comments))
	}
	return n, cursor.Err()
}
