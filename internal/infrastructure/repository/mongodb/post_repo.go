package mongodb

import (
	"context"
	"fmt"
	"regexp"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository is the MongoDB implementation of contract.IPostRepository.
type PostRepository struct {
	collection *mongo.Collection
}

var _ contract.IPostRepository = (*PostRepository)(nil)

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{collection: db.Collection("posts")}
}

func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}, {Key: "published_at", Value: 1}}},
		{Keys: bson.D{{Key: "published_at", Value: -1}}},
		{Keys: bson.D{{Key: "author.id", Value: 1}}},
	})
	return err
}

// buildPostFilter translates PostFilterOptions into a BSON query. Category and tag match
// case-insensitively; search is a case-insensitive substring over title, excerpt and content.
func buildPostFilter(opts *contract.PostFilterOptions) bson.M {
	filter := bson.M{}
	if opts.Category != "" {
		filter["category"] = exactFold(opts.Category)
	}
	if opts.AuthorID != "" {
		filter["author.id"] = opts.AuthorID
	}
	if opts.Tag != "" {
		filter["tags"] = exactFold(opts.Tag)
	}
	if opts.Search != "" {
		q := caseInsensitive(regexp.QuoteMeta(opts.Search))
		filter["$or"] = bson.A{
			bson.M{"title": q},
			bson.M{"excerpt": q},
			bson.M{"content": q},
		}
	}
	return filter
}

func exactFold(s string) bson.M {
	return caseInsensitive("^" + regexp.QuoteMeta(s) + "$")
}

func caseInsensitive(pattern string) bson.M {
	return bson.M{"$regex": pattern, "$options": "i"}
}

func (r *PostRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	if post.Tags == nil {
		post.Tags = []string{}
	}
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

func (r *PostRepository) GetPostByID(ctx context.Context, postID string) (*entity.Post, error) {
	var post entity.Post
	if err := r.collection.FindOne(ctx, bson.M{"_id": postID}).Decode(&post); err != nil {
		return nil, notFound(err, "post", postID)
	}
	return &post, nil
}

// GetPostBySlug returns the oldest post stored under slug.
func (r *PostRepository) GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "published_at", Value: 1}})
	var post entity.Post
	if err := r.collection.FindOne(ctx, bson.M{"slug": slug}, opts).Decode(&post); err != nil {
		return nil, notFound(err, "post with slug", slug)
	}
	return &post, nil
}

func (r *PostRepository) ListPosts(ctx context.Context, filter *contract.PostFilterOptions) ([]*entity.Post, int64, error) {
	if filter == nil {
		filter = &contract.PostFilterOptions{}
	}
	f := *filter
	f.Normalize()

	query := buildPostFilter(&f)
	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "published_at", Value: -1}}).
		SetSkip(int64(f.Offset())).
		SetLimit(int64(f.Limit))
	cursor, err := r.collection.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []*entity.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// UpdatePost overwrites the editable fields; views, comment count and publish time stay.
func (r *PostRepository) UpdatePost(ctx context.Context, post *entity.Post) error {
	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}
	update := bson.M{"$set": bson.M{
		"slug":       post.Slug,
		"title":      post.Title,
		"content":    post.Content,
		"category":   post.Category,
		"excerpt":    post.Excerpt,
		"tags":       tags,
		"author":     post.Author,
		"updated_at": post.UpdatedAt,
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": post.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("post %s: %w", post.ID, entity.ErrNotFound)
	}
	return nil
}

func (r *PostRepository) DeletePost(ctx context.Context, postID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": postID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("post %s: %w", postID, entity.ErrNotFound)
	}
	return nil
}

func (r *PostRepository) increment(ctx context.Context, postID, field string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{"$inc": bson.M{field: 1}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("post %s: %w", postID, entity.ErrNotFound)
	}
	return nil
}

func (r *PostRepository) IncrementViews(ctx context.Context, postID string) error {
	return r.increment(ctx, postID, "views")
}

func (r *PostRepository) IncrementCommentCount(ctx context.Context, postID string) error {
	return r.increment(ctx, postID, "comment_count")
}

type categoryBucket struct {
	Category string `bson:"_id"`
	Count    int64  `bson:"count"`
	Views    int64  `bson:"views"`
}

func (r *PostRepository) GetPostStats(ctx context.Context, topN int) (*entity.PostStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$category",
			"count": bson.M{"$sum": 1},
			"views": bson.M{"$sum": "$views"},
		}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate post stats: %w", err)
	}
	var buckets []categoryBucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, err
	}

	stats := &entity.PostStats{
		ByCategory: make(map[string]int64, len(buckets)),
		MostViewed: []entity.Post{},
	}
	for _, b := range buckets {
		stats.TotalPosts += b.Count
		stats.TotalViews += b.Views
		stats.ByCategory[b.Category] = b.Count
	}

	if topN > 0 {
		opts := options.Find().SetSort(bson.D{{Key: "views", Value: -1}}).SetLimit(int64(topN))
		top, err := r.collection.Find(ctx, bson.M{}, opts)
		if err != nil {
			return nil, err
		}
		if err := top.All(ctx, &stats.MostViewed); err != nil {
			return nil, err
		}
	}
	return stats, nil
}
