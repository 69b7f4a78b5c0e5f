package entity

import "time"

// AuthorSnapshot is a copy of the author's fields taken when the post is created.
// Later profile edits do not propagate into existing posts.
type AuthorSnapshot struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	PhotoURL string `bson:"photo_url,omitempty" json:"photoURL,omitempty"`
}

// Post is a published blog article
type Post struct {
	ID           string         `bson:"_id,omitempty" json:"id"`
	Slug         string         `bson:"slug" json:"slug"`
	Title        string         `bson:"title" json:"title"`
	Content      string         `bson:"content" json:"content"`
	Category     string         `bson:"category" json:"category"`
	Author       AuthorSnapshot `bson:"author" json:"author"`
	PublishedAt  time.Time      `bson:"published_at" json:"publishedAt"`
	UpdatedAt    time.Time      `bson:"updated_at" json:"updatedAt"`
	CommentCount int            `bson:"comment_count" json:"commentCount"`
	Views        int            `bson:"views" json:"views"`
	Excerpt      string         `bson:"excerpt" json:"excerpt"`
	Tags         []string       `bson:"tags" json:"tags"`
}

// Clone returns a deep copy so callers cannot mutate stored state.
func (p Post) Clone() Post {
	if p.Tags != nil {
		tags := make([]string, len(p.Tags))
		copy(tags, p.Tags)
		p.Tags = tags
	}
	return p
}

// PostStats is an aggregate over all posts used by the admin dashboard.
type PostStats struct {
	TotalPosts int64            `json:"totalPosts"`
	TotalViews int64            `json:"totalViews"`
	ByCategory map[string]int64 `json:"byCategory"`
	MostViewed []Post           `json:"mostViewed"`
}
