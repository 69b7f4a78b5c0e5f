package dto

import (
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

// CreatePostRequest defines the structure for publishing a new post
type CreatePostRequest struct {
	Title    string   `json:"title" binding:"required,max=200,slugsafe"`
	Content  string   `json:"content" binding:"required"`
	Category string   `json:"category" binding:"required,max=50"`
	Excerpt  string   `json:"excerpt" binding:"omitempty,max=500"`
	Tags     []string `json:"tags" binding:"omitempty,max=10,dive,max=30"`
}

// UpdatePostRequest defines the structure for editing an existing post
type UpdatePostRequest struct {
	Title    *string  `json:"title" binding:"omitempty,max=200"`
	Content  *string  `json:"content"`
	Category *string  `json:"category" binding:"omitempty,max=50"`
	Excerpt  *string  `json:"excerpt" binding:"omitempty,max=500"`
	Tags     []string `json:"tags" binding:"omitempty,max=10,dive,max=30"`
}

func (r CreatePostRequest) ToInput() usecasecontract.CreatePostInput {
	return usecasecontract.CreatePostInput{
		Title:    r.Title,
		Content:  r.Content,
		Category: r.Category,
		Excerpt:  r.Excerpt,
		Tags:     r.Tags,
	}
}

func (r UpdatePostRequest) ToInput() usecasecontract.UpdatePostInput {
	return usecasecontract.UpdatePostInput{
		Title:    r.Title,
		Content:  r.Content,
		Category: r.Category,
		Excerpt:  r.Excerpt,
		Tags:     r.Tags,
	}
}

// PostResponse wraps a single post.
type PostResponse struct {
	Post entity.Post `json:"post"`
}

// ProfileResponse is the public profile page: the user and their latest posts.
type ProfileResponse struct {
	User  PublicUserResponse        `json:"user"`
	Posts *usecasecontract.PostPage `json:"posts"`
}
