package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
)

// PostRepository is the in-memory post table. Posts are kept in insertion order, so
// slug lookups resolve collisions to the oldest post.
type PostRepository struct {
	mu    sync.RWMutex
	posts []entity.Post
}

var _ contract.IPostRepository = (*PostRepository)(nil)

func NewPostRepository() *PostRepository {
	return &PostRepository{}
}

func (r *PostRepository) CreatePost(_ context.Context, post *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexByIDLocked(post.ID) >= 0 {
		return fmt.Errorf("post %s already exists", post.ID)
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	r.posts = append(r.posts, post.Clone())
	return nil
}

func (r *PostRepository) indexByIDLocked(id string) int {
	for i := range r.posts {
		if r.posts[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *PostRepository) GetPostByID(_ context.Context, postID string) (*entity.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexByIDLocked(postID)
	if i < 0 {
		return nil, fmt.Errorf("post %s: %w", postID, entity.ErrNotFound)
	}
	p := r.posts[i].Clone()
	return &p, nil
}

func (r *PostRepository) GetPostBySlug(_ context.Context, slug string) (*entity.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.posts {
		if r.posts[i].Slug == slug {
			p := r.posts[i].Clone()
			return &p, nil
		}
	}
	return nil, fmt.Errorf("post with slug %q: %w", slug, entity.ErrNotFound)
}

func matchesFilter(p *entity.Post, f *contract.PostFilterOptions) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.AuthorID != "" && p.Author.ID != f.AuthorID {
		return false
	}
	if f.Tag != "" {
		found := false
		for _, t := range p.Tags {
			if strings.EqualFold(t, f.Tag) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Excerpt), q) &&
			!strings.Contains(strings.ToLower(p.Content), q) {
			return false
		}
	}
	return true
}

// ListPosts scans every post, keeps the ones matching the filter, orders them newest first
// and slices out the requested page.
func (r *PostRepository) ListPosts(_ context.Context, filter *contract.PostFilterOptions) ([]*entity.Post, int64, error) {
	if filter == nil {
		filter = &contract.PostFilterOptions{}
	}
	f := *filter
	f.Normalize()

	r.mu.RLock()
	matched := make([]entity.Post, 0, len(r.posts))
	for i := range r.posts {
		if matchesFilter(&r.posts[i], &f) {
			matched = append(matched, r.posts[i].Clone())
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].PublishedAt.After(matched[j].PublishedAt)
	})

	start, end := pageBounds(len(matched), f.Page, f.Limit)
	result := make([]*entity.Post, 0, end-start)
	for i := start; i < end; i++ {
		p := matched[i]
		result = append(result, &p)
	}
	return result, int64(len(matched)), nil
}

func (r *PostRepository) UpdatePost(_ context.Context, post *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByIDLocked(post.ID)
	if i < 0 {
		return fmt.Errorf("post %s: %w", post.ID, entity.ErrNotFound)
	}
	updated := post.Clone()
	// counters are owned by the store, not by the caller's copy
	updated.Views = r.posts[i].Views
	updated.CommentCount = r.posts[i].CommentCount
	updated.PublishedAt = r.posts[i].PublishedAt
	r.posts[i] = updated
	return nil
}

func (r *PostRepository) DeletePost(_ context.Context, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByIDLocked(postID)
	if i < 0 {
		return fmt.Errorf("post %s: %w", postID, entity.ErrNotFound)
	}
	r.posts = append(r.posts[:i], r.posts[i+1:]...)
	return nil
}

func (r *PostRepository) IncrementViews(_ context.Context, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByIDLocked(postID)
	if i < 0 {
		return fmt.Errorf("post %s: %w", postID, entity.ErrNotFound)
	}
	r.posts[i].Views++
	return nil
}

func (r *PostRepository) IncrementCommentCount(_ context.Context, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByIDLocked(postID)
	if i < 0 {
		return fmt.Errorf("post %s: %w", postID, entity.ErrNotFound)
	}
	r.posts[i].CommentCount++
	return nil
}

func (r *PostRepository) GetPostStats(_ context.Context, topN int) (*entity.PostStats, error) {
	r.mu.RLock()
	all := make([]entity.Post, len(r.posts))
	for i := range r.posts {
		all[i] = r.posts[i].Clone()
	}
	r.mu.RUnlock()

	stats := &entity.PostStats{
		TotalPosts: int64(len(all)),
		ByCategory: make(map[string]int64),
		MostViewed: []entity.Post{},
	}
	for _, p := range all {
		stats.TotalViews += int64(p.Views)
		stats.ByCategory[p.Category]++
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Views > all[j].Views })
	if topN > len(all) {
		topN = len(all)
	}
	if topN > 0 {
		stats.MostViewed = append(stats.MostViewed, all[:topN]...)
	}
	return stats, nil
}
