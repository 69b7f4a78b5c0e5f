package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	"github.com/mikiasgoitom/MidnightMuse/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/utils"
)

const maxTags = 10

// PostUseCaseImpl implements the IPostUseCase interface
type PostUseCaseImpl struct {
	postRepo  contract.IPostRepository
	uuidgen   contract.IUUIDGenerator
	logger    usecasecontract.IAppLogger
	postCache contract.IPostCache
	now       func() time.Time
}

// NewPostUseCase creates a new instance of PostUseCase
func NewPostUseCase(postRepo contract.IPostRepository, uuidgenerator contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *PostUseCaseImpl {
	return &PostUseCaseImpl{
		postRepo: postRepo,
		uuidgen:  uuidgenerator,
		logger:   logger,
		now:      time.Now,
	}
}

// check if PostUseCaseImpl implements the IPostUseCase
var _ usecasecontract.IPostUseCase = (*PostUseCaseImpl)(nil)

// SetPostCache enables the read-through cache. Without it every read goes to the repository.
func (uc *PostUseCaseImpl) SetPostCache(cache contract.IPostCache) {
	uc.postCache = cache
}

// CreatePost publishes a post authored by author.
func (uc *PostUseCaseImpl) CreatePost(ctx context.Context, author *entity.User, in usecasecontract.CreatePostInput) (*entity.Post, error) {
	if author == nil {
		return nil, entity.ErrUnauthenticated
	}
	title := strings.TrimSpace(in.Title)
	category := strings.TrimSpace(in.Category)
	if title == "" || strings.TrimSpace(in.Content) == "" || category == "" {
		return nil, fmt.Errorf("%w: title, content and category are required", entity.ErrInvalidInput)
	}
	slug := utils.GenerateSlug(title)
	if slug == "" {
		return nil, fmt.Errorf("%w: title must contain at least one letter or digit", entity.ErrInvalidInput)
	}

	excerpt := strings.TrimSpace(in.Excerpt)
	if excerpt == "" {
		excerpt = utils.GenerateExcerpt(in.Content, utils.DefaultExcerptLength)
	}

	now := uc.now().UTC()
	post := &entity.Post{
		ID:          uc.uuidgen.NewUUID(),
		Slug:        slug,
		Title:       title,
		Content:     in.Content,
		Category:    category,
		Author:      author.Snapshot(),
		PublishedAt: now,
		UpdatedAt:   now,
		Excerpt:     excerpt,
		Tags:        normalizeTags(in.Tags),
	}
	if err := uc.postRepo.CreatePost(ctx, post); err != nil {
		uc.logger.Errorf("failed to create post: %v", err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	uc.logger.Infof("post created: id=%s slug=%s author=%s", post.ID, post.Slug, author.ID)

	uc.invalidateLists(ctx)
	return post, nil
}

// normalizeTags trims, drops empties and removes case-insensitive duplicates, keeping the
// first spelling.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
		if len(out) == maxTags {
			break
		}
	}
	return out
}

// GetPost returns the post stored under slug and counts a view.
func (uc *PostUseCaseImpl) GetPost(ctx context.Context, slug string) (*entity.Post, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", entity.ErrInvalidInput)
	}

	if cached := uc.cachedPost(ctx, slug); cached != nil {
		if err := uc.postRepo.IncrementViews(ctx, cached.ID); err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				// deleted by another instance; drop the stale entry
				_ = uc.postCache.InvalidatePostBySlug(ctx, slug)
				return nil, err
			}
			uc.logger.Warnf("failed to count view for %s: %v", cached.ID, err)
		}
		cached.Views++
		return cached, nil
	}

	post, err := uc.postRepo.GetPostBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			uc.logger.Errorf("failed to get post by slug: %v", err)
		}
		return nil, err
	}
	if err := uc.postRepo.IncrementViews(ctx, post.ID); err != nil {
		uc.logger.Warnf("failed to count view for %s: %v", post.ID, err)
	} else {
		post.Views++
	}

	if uc.postCache != nil {
		if err := uc.postCache.SetPostBySlug(ctx, slug, post); err != nil {
			uc.logger.Warningf("cache set failed: post detail slug=%s err=%v", slug, err)
		}
	}
	return post, nil
}

func (uc *PostUseCaseImpl) cachedPost(ctx context.Context, slug string) *entity.Post {
	if uc.postCache == nil {
		return nil
	}
	t0 := time.Now()
	cached, found, err := uc.postCache.GetPostBySlug(ctx, slug)
	elapsed := time.Since(t0)
	switch {
	case err != nil:
		uc.logger.Warningf("cache error: post detail slug=%s err=%v took=%s", slug, err, elapsed)
		return nil
	case found && cached != nil:
		metrics.IncDetailHit()
		metrics.AddHitDuration(elapsed.Seconds())
		uc.logger.Debugf("cache hit: post detail slug=%s took=%s", slug, elapsed)
		return cached
	default:
		metrics.IncDetailMiss()
		metrics.AddMissDuration(elapsed.Seconds())
		uc.logger.Debugf("cache miss: post detail slug=%s took=%s", slug, elapsed)
		return nil
	}
}

func buildPostsListCacheKey(f contract.PostFilterOptions) string {
	return fmt.Sprintf("%sp=%d:l=%d:c=%s:a=%s:t=%s:q=%s",
		contract.PostListCacheKeyPrefix, f.Page, f.Limit,
		strings.ToLower(f.Category), f.AuthorID, strings.ToLower(f.Tag), strings.ToLower(f.Search))
}

// ListPosts returns one page of posts, newest first.
func (uc *PostUseCaseImpl) ListPosts(ctx context.Context, filter contract.PostFilterOptions) (*usecasecontract.PostPage, error) {
	filter.Normalize()
	filter.Category = strings.TrimSpace(filter.Category)
	filter.Tag = strings.TrimSpace(filter.Tag)
	filter.Search = strings.TrimSpace(filter.Search)

	key := buildPostsListCacheKey(filter)
	if uc.postCache != nil {
		t0 := time.Now()
		cached, found, err := uc.postCache.GetPostsPage(ctx, key)
		elapsed := time.Since(t0)
		if err == nil && found && cached != nil {
			metrics.IncListHit()
			metrics.AddHitDuration(elapsed.Seconds())
			uc.logger.Debugf("cache hit: posts list key=%s took=%s", key, elapsed)
			return newPostPage(cached.Posts, cached.Total, filter), nil
		} else if err == nil {
			metrics.IncListMiss()
			metrics.AddMissDuration(elapsed.Seconds())
			uc.logger.Debugf("cache miss: posts list key=%s took=%s", key, elapsed)
		} else {
			uc.logger.Warningf("cache error: posts list key=%s err=%v took=%s", key, err, elapsed)
		}
	}

	posts, total, err := uc.postRepo.ListPosts(ctx, &filter)
	if err != nil {
		uc.logger.Errorf("failed to list posts: %v", err)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	items := make([]entity.Post, 0, len(posts))
	for _, p := range posts {
		items = append(items, *p)
	}

	if uc.postCache != nil {
		if err := uc.postCache.SetPostsPage(ctx, key, &contract.CachedPostsPage{Posts: items, Total: total}); err != nil {
			uc.logger.Warningf("cache set failed: posts list key=%s err=%v", key, err)
		}
	}
	return newPostPage(items, total, filter), nil
}

func newPostPage(posts []entity.Post, total int64, f contract.PostFilterOptions) *usecasecontract.PostPage {
	if posts == nil {
		posts = []entity.Post{}
	}
	totalPages := int(total) / f.Limit
	if int(total)%f.Limit != 0 {
		totalPages++
	}
	return &usecasecontract.PostPage{
		Posts:      posts,
		Total:      total,
		Page:       f.Page,
		Limit:      f.Limit,
		TotalPages: totalPages,
	}
}

// UpdatePost edits a post. Only the author may edit; a new title regenerates the slug.
func (uc *PostUseCaseImpl) UpdatePost(ctx context.Context, slug string, requester *entity.User, in usecasecontract.UpdatePostInput) (*entity.Post, error) {
	if requester == nil {
		return nil, entity.ErrUnauthenticated
	}
	post, err := uc.postRepo.GetPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post.Author.ID != requester.ID {
		uc.logger.Warnf("user %s attempted to edit post %s owned by %s", requester.ID, post.ID, post.Author.ID)
		return nil, fmt.Errorf("only the author can edit this post: %w", entity.ErrForbidden)
	}

	oldSlug := post.Slug
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		newSlug := utils.GenerateSlug(title)
		if title == "" || newSlug == "" {
			return nil, fmt.Errorf("%w: title must contain at least one letter or digit", entity.ErrInvalidInput)
		}
		post.Title = title
		post.Slug = newSlug
	}
	if in.Content != nil {
		if strings.TrimSpace(*in.Content) == "" {
			return nil, fmt.Errorf("%w: content cannot be empty", entity.ErrInvalidInput)
		}
		post.Content = *in.Content
	}
	if in.Category != nil {
		category := strings.TrimSpace(*in.Category)
		if category == "" {
			return nil, fmt.Errorf("%w: category cannot be empty", entity.ErrInvalidInput)
		}
		post.Category = category
	}
	if in.Excerpt != nil {
		post.Excerpt = strings.TrimSpace(*in.Excerpt)
	}
	if post.Excerpt == "" || (in.Content != nil && in.Excerpt == nil) {
		post.Excerpt = utils.GenerateExcerpt(post.Content, utils.DefaultExcerptLength)
	}
	if in.Tags != nil {
		post.Tags = normalizeTags(in.Tags)
	}
	post.UpdatedAt = uc.now().UTC()

	if err := uc.postRepo.UpdatePost(ctx, post); err != nil {
		uc.logger.Errorf("failed to update post %s: %v", post.ID, err)
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	uc.invalidatePost(ctx, oldSlug)
	if post.Slug != oldSlug {
		uc.invalidatePost(ctx, post.Slug)
	}
	uc.invalidateLists(ctx)
	return post, nil
}

// DeletePost removes a post. The author or an admin may delete.
func (uc *PostUseCaseImpl) DeletePost(ctx context.Context, slug string, requester *entity.User) error {
	if requester == nil {
		return entity.ErrUnauthenticated
	}
	post, err := uc.postRepo.GetPostBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if post.Author.ID != requester.ID && !requester.IsAdmin() {
		uc.logger.Warnf("user %s attempted to delete post %s owned by %s", requester.ID, post.ID, post.Author.ID)
		return fmt.Errorf("only the author or an admin can delete this post: %w", entity.ErrForbidden)
	}
	if err := uc.postRepo.DeletePost(ctx, post.ID); err != nil {
		uc.logger.Errorf("failed to delete post %s: %v", post.ID, err)
		return fmt.Errorf("failed to delete post: %w", err)
	}
	uc.logger.Infof("post deleted: id=%s by=%s", post.ID, requester.ID)

	uc.invalidatePost(ctx, slug)
	uc.invalidateLists(ctx)
	return nil
}

func (uc *PostUseCaseImpl) invalidatePost(ctx context.Context, slug string) {
	if uc.postCache == nil {
		return
	}
	if err := uc.postCache.InvalidatePostBySlug(ctx, slug); err != nil {
		uc.logger.Warningf("cache invalidate failed: post detail slug=%s err=%v", slug, err)
	}
}

func (uc *PostUseCaseImpl) invalidateLists(ctx context.Context) {
	if uc.postCache == nil {
		return
	}
	if err := uc.postCache.InvalidatePostLists(ctx); err != nil {
		uc.logger.Warningf("cache invalidate failed: post lists err=%v", err)
	}
}
