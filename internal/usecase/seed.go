package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/utils"
)

// SeedOptions describes the bootstrap admin account and whether to add sample content.
type SeedOptions struct {
	AdminEmail    string
	AdminPassword string
	AdminName     string
	SamplePost    bool
}

const welcomePostContent = `<p>Welcome to <strong>Midnight Muse</strong>, a quiet corner of the internet for ` +
	`the thoughts that arrive after dark.</p><p>Sign up to publish your own posts, leave comments ` +
	`on the ones that move you, and ask the Muse for a nudge when the page stays blank.</p>`

// Seeder populates an empty store with an admin and, optionally, a welcome post.
type Seeder struct {
	userRepo contract.IUserRepository
	postRepo contract.IPostRepository
	hasher   contract.IHasher
	uuidgen  contract.IUUIDGenerator
	logger   usecasecontract.IAppLogger
}

func NewSeeder(userRepo contract.IUserRepository, postRepo contract.IPostRepository, hasher contract.IHasher, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *Seeder {
	return &Seeder{userRepo: userRepo, postRepo: postRepo, hasher: hasher, uuidgen: uuidgen, logger: logger}
}

// Seed is idempotent: an existing admin email is left untouched and the welcome post is
// only added when the store has no posts yet.
func (s *Seeder) Seed(ctx context.Context, opts SeedOptions) error {
	if opts.AdminEmail == "" || opts.AdminPassword == "" {
		s.logger.Infof("seed skipped: ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return nil
	}

	admin, err := s.userRepo.GetUserByEmail(ctx, opts.AdminEmail)
	switch {
	case err == nil:
		s.logger.Debugf("seed: admin %s already exists", admin.Email)
	case errors.Is(err, entity.ErrNotFound):
		admin, err = s.createAdmin(ctx, opts)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("seed: failed to look up admin: %w", err)
	}

	if !opts.SamplePost {
		return nil
	}
	_, total, err := s.postRepo.ListPosts(ctx, &contract.PostFilterOptions{Page: 1, Limit: 1})
	if err != nil {
		return fmt.Errorf("seed: failed to inspect posts: %w", err)
	}
	if total > 0 {
		return nil
	}

	now := time.Now().UTC()
	title := "Welcome to Midnight Muse"
	post := &entity.Post{
		ID:          s.uuidgen.NewUUID(),
		Slug:        utils.GenerateSlug(title),
		Title:       title,
		Content:     welcomePostContent,
		Category:    "Announcements",
		Author:      admin.Snapshot(),
		PublishedAt: now,
		UpdatedAt:   now,
		Excerpt:     utils.GenerateExcerpt(welcomePostContent, utils.DefaultExcerptLength),
		Tags:        []string{"welcome"},
	}
	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return fmt.Errorf("seed: failed to create welcome post: %w", err)
	}
	s.logger.Infof("seed: created welcome post %s", post.Slug)
	return nil
}

func (s *Seeder) createAdmin(ctx context.Context, opts SeedOptions) (*entity.User, error) {
	hash, err := s.hasher.HashPassword(opts.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("seed: failed to hash admin password: %w", err)
	}
	name := strings.TrimSpace(opts.AdminName)
	if name == "" {
		name = "Admin"
	}
	now := time.Now().UTC()
	admin := &entity.User{
		ID:           s.uuidgen.NewUUID(),
		Email:        strings.ToLower(strings.TrimSpace(opts.AdminEmail)),
		Name:         name,
		PasswordHash: hash,
		Role:         entity.UserRoleAdmin,
		JoinedAt:     now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.CreateUser(ctx, admin); err != nil {
		return nil, fmt.Errorf("seed: failed to create admin: %w", err)
	}
	s.logger.Infof("seed: created admin %s", admin.Email)
	return admin, nil
}
