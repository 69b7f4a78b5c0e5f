package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
)

// UserRepository keeps users in process memory. It is safe for concurrent use.
type UserRepository struct {
	mu      sync.RWMutex
	users   []entity.User
	byEmail map[string]int
}

var _ contract.IUserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{byEmail: make(map[string]int)}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *UserRepository) CreateUser(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalizeEmail(user.Email)
	if _, exists := r.byEmail[key]; exists {
		return fmt.Errorf("user %s: %w", user.Email, entity.ErrEmailTaken)
	}
	if user.JoinedAt.IsZero() {
		user.JoinedAt = time.Now().UTC()
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = user.JoinedAt
	}
	r.users = append(r.users, *user)
	r.byEmail[key] = len(r.users) - 1
	return nil
}

func (r *UserRepository) indexByIDLocked(id string) int {
	for i := range r.users {
		if r.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *UserRepository) GetUserByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexByIDLocked(id)
	if i < 0 {
		return nil, fmt.Errorf("user %s: %w", id, entity.ErrNotFound)
	}
	user := r.users[i]
	return &user, nil
}

func (r *UserRepository) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", email, entity.ErrNotFound)
	}
	user := r.users[i]
	return &user, nil
}

func (r *UserRepository) UpdateUser(_ context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByIDLocked(user.ID)
	if i < 0 {
		return nil, fmt.Errorf("user %s: %w", user.ID, entity.ErrNotFound)
	}
	oldKey := normalizeEmail(r.users[i].Email)
	newKey := normalizeEmail(user.Email)
	if oldKey != newKey {
		if _, taken := r.byEmail[newKey]; taken {
			return nil, fmt.Errorf("user %s: %w", user.Email, entity.ErrEmailTaken)
		}
		delete(r.byEmail, oldKey)
		r.byEmail[newKey] = i
	}

	updated := *user
	updated.JoinedAt = r.users[i].JoinedAt
	updated.UpdatedAt = time.Now().UTC()
	r.users[i] = updated
	return &updated, nil
}

func (r *UserRepository) UpdateUserPassword(_ context.Context, id string, hashedPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByIDLocked(id)
	if i < 0 {
		return fmt.Errorf("user %s: %w", id, entity.ErrNotFound)
	}
	r.users[i].PasswordHash = hashedPassword
	r.users[i].UpdatedAt = time.Now().UTC()
	return nil
}

// ListUsers returns users ordered by join date, oldest first.
func (r *UserRepository) ListUsers(_ context.Context, page, limit int) ([]*entity.User, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := make([]entity.User, len(r.users))
	copy(sorted, r.users)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].JoinedAt.Before(sorted[j].JoinedAt)
	})

	total := int64(len(sorted))
	start, end := pageBounds(len(sorted), page, limit)
	result := make([]*entity.User, 0, end-start)
	for i := start; i < end; i++ {
		u := sorted[i]
		result = append(result, &u)
	}
	return result, total, nil
}

func (r *UserRepository) CountUsers(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}

// pageBounds converts 1-based page/limit into slice bounds. A page past the end yields an
// empty range rather than an error.
func pageBounds(n, page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = contract.DefaultPageSize
	}
	if page-1 > (n-1)/limit {
		return n, n
	}
	start := (page - 1) * limit
	if start >= n {
		return n, n
	}
	if limit >= n-start {
		return start, n
	}
	return start, start + limit
}
