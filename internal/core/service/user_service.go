package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/backoffice/admin-console/internal/core/domain"
	"github.com/backoffice/admin-console/internal/core/ports"
)

// usersCountKey is the cache key for the dashboard user count.
const usersCountKey = "count:users"

// countTTL bounds how stale a cached dashboard count may be.
const countTTL = 30 * time.Second

// UserService implements the self-service profile operations and the
// admin-only account CRUD. The count cache is optional; a nil cache means
// every count goes to the store.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	cache  ports.CountCache
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, cache ports.CountCache, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, cache: cache, logger: logger}
}

func (s *UserService) Profile(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) CountUsers(ctx context.Context) (int64, error) {
	if s.cache != nil {
		if n, ok, err := s.cache.Get(ctx, usersCountKey); err == nil && ok {
			return n, nil
		}
	}

	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, usersCountKey, n, countTTL); err != nil {
			s.logger.Warn().Err(err).Msg("user count cache set failed")
		}
	}
	return n, nil
}

// UpdatePassword re-hashes the new password and stores the digest. The
// plaintext never reaches the repository.
func (s *UserService) UpdatePassword(ctx context.Context, id, newPassword string) error {
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if _, err := s.repo.UpdateFields(ctx, id, ports.UserPatch{PasswordHash: &hash}); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Msg("password updated")
	return nil
}

// UpdateProfile applies the provided fields to the caller's own account.
// Absent fields are untouched.
func (s *UserService) UpdateProfile(ctx context.Context, id string, patch ports.ProfilePatch) (*domain.User, error) {
	p := ports.UserPatch{
		FullName:    patch.FullName,
		Email:       patch.Email,
		PhoneNumber: patch.PhoneNumber,
		Username:    patch.Username,
	}
	if p.Empty() {
		return nil, domain.ErrEmptyUpdate
	}
	return s.repo.UpdateFields(ctx, id, p)
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, int64, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	return users, int64(len(users)), nil
}

// CreateUser is the admin-only creation path. It shares registration
// semantics: uniqueness pre-check, hash, insert.
func (s *UserService) CreateUser(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	}
	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		FullName:     input.FullName,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		Username:     input.Username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCount(ctx)
	s.logger.Info().Str("email", created.Email).Str("role", created.Role).Msg("account created by admin")
	return created, nil
}

// EditUser applies a partial admin edit. A provided password is re-hashed
// before it touches the store.
func (s *UserService) EditUser(ctx context.Context, id string, input ports.EditUserInput) (*domain.User, error) {
	patch := ports.UserPatch{
		FullName:    input.FullName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Username:    input.Username,
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}
	if patch.Empty() {
		return nil, domain.ErrEmptyUpdate
	}
	return s.repo.UpdateFields(ctx, id, patch)
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCount(ctx)
	s.logger.Info().Str("user_id", id).Msg("account deleted")
	return nil
}

func (s *UserService) invalidateCount(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, usersCountKey); err != nil {
		s.logger.Warn().Err(err).Msg("user count cache invalidation failed")
	}
}
