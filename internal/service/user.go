package service

import (
	"context"
	"fmt"

	"github.com/taskhive/taskhive-api/internal/core"
	"github.com/taskhive/taskhive-api/internal/domain/model"
	"golang.org/x/sync/errgroup"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// UserServiceOptions groups dependencies for UserService.
type UserServiceOptions struct {
	Users   core.UserRepository
	History core.LoginHistoryRepository
}

// UserService serves the self-service profile and login history surface.
type UserService struct {
	users   core.UserRepository
	history core.LoginHistoryRepository
}

// NewUserService constructs a new UserService.
func NewUserService(opts UserServiceOptions) *UserService {
	if opts.Users == nil {
		panic("user service requires a user repository")
	}
	if opts.History == nil {
		panic("user service requires a login history repository")
	}
	return &UserService{users: opts.Users, history: opts.History}
}

// Profile returns the account behind a user ID.
func (s *UserService) Profile(ctx context.Context, userID string) (*model.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile applies a self-service profile update.
func (s *UserService) UpdateProfile(
	ctx context.Context,
	userID string,
	req model.UpdateProfileRequest,
) (*model.User, error) {
	return s.users.UpdateProfile(ctx, userID, req)
}

// LoginHistory returns one page of the user's sign-in log, newest first.
// Entries and total count are fetched concurrently.
func (s *UserService) LoginHistory(
	ctx context.Context,
	userID string,
	page, limit int,
) (*model.LoginHistoryPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	offset := (page - 1) * limit

	var (
		entries []*model.LoginHistoryEntry
		total   int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = s.history.ListByUser(gctx, userID, limit, offset)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.history.CountByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load login history: %w", err)
	}

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	if entries == nil {
		entries = []*model.LoginHistoryEntry{}
	}

	return &model.LoginHistoryPage{
		Entries: entries,
		Page:    page,
		Limit:   limit,
		Total:   total,
		Pages:   pages,
	}, nil
}

// List returns a page of all accounts. Admin surface only.
func (s *UserService) List(ctx context.Context, limit, offset int) ([]*model.User, error) {
	return s.users.List(ctx, limit, offset)
}

// SetRole changes an account's role. Admin surface only.
func (s *UserService) SetRole(ctx context.Context, userID, role string) (*model.User, error) {
	return s.users.SetRole(ctx, userID, role)
}

// SetActive enables or disables an account. Admin surface only.
func (s *UserService) SetActive(ctx context.Context, userID string, active bool) (*model.User, error) {
	return s.users.SetActive(ctx, userID, active)
}
