package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/taskhive/taskhive-api/internal/data/pgxutil"
	domainauth "github.com/taskhive/taskhive-api/internal/domain/auth"
	"github.com/taskhive/taskhive-api/internal/domain/model"
	apperrors "github.com/taskhive/taskhive-api/internal/errors"
)

// UserRepo provides database operations for users.
type UserRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewUserRepo creates a new UserRepo with real time provider.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewUserRepoWithTimeProvider creates a new UserRepo with a custom time provider (useful for tests).
func NewUserRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *UserRepo {
	return &UserRepo{DB: db, timeProvider: tp}
}

// Create inserts a new user. Role and active flag take server-side defaults;
// the unique index on email resolves concurrent first sign-ins.
func (r *UserRepo) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if req == nil {
		return nil, errors.New("create user request is required")
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO users (
				email, name, picture, role, is_active, created_at
			) VALUES (
				$1, $2, $3, $4, TRUE, $5
			) RETURNING id, email, name, picture, role, is_active, created_at, updated_at
		`,
			normalizeEmail(req.Email),
			strings.TrimSpace(req.Name),
			req.Picture,
			string(domainauth.RoleUser),
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// GetByID retrieves a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.getByQuery(ctx, userGetByIDQuery, "failed to get user by ID", id)
}

// GetByEmail retrieves a user by email. Lookup is case-insensitive on the
// normalized address.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getByQuery(ctx, userGetByEmailQuery, "failed to get user by email", normalizeEmail(email))
}

// List retrieves users with pagination, newest first.
func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*model.User, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, userListQuery, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	res := make([]*model.User, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// UpdateProfile updates the client-settable profile fields (name, picture).
func (r *UserRepo) UpdateProfile(
	ctx context.Context,
	id string,
	req model.UpdateProfileRequest,
) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setClause, args := r.buildProfileUpdateClause(req)
	var out model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		args = append(args, id)
		query := "UPDATE users SET " + setClause + " WHERE id = $" + strconv.Itoa(
			len(args),
		) + " RETURNING id, email, name, picture, role, is_active, created_at, updated_at"
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return e
	})
	if err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// SetRole updates a user's role. Used by the admin surface only.
func (r *UserRepo) SetRole(ctx context.Context, id string, role string) (*model.User, error) {
	if !domainauth.Role(role).Valid() {
		return nil, errors.New("role must be one of: admin, user")
	}
	return r.updateSingleColumn(ctx, id, "role", role)
}

// SetActive enables or disables a user account.
func (r *UserRepo) SetActive(ctx context.Context, id string, active bool) (*model.User, error) {
	return r.updateSingleColumn(ctx, id, "is_active", active)
}

// buildProfileUpdateClause builds the SQL SET clause and args for the profile update.
func (r *UserRepo) buildProfileUpdateClause(req model.UpdateProfileRequest) (string, []any) {
	setParts := make([]string, 0, 3)
	args := make([]any, 0, 3)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Picture != nil {
		if strings.TrimSpace(*req.Picture) == "" {
			setParts = append(setParts, "picture = NULL")
		} else {
			setParts = append(setParts, fmt.Sprintf("picture = $%d", nextIdx()))
			args = append(args, *req.Picture)
		}
	}

	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	return strings.Join(setParts, ", "), args
}

func (r *UserRepo) updateSingleColumn(
	ctx context.Context,
	id string,
	column string,
	value any,
) (*model.User, error) {
	var out model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		// column is a fixed identifier from the caller, never user input
		query := "UPDATE users SET " + column + " = $1, updated_at = $2 WHERE id = $3" +
			" RETURNING id, email, name, picture, role, is_active, created_at, updated_at"
		rows, err := conn.Query(ctx, query, value, r.timeProvider.Now().UTC(), id)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return e
	})
	if err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// --- helpers ---

// SQL query constants for static queries (no dynamic WHERE/ORDER BY).
const (
	userGetByIDQuery = `
		SELECT id, email, name, picture, role, is_active, created_at, updated_at
		FROM users
		WHERE id = $1`

	userGetByEmailQuery = `
		SELECT id, email, name, picture, role, is_active, created_at, updated_at
		FROM users
		WHERE email = $1`

	userListQuery = `
		SELECT id, email, name, picture, role, is_active, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
)

// normalizeEmail lowercases and trims an email so the unique index treats
// differently cased addresses as the same identity.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// getByQuery is a helper function to execute a query and return a single user.
func (r *UserRepo) getByQuery(
	ctx context.Context,
	q string,
	errMsg string,
	args ...any,
) (*model.User, error) {
	var user model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		user, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return &user, nil
}

func (r *UserRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrUserNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrEmailExists
	}
	return apperrors.MapDBError(err)
}
