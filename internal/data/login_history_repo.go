package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/taskhive/taskhive-api/internal/core"
	"github.com/taskhive/taskhive-api/internal/data/pgxutil"
	"github.com/taskhive/taskhive-api/internal/domain/model"
	apperrors "github.com/taskhive/taskhive-api/internal/errors"
)

// LoginHistoryRepo provides database operations for the append-only login log.
// Entries are inserted on every successful sign-in and never mutated.
type LoginHistoryRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewLoginHistoryRepo creates a new LoginHistoryRepo with real time provider.
func NewLoginHistoryRepo(db *sql.DB) *LoginHistoryRepo {
	return &LoginHistoryRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewLoginHistoryRepoWithTimeProvider creates a new LoginHistoryRepo with a custom time provider.
func NewLoginHistoryRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *LoginHistoryRepo {
	return &LoginHistoryRepo{DB: db, timeProvider: tp}
}

// Append records a successful sign-in for a user.
func (r *LoginHistoryRepo) Append(
	ctx context.Context,
	params core.AppendLoginParams,
) (*model.LoginHistoryEntry, error) {
	if strings.TrimSpace(params.UserID) == "" {
		return nil, ErrUserIDRequired
	}

	var out model.LoginHistoryEntry
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO login_history (user_id, ip_address, user_agent, login_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id, user_id, ip_address, user_agent, login_at
		`,
			params.UserID,
			params.IPAddress,
			params.UserAgent,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.LoginHistoryEntry])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to append login history: %w", apperrors.MapDBError(err))
	}
	return &out, nil
}

// ListByUser retrieves a user's login history, newest first.
func (r *LoginHistoryRepo) ListByUser(
	ctx context.Context,
	userID string,
	limit, offset int,
) ([]*model.LoginHistoryEntry, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUserIDRequired
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.LoginHistoryEntry
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, loginHistoryListQuery, userID, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.LoginHistoryEntry])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list login history: %w", err)
	}

	res := make([]*model.LoginHistoryEntry, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// CountByUser returns the total number of login entries for a user.
func (r *LoginHistoryRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	if strings.TrimSpace(userID) == "" {
		return 0, ErrUserIDRequired
	}

	var total int64
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx,
			`SELECT COUNT(*) FROM login_history WHERE user_id = $1`, userID,
		).Scan(&total)
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count login history: %w", err)
	}
	return total, nil
}

const loginHistoryListQuery = `
	SELECT id, user_id, ip_address, user_agent, login_at
	FROM login_history
	WHERE user_id = $1
	ORDER BY login_at DESC, id DESC
	LIMIT $2 OFFSET $3`
