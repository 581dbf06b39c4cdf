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
	"github.com/taskhive/taskhive-api/internal/domain/model"
	apperrors "github.com/taskhive/taskhive-api/internal/errors"
)

// LabelRepo provides database operations for labels.
type LabelRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewLabelRepo creates a new LabelRepo with real time provider.
func NewLabelRepo(db *sql.DB) *LabelRepo {
	return &LabelRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewLabelRepoWithTimeProvider creates a new LabelRepo with a custom time provider (useful for tests).
func NewLabelRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *LabelRepo {
	return &LabelRepo{DB: db, timeProvider: tp}
}

// Create inserts a new label.
func (r *LabelRepo) Create(ctx context.Context, req *model.CreateLabelRequest) (*model.Label, error) {
	if req == nil {
		return nil, errors.New("create label request is required")
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Label
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO labels (name, color, created_at)
			VALUES ($1, $2, $3)
			RETURNING id, name, color, created_at, updated_at
		`,
			strings.TrimSpace(req.Name),
			strings.ToLower(strings.TrimSpace(req.Color)),
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Label])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// GetByID retrieves a label by ID.
func (r *LabelRepo) GetByID(ctx context.Context, id string) (*model.Label, error) {
	var label model.Label
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, labelGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		label, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Label])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLabelNotFound
		}
		return nil, fmt.Errorf("failed to get label by ID: %w", err)
	}
	return &label, nil
}

// List retrieves labels with pagination, sorted by name.
func (r *LabelRepo) List(ctx context.Context, limit, offset int) ([]*model.Label, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.Label
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, labelListQuery, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Label])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}

	res := make([]*model.Label, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a label.
func (r *LabelRepo) Update(
	ctx context.Context,
	id string,
	req model.UpdateLabelRequest,
) (*model.Label, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setClause, args := r.buildUpdateClause(req)
	var out model.Label
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		args = append(args, id)
		query := "UPDATE labels SET " + setClause + " WHERE id = $" + strconv.Itoa(
			len(args),
		) + " RETURNING id, name, color, created_at, updated_at"
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Label])
		return e
	})
	if err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// Delete deletes a label by ID. Task associations are removed by cascade.
func (r *LabelRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM labels WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete label: %w", err)
	}
	return rows > 0, nil
}

// --- helpers ---

const (
	labelGetByIDQuery = `
		SELECT id, name, color, created_at, updated_at
		FROM labels
		WHERE id = $1`

	labelListQuery = `
		SELECT id, name, color, created_at, updated_at
		FROM labels
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`
)

func (r *LabelRepo) buildUpdateClause(req model.UpdateLabelRequest) (string, []any) {
	setParts := make([]string, 0, 3)
	args := make([]any, 0, 3)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Color != nil {
		setParts = append(setParts, fmt.Sprintf("color = $%d", nextIdx()))
		args = append(args, strings.ToLower(strings.TrimSpace(*req.Color)))
	}

	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	return strings.Join(setParts, ", "), args
}

func (r *LabelRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrLabelNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrLabelNameExists
	}
	return apperrors.MapDBError(err)
}
