package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/taskhive/taskhive-api/internal/data/database"
	"github.com/taskhive/taskhive-api/internal/data/pgxutil"
	"github.com/taskhive/taskhive-api/internal/domain/model"
	apperrors "github.com/taskhive/taskhive-api/internal/errors"
)

const (
	sortDirAsc  = "ASC"
	sortDirDesc = "DESC"
)

// ProjectRepo provides database operations for projects. Every query is
// scoped to the owning user: another user's project behaves as not found.
type ProjectRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewProjectRepo creates a new ProjectRepo with real time provider.
func NewProjectRepo(db *sql.DB) *ProjectRepo {
	return &ProjectRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewProjectRepoWithTimeProvider creates a new ProjectRepo with a custom time provider.
func NewProjectRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ProjectRepo {
	return &ProjectRepo{DB: db, timeProvider: tp}
}

// Create inserts a new project for the owner.
func (r *ProjectRepo) Create(
	ctx context.Context,
	ownerID string,
	req *model.CreateProjectRequest,
) (*model.Project, error) {
	if req == nil {
		return nil, errors.New("create project request is required")
	}
	if strings.TrimSpace(ownerID) == "" {
		return nil, errors.New("owner_id is required")
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Project
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO projects (owner_id, name, description, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id, owner_id, name, description, created_at, updated_at
		`,
			ownerID,
			strings.TrimSpace(req.Name),
			req.Description,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Project])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", apperrors.MapDBError(err))
	}
	return &out, nil
}

// GetByID retrieves a project by ID within the owner's scope.
func (r *ProjectRepo) GetByID(ctx context.Context, ownerID, id string) (*model.Project, error) {
	var project model.Project
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, projectGetByIDQuery, id, ownerID)
		if err != nil {
			return err
		}
		defer rows.Close()
		project, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Project])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project by ID: %w", err)
	}
	return &project, nil
}

// List retrieves the owner's projects with optional name filter and pagination.
func (r *ProjectRepo) List(
	ctx context.Context,
	ownerID string,
	opts model.ProjectsListOptions,
) ([]*model.Project, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	queryOpts := r.buildProjectQueryOptions(ownerID, opts, limit, offset)
	query, args := database.BuildListQuery(queryOpts)

	var rowsOut []model.Project
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Project])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	res := make([]*model.Project, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a project within the owner's scope.
func (r *ProjectRepo) Update(
	ctx context.Context,
	ownerID, id string,
	req model.UpdateProjectRequest,
) (*model.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setClause, args := r.buildUpdateClause(req)
	var out model.Project
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		args = append(args, id, ownerID)
		query := "UPDATE projects SET " + setClause +
			" WHERE id = $" + strconv.Itoa(len(args)-1) +
			" AND owner_id = $" + strconv.Itoa(len(args)) +
			" RETURNING id, owner_id, name, description, created_at, updated_at"
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Project])
		return e
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return &out, nil
}

// Delete deletes a project within the owner's scope. Tasks are removed by cascade.
func (r *ProjectRepo) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx,
			`DELETE FROM projects WHERE id = $1 AND owner_id = $2`, id, ownerID)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}
	return rows > 0, nil
}

// --- helpers ---

const projectGetByIDQuery = `
	SELECT id, owner_id, name, description, created_at, updated_at
	FROM projects
	WHERE id = $1 AND owner_id = $2`

// projectColumns returns the standard column list for project queries.
func projectColumns() []string {
	return []string{
		"id",
		"owner_id",
		"name",
		"description",
		"created_at",
		"updated_at",
	}
}

// buildProjectQueryOptions builds query options for project listing with filters.
func (r *ProjectRepo) buildProjectQueryOptions(
	ownerID string,
	opts model.ProjectsListOptions,
	limit, offset int,
) *database.ListQueryOptions {
	queryOpts := []database.ListQueryOption{
		database.WithColumns(projectColumns()...),
		database.WithCondition(database.WhereCond("owner_id", database.Equal, ownerID)),
		database.WithLimit(limit),
		database.WithOffset(offset),
		database.WithOrderBy("created_at", sortDirDesc),
	}

	if opts.Q != nil && strings.TrimSpace(*opts.Q) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("name", database.ILike, "%"+strings.TrimSpace(*opts.Q)+"%"),
		))
	}

	return database.NewListQueryOptions("projects", queryOpts...)
}

func (r *ProjectRepo) buildUpdateClause(req model.UpdateProjectRequest) (string, []any) {
	setParts := make([]string, 0, 3)
	args := make([]any, 0, 3)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", nextIdx()))
		args = append(args, *req.Description)
	}

	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	return strings.Join(setParts, ", "), args
}
