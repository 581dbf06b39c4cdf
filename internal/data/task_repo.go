package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/taskhive/taskhive-api/internal/data/pgxutil"
	"github.com/taskhive/taskhive-api/internal/domain/model"
	apperrors "github.com/taskhive/taskhive-api/internal/errors"
)

// TaskRepo provides database operations for tasks. Ownership checks go
// through the owning project; a task in someone else's project is not found.
type TaskRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewTaskRepo creates a new TaskRepo with real time provider.
func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewTaskRepoWithTimeProvider creates a new TaskRepo with a custom time provider.
func NewTaskRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *TaskRepo {
	return &TaskRepo{DB: db, timeProvider: tp}
}

// Create inserts a new task at the end of its column and links any labels.
// The caller is responsible for having verified project ownership.
func (r *TaskRepo) Create(
	ctx context.Context,
	projectID string,
	req *model.CreateTaskRequest,
) (*model.Task, error) {
	if req == nil {
		return nil, errors.New("create task request is required")
	}
	if strings.TrimSpace(projectID) == "" {
		return nil, errors.New("project_id is required")
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	column := req.Column
	if column == "" {
		column = model.TaskColumnTodo
	}

	createdAt := r.timeProvider.Now().UTC()
	var taskID string
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Fn: func(tx pgx.Tx) error {
			// Append to the column: next position after the current max.
			if err := tx.QueryRow(ctx, `
				INSERT INTO tasks (project_id, title, description, board_column, position, due_date, created_at)
				VALUES (
					$1, $2, $3, $4,
					(SELECT COALESCE(MAX(position) + 1, 0) FROM tasks WHERE project_id = $1 AND board_column = $4),
					$5, $6
				) RETURNING id
			`,
				projectID,
				strings.TrimSpace(req.Title),
				req.Description,
				string(column),
				req.DueDate,
				createdAt,
			).Scan(&taskID); err != nil {
				return err
			}
			return insertTaskLabels(ctx, tx, taskID, req.LabelIDs)
		},
	})
	if err != nil {
		// Unknown label IDs surface here as foreign key violations.
		return nil, fmt.Errorf("failed to create task: %w", apperrors.MapDBError(err))
	}

	return r.getByID(ctx, taskID)
}

// GetByID retrieves a task by ID within the owner's scope.
func (r *TaskRepo) GetByID(ctx context.Context, ownerID, id string) (*model.Task, error) {
	var task model.Task
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, taskGetByIDOwnedQuery, id, ownerID)
		if err != nil {
			return err
		}
		defer rows.Close()
		task, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Task])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task by ID: %w", err)
	}
	return &task, nil
}

// ListByProject retrieves all tasks of a project ordered by column and position.
func (r *TaskRepo) ListByProject(ctx context.Context, projectID string) ([]*model.Task, error) {
	var rowsOut []model.Task
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, taskListByProjectQuery, projectID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Task])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	res := make([]*model.Task, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates task fields other than placement. A non-nil LabelIDs
// replaces the task's label set atomically.
func (r *TaskRepo) Update(
	ctx context.Context,
	ownerID, id string,
	req model.UpdateTaskRequest,
) (*model.Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Fn: func(tx pgx.Tx) error {
			if err := r.requireOwnedTask(ctx, tx, ownerID, id); err != nil {
				return err
			}
			setClause, args := r.buildUpdateClause(req)
			if setClause != "" {
				args = append(args, id)
				query := "UPDATE tasks SET " + setClause +
					" WHERE id = $" + strconv.Itoa(len(args))
				if _, err := tx.Exec(ctx, query, args...); err != nil {
					return err
				}
			}
			if req.LabelIDs != nil {
				if _, err := tx.Exec(ctx,
					`DELETE FROM task_labels WHERE task_id = $1`, id); err != nil {
					return err
				}
				if err := insertTaskLabels(ctx, tx, id, *req.LabelIDs); err != nil {
					return err
				}
			}
			return nil
		},
	})
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", apperrors.MapDBError(err))
	}

	return r.GetByID(ctx, ownerID, id)
}

// Move places a task in a column at a position, shifting later siblings down.
func (r *TaskRepo) Move(
	ctx context.Context,
	ownerID, id string,
	req model.MoveTaskRequest,
) (*model.Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Fn: func(tx pgx.Tx) error {
			if err := r.requireOwnedTask(ctx, tx, ownerID, id); err != nil {
				return err
			}
			// Make room at the target position within the destination column.
			if _, err := tx.Exec(ctx, `
				UPDATE tasks SET position = position + 1
				WHERE board_column = $1 AND position >= $2 AND id <> $3
				  AND project_id = (SELECT project_id FROM tasks WHERE id = $3)
			`, string(req.Column), req.Position, id); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, `
				UPDATE tasks SET board_column = $1, position = $2, updated_at = $3
				WHERE id = $4
			`, string(req.Column), req.Position, r.timeProvider.Now().UTC(), id)
			return err
		},
	})
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to move task: %w", err)
	}

	return r.GetByID(ctx, ownerID, id)
}

// Delete deletes a task within the owner's scope.
func (r *TaskRepo) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `
			DELETE FROM tasks
			WHERE id = $1 AND project_id IN (SELECT id FROM projects WHERE owner_id = $2)
		`, id, ownerID)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}
	return rows > 0, nil
}

// --- helpers ---

// taskSelect aggregates label IDs from the association table so every task
// row carries its label set. Column aliases must match the struct db tags.
const taskSelect = `
	SELECT t.id, t.project_id, t.title, t.description, t.board_column, t.position,
	       COALESCE(array_agg(tl.label_id::text ORDER BY tl.label_id)
	                FILTER (WHERE tl.label_id IS NOT NULL), '{}') AS label_ids,
	       t.due_date, t.created_at, t.updated_at
	FROM tasks t
	LEFT JOIN task_labels tl ON tl.task_id = t.id`

const (
	taskGetByIDQuery = taskSelect + `
	WHERE t.id = $1
	GROUP BY t.id`

	taskGetByIDOwnedQuery = taskSelect + `
	WHERE t.id = $1
	  AND t.project_id IN (SELECT id FROM projects WHERE owner_id = $2)
	GROUP BY t.id`

	taskListByProjectQuery = taskSelect + `
	WHERE t.project_id = $1
	GROUP BY t.id
	ORDER BY t.board_column ASC, t.position ASC, t.created_at ASC`
)

// getByID fetches a task without an ownership filter. Used right after a
// write that already established ownership.
func (r *TaskRepo) getByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, taskGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		task, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Task])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task by ID: %w", err)
	}
	return &task, nil
}

// requireOwnedTask fails with ErrTaskNotFound unless the task exists inside
// one of the owner's projects.
func (r *TaskRepo) requireOwnedTask(ctx context.Context, tx pgx.Tx, ownerID, id string) error {
	var exists bool
	if err := tx.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM tasks t
			JOIN projects p ON p.id = t.project_id
			WHERE t.id = $1 AND p.owner_id = $2
		)`, id, ownerID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrTaskNotFound
	}
	return nil
}

func insertTaskLabels(ctx context.Context, tx pgx.Tx, taskID string, labelIDs []string) error {
	for _, labelID := range labelIDs {
		if strings.TrimSpace(labelID) == "" {
			continue
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO task_labels (task_id, label_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, taskID, labelID); err != nil {
			return err
		}
	}
	return nil
}

func (r *TaskRepo) buildUpdateClause(req model.UpdateTaskRequest) (string, []any) {
	setParts := make([]string, 0, 5)
	args := make([]any, 0, 5)
	nextIdx := func() int { return len(args) + 1 }

	if req.Title != nil {
		setParts = append(setParts, fmt.Sprintf("title = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Title))
	}
	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", nextIdx()))
		args = append(args, *req.Description)
	}
	if req.ClearDue {
		setParts = append(setParts, "due_date = NULL")
	} else if req.DueDate != nil {
		setParts = append(setParts, fmt.Sprintf("due_date = $%d", nextIdx()))
		args = append(args, *req.DueDate)
	}

	if len(setParts) == 0 {
		return "", nil
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())
	return strings.Join(setParts, ", "), args
}
