package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

const taskColumns = "id, name, description, category_id, assigned_to, priority_id, status, due_date, " +
	"completed_at, created_by, edited_by, board_id, deleted, deleted_at, created_at, updated_at"

// taskDetailColumns selects a task with the display fields of every referenced record.
// Joins are LEFT joins so a dangling reference still yields the task.
var taskDetailColumns = []string{
	"t.id", "t.name", "t.description", "t.status", "t.due_date", "t.completed_at",
	"t.edited_by", "t.deleted", "t.deleted_at", "t.created_at", "t.updated_at",
	"t.category_id", "c.name",
	"t.assigned_to", "au.name", "au.email",
	"t.priority_id", "p.name", "p.type",
	"t.created_by", "cu.name", "cu.email",
	"t.board_id", "b.name", "b.status",
}

// PostgresTaskStore implements store.TaskStore.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a task store over db. A nil logger uses the default.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create.
func (s *PostgresTaskStore) Create(ctx context.Context, t *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := t.Validate(); err != nil {
		log.Warn("task validation failed during create", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query, args, err := psql.Insert("tasks").
		Columns("id", "name", "description", "category_id", "assigned_to", "priority_id", "status", "due_date",
			"completed_at", "created_by", "edited_by", "board_id", "deleted", "deleted_at", "created_at", "updated_at").
		Values(t.ID, t.Name, t.Description, t.Category, t.AssignedTo, t.Priority, string(t.Status), t.DueDate,
			t.CompletedAt, t.CreatedBy, t.EditedBy, t.Board, t.Deleted, t.DeletedAt, t.CreatedAt, t.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build task insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to create task", slog.String("error", err.Error()), slog.String("task_id", t.ID))
		return store.NewStoreError("task", "create", "failed to insert task", MapError(err))
	}

	log.Info("task created",
		slog.String("task_id", t.ID),
		slog.String("created_by", t.CreatedBy),
		slog.String("status", string(t.Status)))
	return nil
}

// GetDetail implements store.TaskStore.GetDetail.
func (s *PostgresTaskStore) GetDetail(ctx context.Context, id string) (*domain.TaskDetail, error) {
	query, args, err := detailQuery().Where(sq.Eq{"t.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build task detail query: %w", err)
	}

	d, err := scanTaskDetail(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		err = notFoundOr(err, store.ErrTaskNotFound)
		if !store.IsNotFoundError(err) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to get task detail",
				slog.String("error", err.Error()), slog.String("task_id", id))
		}
		return nil, err
	}
	return d, nil
}

// List implements store.TaskStore.List.
func (s *PostgresTaskStore) List(ctx context.Context, f domain.TaskFilter) ([]*domain.TaskDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := detailQuery().Where(filterConditions(f)).OrderBy("t.created_at DESC", "t.id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build task list query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.TaskDetail, 0)
	for rows.Next() {
		d, err := scanTaskDetail(rows)
		if err != nil {
			return nil, MapError(err)
		}
		tasks = append(tasks, d)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	log.Debug("tasks listed", slog.Int("count", len(tasks)))
	return tasks, nil
}

// Update implements store.TaskStore.Update.
func (s *PostgresTaskStore) Update(ctx context.Context, id string, p domain.TaskPatch) (*domain.Task, error) {
	ub := psql.Update("tasks").
		Set("edited_by", p.EditedBy).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + taskColumns)

	if p.Name != nil {
		ub = ub.Set("name", *p.Name)
	}
	if p.Description.Present {
		ub = ub.Set("description", p.Description.Ptr())
	}
	if p.Category.Present {
		ub = ub.Set("category_id", p.Category.Ptr())
	}
	if p.AssignedTo.Present {
		ub = ub.Set("assigned_to", p.AssignedTo.Ptr())
	}
	if p.Priority != nil {
		ub = ub.Set("priority_id", *p.Priority)
	}
	if p.Status != nil {
		ub = ub.Set("status", string(*p.Status))
	}
	if p.DueDate.Present {
		ub = ub.Set("due_date", p.DueDate.Ptr())
	}
	if p.Board.Present {
		ub = ub.Set("board_id", p.Board.Ptr())
	}

	query, args, err := ub.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build task update: %w", err)
	}

	t, err := scanTask(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		err = notFoundOr(err, store.ErrTaskNotFound)
		if !store.IsNotFoundError(err) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to update task",
				slog.String("error", err.Error()), slog.String("task_id", id))
		}
		return nil, err
	}
	return t, nil
}

// Complete implements store.TaskStore.Complete.
// The completed_at IS NULL guard makes the check-and-set a single atomic statement.
func (s *PostgresTaskStore) Complete(
	ctx context.Context,
	id string,
	completedAt time.Time,
	editedBy string,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := psql.Update("tasks").
		Set("completed_at", completedAt).
		Set("edited_by", editedBy).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id, "completed_at": nil}).
		Suffix("RETURNING " + taskColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build task completion: %w", err)
	}

	t, err := scanTask(s.db.QueryRowContext(ctx, query, args...))
	if err == nil {
		log.Info("task completed", slog.String("task_id", id), slog.Time("completed_at", completedAt))
		return t, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Error("failed to complete task", slog.String("error", err.Error()), slog.String("task_id", id))
		return nil, MapError(err)
	}

	found, err := exists(ctx, s.db, "tasks", id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, store.ErrTaskNotFound
	}
	return nil, domain.ErrTaskAlreadyCompleted
}

// SoftDelete implements store.TaskStore.SoftDelete.
func (s *PostgresTaskStore) SoftDelete(ctx context.Context, id string, at time.Time) (*domain.Task, error) {
	query, args, err := psql.Update("tasks").
		Set("deleted", true).
		Set("deleted_at", sq.Expr("COALESCE(deleted_at, ?)", at)).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + taskColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build task soft delete: %w", err)
	}

	t, err := scanTask(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, store.ErrTaskNotFound)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("task soft-deleted", slog.String("task_id", id))
	return t, nil
}

func detailQuery() sq.SelectBuilder {
	return psql.Select(taskDetailColumns...).
		From("tasks t").
		LeftJoin("categories c ON c.id = t.category_id").
		LeftJoin("users au ON au.id = t.assigned_to").
		LeftJoin("priorities p ON p.id = t.priority_id").
		LeftJoin("users cu ON cu.id = t.created_by").
		LeftJoin("boards b ON b.id = t.board_id")
}

// filterConditions turns every set field of f into an equality or range predicate.
func filterConditions(f domain.TaskFilter) sq.And {
	conds := sq.And{}
	eq := sq.Eq{}
	if f.Status != "" {
		eq["t.status"] = string(f.Status)
	}
	if f.Priority != "" {
		eq["t.priority_id"] = f.Priority
	}
	if f.Category != "" {
		eq["t.category_id"] = f.Category
	}
	if f.AssignedTo != "" {
		eq["t.assigned_to"] = f.AssignedTo
	}
	if f.Board != "" {
		eq["t.board_id"] = f.Board
	}
	if f.CreatedBy != "" {
		eq["t.created_by"] = f.CreatedBy
	}
	if len(eq) > 0 {
		conds = append(conds, eq)
	}
	if f.DueFrom != nil {
		conds = append(conds, sq.GtOrEq{"t.due_date": *f.DueFrom})
	}
	if f.DueTo != nil {
		conds = append(conds, sq.Lt{"t.due_date": *f.DueTo})
	}
	return conds
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var status string
	err := row.Scan(
		&t.ID, &t.Name, &t.Description, &t.Category, &t.AssignedTo, &t.Priority, &status, &t.DueDate,
		&t.CompletedAt, &t.CreatedBy, &t.EditedBy, &t.Board, &t.Deleted, &t.DeletedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Status = domain.TaskStatus(status)
	return &t, nil
}

func scanTaskDetail(row rowScanner) (*domain.TaskDetail, error) {
	var (
		d                                       domain.TaskDetail
		status, createdBy                       string
		categoryID, categoryName                sql.NullString
		assigneeID, assigneeName, assigneeEmail sql.NullString
		priorityID, priorityName                sql.NullString
		priorityType                            sql.NullInt64
		creatorName, creatorEmail               sql.NullString
		boardID, boardName, boardStatus         sql.NullString
	)

	err := row.Scan(
		&d.ID, &d.Name, &d.Description, &status, &d.DueDate, &d.CompletedAt,
		&d.EditedBy, &d.Deleted, &d.DeletedAt, &d.CreatedAt, &d.UpdatedAt,
		&categoryID, &categoryName,
		&assigneeID, &assigneeName, &assigneeEmail,
		&priorityID, &priorityName, &priorityType,
		&createdBy, &creatorName, &creatorEmail,
		&boardID, &boardName, &boardStatus,
	)
	if err != nil {
		return nil, err
	}

	d.Status = domain.TaskStatus(status)
	d.CreatedBy = &domain.UserSummary{ID: createdBy, Name: creatorName.String, Email: creatorEmail.String}
	if categoryID.Valid {
		d.Category = &domain.CategorySummary{ID: categoryID.String, Name: categoryName.String}
	}
	if assigneeID.Valid {
		d.AssignedTo = &domain.UserSummary{ID: assigneeID.String, Name: assigneeName.String, Email: assigneeEmail.String}
	}
	if priorityID.Valid {
		d.Priority = &domain.PrioritySummary{ID: priorityID.String, Name: priorityName.String, Type: int(priorityType.Int64)}
	}
	if boardID.Valid {
		d.Board = &domain.BoardSummary{
			ID:     boardID.String,
			Name:   boardName.String,
			Status: domain.BoardStatus(boardStatus.String),
		}
	}
	return &d, nil
}
