package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/Vibranovski/Back-end-MVP-1-Eng-Software/core"
)

type DB struct {
	log    *slog.Logger
	driver string
	conn   *sqlx.DB
}

// New opens the store with the configured driver: "pgx" for postgres,
// "sqlite" for a local file. All queries use $N placeholders and RETURNING,
// which both engines accept.
func New(log *slog.Logger, driver, address string) (*DB, error) {
	db, err := sqlx.Connect(driver, address)
	if err != nil {
		log.Error("connection problem", "driver", driver, "address", address, "error", err)
		return nil, err
	}
	if driver == "sqlite" {
		// single writer connection; also keeps :memory: databases on one handle
		db.SetMaxOpenConns(1)
	}
	return &DB{log: log, driver: driver, conn: db}, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Lookups

func (db *DB) ListCategories(ctx context.Context) ([]core.Category, error) {
	const q = `SELECT id, name, description FROM categories ORDER BY id`

	var out []core.Category
	if err := db.conn.SelectContext(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

func (db *DB) ListPriorities(ctx context.Context) ([]core.Priority, error) {
	const q = `SELECT id, name FROM priorities ORDER BY id`

	var out []core.Priority
	if err := db.conn.SelectContext(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("list priorities: %w", err)
	}
	return out, nil
}

func (db *DB) ListStatuses(ctx context.Context) ([]core.Status, error) {
	const q = `SELECT id, name FROM statuses ORDER BY id`

	var out []core.Status
	if err := db.conn.SelectContext(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	return out, nil
}

func (db *DB) GetPriority(ctx context.Context, id int64) (core.Priority, error) {
	const q = `SELECT id, name FROM priorities WHERE id = $1`

	var p core.Priority
	if err := db.conn.GetContext(ctx, &p, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Priority{}, core.ErrPriorityNotFound
		}
		return core.Priority{}, fmt.Errorf("get priority: %w", err)
	}
	return p, nil
}

func (db *DB) GetStatus(ctx context.Context, id int64) (core.Status, error) {
	const q = `SELECT id, name FROM statuses WHERE id = $1`

	var st core.Status
	if err := db.conn.GetContext(ctx, &st, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Status{}, core.ErrStatusNotFound
		}
		return core.Status{}, fmt.Errorf("get status: %w", err)
	}
	return st, nil
}

func (db *DB) GetUser(ctx context.Context, id int64) (core.UserRef, error) {
	const q = `SELECT id, username FROM users WHERE id = $1`

	var u core.UserRef
	if err := db.conn.GetContext(ctx, &u, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.UserRef{}, core.ErrUserNotFound
		}
		return core.UserRef{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Users

// FindUserByCredentials matches both fields in one equality lookup. Nothing
// enforces username uniqueness, so duplicates are broken deterministically
// by lowest id.
func (db *DB) FindUserByCredentials(ctx context.Context, username, password string) (core.UserRef, error) {
	const q = `
		SELECT id, username
		FROM users
		WHERE username = $1 AND password = $2
		ORDER BY id ASC
		LIMIT 1;
	`

	var u core.UserRef
	if err := db.conn.GetContext(ctx, &u, q, username, password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.UserRef{}, core.ErrInvalidCredentials
		}
		return core.UserRef{}, fmt.Errorf("find user by credentials: %w", err)
	}
	return u, nil
}

// Tasks

const taskColumns = `id, title, description, created_date, due_date, estimated_time, fk_priority, fk_status, fk_user`

func (db *DB) ListTasks(ctx context.Context) ([]core.Task, error) {
	q := `SELECT ` + taskColumns + ` FROM tasks ORDER BY id`

	var out []core.Task
	if err := db.conn.SelectContext(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return out, nil
}

func (db *DB) ListTasksByStatus(ctx context.Context, statusID int64) ([]core.Task, error) {
	q := `SELECT ` + taskColumns + ` FROM tasks WHERE fk_status = $1 ORDER BY id`

	var out []core.Task
	if err := db.conn.SelectContext(ctx, &out, q, statusID); err != nil {
		return nil, fmt.Errorf("list tasks by status: %w", err)
	}
	return out, nil
}

func (db *DB) GetTask(ctx context.Context, id int64) (core.Task, error) {
	q := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	var t core.Task
	if err := db.conn.GetContext(ctx, &t, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Task{}, core.ErrTaskNotFound
		}
		return core.Task{}, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// CreateTask inserts one row. Reference ids go in as given: the schema does
// not constrain them, a dangling one later resolves to a null name.
func (db *DB) CreateTask(ctx context.Context, t core.Task) (int64, error) {
	const q = `
		INSERT INTO tasks (title, description, created_date, due_date, estimated_time, fk_priority, fk_status, fk_user)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`

	var id int64
	err := db.conn.QueryRowxContext(ctx, q,
		t.Title, t.Description, t.CreatedDate, t.DueDate, t.EstimatedTime,
		t.PriorityID, t.StatusID, t.UserID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}
	return id, nil
}

func (db *DB) DeleteTask(ctx context.Context, id int64) error {
	const q = `DELETE FROM tasks WHERE id = $1`

	res, err := db.conn.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return core.ErrTaskNotFound
	}
	return nil
}
