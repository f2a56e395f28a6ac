package core

import "context"

type Pinger interface {
	Ping(ctx context.Context) error
}

// Store is the single relational store behind the board. Every call is one
// round-trip on its own connection; absence comes back as a sentinel error,
// never as a fault.
type Store interface {
	Pinger

	// lookups
	ListCategories(ctx context.Context) ([]Category, error)
	ListPriorities(ctx context.Context) ([]Priority, error)
	ListStatuses(ctx context.Context) ([]Status, error)
	GetPriority(ctx context.Context, id int64) (Priority, error)
	GetStatus(ctx context.Context, id int64) (Status, error)
	GetUser(ctx context.Context, id int64) (UserRef, error)

	// users
	FindUserByCredentials(ctx context.Context, username, password string) (UserRef, error)

	// tasks
	ListTasks(ctx context.Context) ([]Task, error)
	ListTasksByStatus(ctx context.Context, statusID int64) ([]Task, error)
	GetTask(ctx context.Context, id int64) (Task, error)
	CreateTask(ctx context.Context, t Task) (int64, error)
	DeleteTask(ctx context.Context, id int64) error
}
