package core

import (
	"context"
	"errors"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
	}
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// Lookups

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.store.ListCategories(ctx)
}

func (s *Service) ListPriorities(ctx context.Context) ([]Priority, error) {
	return s.store.ListPriorities(ctx)
}

func (s *Service) ListStatuses(ctx context.Context) ([]Status, error) {
	return s.store.ListStatuses(ctx)
}

// Users

// Login matches username and password in a single equality lookup; a wrong
// password on a known username is indistinguishable from an unknown username.
func (s *Service) Login(ctx context.Context, username, password string) (UserRef, error) {
	if username == "" || password == "" {
		return UserRef{}, ErrInvalidArgs
	}
	return s.store.FindUserByCredentials(ctx, username, password)
}

// Tasks

func (s *Service) ListTasks(ctx context.Context) ([]Task, error) {
	return s.store.ListTasks(ctx)
}

// ListTasksByStatus returns an empty slice, not an error, when nothing
// carries the status.
func (s *Service) ListTasksByStatus(ctx context.Context, statusID int64) ([]Task, error) {
	return s.store.ListTasksByStatus(ctx, statusID)
}

// CreateTask inserts one row and returns its fresh id. Reference ids are
// not checked against their tables; the enrichment side tolerates dangling
// ones.
func (s *Service) CreateTask(ctx context.Context, t Task) (int64, error) {
	if t.PriorityID == nil || t.StatusID == nil || t.UserID == nil {
		return 0, ErrInvalidArgs
	}
	return s.store.CreateTask(ctx, t)
}

func (s *Service) DeleteTask(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrTaskNotFound
	}
	return s.store.DeleteTask(ctx, id)
}

// GetTaskDetails fetches one task and resolves each of its references to a
// display name. The three lookups are independent: a null or dangling
// reference yields a nil name and never blocks the others. Nothing wraps
// the round-trips in a transaction, so a row deleted between the task fetch
// and its lookup simply resolves to nil.
func (s *Service) GetTaskDetails(ctx context.Context, id int64) (TaskDetails, error) {
	t, err := s.store.GetTask(ctx, id)
	if err != nil {
		return TaskDetails{}, err
	}

	d := TaskDetails{Task: t}

	if t.PriorityID != nil {
		p, err := s.store.GetPriority(ctx, *t.PriorityID)
		switch {
		case err == nil:
			d.Priority = &p.Name
		case errors.Is(err, ErrPriorityNotFound):
			// dangling reference, keep nil
		default:
			return TaskDetails{}, err
		}
	}

	if t.StatusID != nil {
		st, err := s.store.GetStatus(ctx, *t.StatusID)
		switch {
		case err == nil:
			d.Status = &st.Name
		case errors.Is(err, ErrStatusNotFound):
		default:
			return TaskDetails{}, err
		}
	}

	if t.UserID != nil {
		u, err := s.store.GetUser(ctx, *t.UserID)
		switch {
		case err == nil:
			d.Username = &u.Username
		case errors.Is(err, ErrUserNotFound):
		default:
			return TaskDetails{}, err
		}
	}

	return d, nil
}
