package core_test

import (
	"context"
	"sort"
	"sync"

	"github.com/Vibranovski/Back-end-MVP-1-Eng-Software/core"
)

type fakeUser struct {
	id       int64
	username string
	password string
}

type fakeStore struct {
	mu sync.RWMutex

	nextTaskID int64

	categories map[int64]core.Category
	priorities map[int64]core.Priority
	statuses   map[int64]core.Status
	users      map[int64]fakeUser
	tasks      map[int64]core.Task
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextTaskID: 1,
		categories: make(map[int64]core.Category),
		priorities: make(map[int64]core.Priority),
		statuses:   make(map[int64]core.Status),
		users:      make(map[int64]fakeUser),
		tasks:      make(map[int64]core.Task),
	}
}

func cloneTask(t core.Task) core.Task {
	out := t
	if t.PriorityID != nil {
		id := *t.PriorityID
		out.PriorityID = &id
	}
	if t.StatusID != nil {
		id := *t.StatusID
		out.StatusID = &id
	}
	if t.UserID != nil {
		id := *t.UserID
		out.UserID = &id
	}
	return out
}

func (f *fakeStore) Ping(context.Context) error {
	return nil
}

func (f *fakeStore) ListCategories(context.Context) ([]core.Category, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]core.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) ListPriorities(context.Context) ([]core.Priority, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]core.Priority, 0, len(f.priorities))
	for _, p := range f.priorities {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) ListStatuses(context.Context) ([]core.Status, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]core.Status, 0, len(f.statuses))
	for _, st := range f.statuses {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) GetPriority(_ context.Context, id int64) (core.Priority, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	p, ok := f.priorities[id]
	if !ok {
		return core.Priority{}, core.ErrPriorityNotFound
	}
	return p, nil
}

func (f *fakeStore) GetStatus(_ context.Context, id int64) (core.Status, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	st, ok := f.statuses[id]
	if !ok {
		return core.Status{}, core.ErrStatusNotFound
	}
	return st, nil
}

func (f *fakeStore) GetUser(_ context.Context, id int64) (core.UserRef, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	u, ok := f.users[id]
	if !ok {
		return core.UserRef{}, core.ErrUserNotFound
	}
	return core.UserRef{ID: u.id, Username: u.username}, nil
}

func (f *fakeStore) FindUserByCredentials(_ context.Context, username, password string) (core.UserRef, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	// lowest id wins when usernames repeat
	var best *fakeUser
	for _, u := range f.users {
		if u.username != username || u.password != password {
			continue
		}
		u := u
		if best == nil || u.id < best.id {
			best = &u
		}
	}
	if best == nil {
		return core.UserRef{}, core.ErrInvalidCredentials
	}
	return core.UserRef{ID: best.id, Username: best.username}, nil
}

func (f *fakeStore) ListTasks(context.Context) ([]core.Task, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]core.Task, 0, len(f.tasks))
	for _, t := range f.tasks {
		out = append(out, cloneTask(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) ListTasksByStatus(_ context.Context, statusID int64) ([]core.Task, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]core.Task, 0)
	for _, t := range f.tasks {
		if t.StatusID == nil || *t.StatusID != statusID {
			continue
		}
		out = append(out, cloneTask(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) GetTask(_ context.Context, id int64) (core.Task, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	t, ok := f.tasks[id]
	if !ok {
		return core.Task{}, core.ErrTaskNotFound
	}
	return cloneTask(t), nil
}

func (f *fakeStore) CreateTask(_ context.Context, t core.Task) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextTaskID
	f.nextTaskID++

	t.ID = id
	f.tasks[id] = cloneTask(t)
	return id, nil
}

func (f *fakeStore) DeleteTask(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.tasks[id]; !ok {
		return core.ErrTaskNotFound
	}
	delete(f.tasks, id)
	return nil
}

// seeding helpers

func (f *fakeStore) addPriority(id int64, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.priorities[id] = core.Priority{ID: id, Name: name}
}

func (f *fakeStore) addStatus(id int64, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[id] = core.Status{ID: id, Name: name}
}

func (f *fakeStore) addUser(id int64, username, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[id] = fakeUser{id: id, username: username, password: password}
}

func (f *fakeStore) addCategory(id int64, name, description string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories[id] = core.Category{ID: id, Name: name, Description: description}
}
