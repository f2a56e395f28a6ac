package rest

import "github.com/Vibranovski/Back-end-MVP-1-Eng-Software/core"

// Requests

type LoginIn struct {
	Usuario string `json:"usuario"`
	Senha   string `json:"senha"`
}

// CreateTaskIn keeps every field a pointer so a missing key is
// distinguishable from a zero value: presence of all eight fields is the
// only validation the endpoint does.
type CreateTaskIn struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	CreatedDate   *string `json:"created_date"`
	DueDate       *string `json:"due_date"`
	EstimatedTime *string `json:"estimated_time"`
	PriorityID    *int64  `json:"fk_priority"`
	StatusID      *int64  `json:"fk_status"`
	UserID        *int64  `json:"fk_user"`
}

func (in CreateTaskIn) Complete() bool {
	return in.Title != nil && in.Description != nil &&
		in.CreatedDate != nil && in.DueDate != nil && in.EstimatedTime != nil &&
		in.PriorityID != nil && in.StatusID != nil && in.UserID != nil
}

func (in CreateTaskIn) Task() core.Task {
	return core.Task{
		Title:         *in.Title,
		Description:   *in.Description,
		CreatedDate:   *in.CreatedDate,
		DueDate:       *in.DueDate,
		EstimatedTime: *in.EstimatedTime,
		PriorityID:    in.PriorityID,
		StatusID:      in.StatusID,
		UserID:        in.UserID,
	}
}

// Responses

type CategoryOut struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type NameOut struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TaskOut is the raw row shape for the list endpoints.
type TaskOut struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	CreatedDate   string `json:"created_date"`
	DueDate       string `json:"due_date"`
	EstimatedTime string `json:"estimated_time"`
	PriorityID    *int64 `json:"fk_priority"`
	StatusID      *int64 `json:"fk_status"`
	UserID        *int64 `json:"fk_user"`
}

// TaskDetailsOut replaces the reference ids with resolved names; any of the
// three may be null.
type TaskDetailsOut struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	CreatedDate   string  `json:"created_date"`
	DueDate       string  `json:"due_date"`
	EstimatedTime string  `json:"estimated_time"`
	Priority      *string `json:"priority"`
	Status        *string `json:"status"`
	Usuario       *string `json:"usuario"`
}

type LoginOut struct {
	UserID  int64  `json:"user_id"`
	Usuario string `json:"usuario"`
	Message string `json:"message"`
}

type CreatedOut struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type MessageOut struct {
	Message string `json:"message"`
}

// Assemblers

func NewCategoryList(items []core.Category) []CategoryOut {
	out := make([]CategoryOut, 0, len(items))
	for _, c := range items {
		out = append(out, CategoryOut{ID: c.ID, Name: c.Name, Description: c.Description})
	}
	return out
}

func NewPriorityList(items []core.Priority) []NameOut {
	out := make([]NameOut, 0, len(items))
	for _, p := range items {
		out = append(out, NameOut{ID: p.ID, Name: p.Name})
	}
	return out
}

func NewStatusList(items []core.Status) []NameOut {
	out := make([]NameOut, 0, len(items))
	for _, st := range items {
		out = append(out, NameOut{ID: st.ID, Name: st.Name})
	}
	return out
}

func NewTask(t core.Task) TaskOut {
	return TaskOut{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		CreatedDate:   t.CreatedDate,
		DueDate:       t.DueDate,
		EstimatedTime: t.EstimatedTime,
		PriorityID:    t.PriorityID,
		StatusID:      t.StatusID,
		UserID:        t.UserID,
	}
}

func NewTaskList(items []core.Task) []TaskOut {
	out := make([]TaskOut, 0, len(items))
	for _, t := range items {
		out = append(out, NewTask(t))
	}
	return out
}

func NewTaskDetails(d core.TaskDetails) TaskDetailsOut {
	return TaskDetailsOut{
		ID:            d.ID,
		Title:         d.Title,
		Description:   d.Description,
		CreatedDate:   d.CreatedDate,
		DueDate:       d.DueDate,
		EstimatedTime: d.EstimatedTime,
		Priority:      d.Priority,
		Status:        d.Status,
		Usuario:       d.Username,
	}
}

func NewLogin(u core.UserRef) LoginOut {
	return LoginOut{
		UserID:  u.ID,
		Usuario: u.Username,
		Message: "Login bem-sucedido",
	}
}
