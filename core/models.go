package core

type Category struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
}

type Priority struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type Status struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// UserRef is what the credentials lookup returns. The password never
// leaves the storage layer.
type UserRef struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
}

type Task struct {
	ID            int64  `db:"id"`
	Title         string `db:"title"`
	Description   string `db:"description"`
	CreatedDate   string `db:"created_date"`
	DueDate       string `db:"due_date"`
	EstimatedTime string `db:"estimated_time"` // free text, e.g. "5 dias"
	PriorityID    *int64 `db:"fk_priority"`    // Nil when the row carries no reference
	StatusID      *int64 `db:"fk_status"`
	UserID        *int64 `db:"fk_user"`
}

// TaskDetails is a task with its references resolved to display names.
// Any name is nil when the reference is null or dangling.
type TaskDetails struct {
	Task
	Priority *string
	Status   *string
	Username *string
}
