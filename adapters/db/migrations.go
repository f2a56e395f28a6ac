package db

import (
	_ "embed"
	"fmt"
)

//go:embed migrations/01_create_categories.up.sql
var createCategoriesUp string

//go:embed migrations/02_create_users.up.sql
var createUsersUp string

//go:embed migrations/03_create_priorities.up.sql
var createPrioritiesUp string

//go:embed migrations/04_create_statuses.up.sql
var createStatusesUp string

//go:embed migrations/05_create_tasks.pg.up.sql
var createTasksPgUp string

//go:embed migrations/05_create_tasks.sqlite.up.sql
var createTasksSqliteUp string

//go:embed migrations/06_seed_priorities.up.sql
var seedPrioritiesUp string

//go:embed migrations/07_seed_statuses.up.sql
var seedStatusesUp string

//go:embed migrations/08_seed_categories.up.sql
var seedCategoriesUp string

//go:embed migrations/09_seed_users.up.sql
var seedUsersUp string

// Migrate brings up the five board tables and the lookup seeds. Every
// statement is idempotent, so running it on every start is safe. The tasks
// DDL is the only driver-specific piece (identity column syntax).
func (db *DB) Migrate() error {
	db.log.Debug("running board migrations", "driver", db.driver)

	createTasksUp := createTasksPgUp
	if db.driver == "sqlite" {
		createTasksUp = createTasksSqliteUp
	}

	stmts := []string{
		createCategoriesUp,
		createUsersUp,
		createPrioritiesUp,
		createStatusesUp,
		createTasksUp,
		seedPrioritiesUp,
		seedStatusesUp,
		seedCategoriesUp,
		seedUsersUp,
	}

	for _, stmt := range stmts {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}

	db.log.Debug("board migrations finished")
	return nil
}
