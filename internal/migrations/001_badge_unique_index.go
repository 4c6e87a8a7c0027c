package migrations

import (
	"gorm.io/gorm"
)

// Migration001BadgeUniqueIndex enforces the badge ledger's core
// constraint at the storage layer: at most one non-legacy badge per
// (user, list, item count). Concurrent detection passes for the same
// user race on the insert; the second writer's row is rejected and the
// engine treats that as a benign no-op.
//
// A partial index is used so legacy badges, which can accumulate across
// list-size changes, stay unconstrained.
func Migration001BadgeUniqueIndex() Migration {
	return Migration{
		ID:   "001_badge_unique_index",
		Name: "Add partial unique index on non-legacy badges",
		Up: func(db *gorm.DB) error {
			idx := `
				CREATE UNIQUE INDEX IF NOT EXISTS idx_badges_current_unique
				ON badges (user_id, list_id, item_count_at_completion)
				WHERE is_legacy = false
			`
			return db.Exec(idx).Error
		},
	}
}
