package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/turnstile-app/turnstile-backend/internal/models"
	"github.com/turnstile-app/turnstile-backend/pkg/logger"
	"gorm.io/gorm"
)

// BadgeEngine decides, per (user, list), whether a completion badge is
// due and records it. The store handle is threaded in explicitly so the
// engine can be exercised against any *gorm.DB.
type BadgeEngine struct {
	db *gorm.DB
}

func NewBadgeEngine(db *gorm.DB) *BadgeEngine {
	return &BadgeEngine{db: db}
}

// CheckBadges runs one detection pass for a user: every system list
// plus every list the user follows is evaluated against the user's
// current membership, and zero or more non-legacy badges are written.
// Returns the badges newly awarded by this pass.
//
// Best-effort semantics: a failure on one list is logged and skipped,
// never aborting the pass; context expiry stops evaluation of the
// remaining lists and returns whatever was awarded so far. Callers on
// write paths must treat any error here as advisory, not as a failure
// of the triggering mutation.
func (e *BadgeEngine) CheckBadges(ctx context.Context, userID string) ([]models.Badge, error) {
	lists, err := e.candidateLists(userID)
	if err != nil {
		return nil, err
	}
	if len(lists) == 0 {
		return nil, nil
	}

	membership, err := ResolveMembership(e.db, userID)
	if err != nil {
		return nil, err
	}

	listIDs := make([]string, 0, len(lists))
	for _, l := range lists {
		listIDs = append(listIDs, l.ID)
	}

	// Batch reads up front: one query for every candidate list's items,
	// one for every existing badge, instead of two per list.
	itemsByList, err := e.itemsForLists(listIDs)
	if err != nil {
		return nil, err
	}
	badgesByList, err := e.badgesForLists(userID, listIDs)
	if err != nil {
		return nil, err
	}

	var newBadges []models.Badge
	for i := range lists {
		list := &lists[i]

		select {
		case <-ctx.Done():
			logger.Warn().
				Str("user_id", userID).
				Str("list_id", list.ID).
				Msg("Badge evaluation cut short by deadline")
			return newBadges, nil
		default:
		}

		if list.ItemCount == 0 {
			continue
		}

		current := currentBadge(badgesByList[list.ID])
		if current != nil && current.ItemCountAtCompletion == list.ItemCount {
			// Already credited at the list's current size.
			continue
		}

		progress := EvaluateList(list, itemsByList[list.ID], membership)
		if progress.VisitedCount < list.ItemCount {
			// Not complete at the current size. An existing badge at a
			// stale count stays untouched until a genuine re-completion
			// is detected.
			continue
		}

		badge, err := e.award(userID, list, current)
		if err != nil {
			logger.Error().Err(err).
				Str("user_id", userID).
				Str("list_id", list.ID).
				Msg("Failed to record badge")
			continue
		}
		if badge != nil {
			newBadges = append(newBadges, *badge)
		}
	}

	return newBadges, nil
}

// candidateLists returns every system list plus the lists the user
// follows, deduplicated.
func (e *BadgeEngine) candidateLists(userID string) ([]models.List, error) {
	var lists []models.List
	if err := e.db.
		Where("source = ?", models.ListSourceSystem).
		Or("id IN (?)", e.db.Model(&models.ListFollow{}).
			Select("list_id").
			Where("user_id = ?", userID)).
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (e *BadgeEngine) itemsForLists(listIDs []string) (map[string][]models.ListItem, error) {
	var items []models.ListItem
	if err := e.db.Where("list_id IN ?", listIDs).Find(&items).Error; err != nil {
		return nil, err
	}
	byList := make(map[string][]models.ListItem, len(listIDs))
	for _, item := range items {
		byList[item.ListID] = append(byList[item.ListID], item)
	}
	return byList, nil
}

func (e *BadgeEngine) badgesForLists(userID string, listIDs []string) (map[string][]models.Badge, error) {
	var badges []models.Badge
	if err := e.db.
		Where("user_id = ? AND list_id IN ?", userID, listIDs).
		Find(&badges).Error; err != nil {
		return nil, err
	}
	byList := make(map[string][]models.Badge, len(badges))
	for _, b := range badges {
		byList[b.ListID] = append(byList[b.ListID], b)
	}
	return byList, nil
}

func currentBadge(badges []models.Badge) *models.Badge {
	for i := range badges {
		if !badges[i].IsLegacy {
			return &badges[i]
		}
	}
	return nil
}

// award writes the completion: a stale-count badge (if any) is flagged
// legacy rather than deleted, and a fresh non-legacy badge is inserted
// at the list's current size. A duplicate-key rejection from a
// concurrent pass for the same user is a benign no-op.
func (e *BadgeEngine) award(userID string, list *models.List, stale *models.Badge) (*models.Badge, error) {
	badge := &models.Badge{
		UserID:                userID,
		ListID:                list.ID,
		CompletedAt:           time.Now(),
		ItemCountAtCompletion: list.ItemCount,
		IsLegacy:              false,
	}

	err := e.db.Transaction(func(tx *gorm.DB) error {
		if stale != nil {
			if err := tx.Model(&models.Badge{}).
				Where("id = ?", stale.ID).
				Update("is_legacy", true).Error; err != nil {
				return err
			}
		}
		return tx.Create(badge).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return nil, nil
		}
		return nil, err
	}

	return badge, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "duplicate key")
}
