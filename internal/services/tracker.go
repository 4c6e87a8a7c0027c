package services

import (
	"fmt"

	"github.com/turnstile-app/turnstile-backend/internal/models"
)

// TrackedList is live progress on a followed list the user has not yet
// completed at its current size.
type TrackedList struct {
	ListID    string `json:"listId"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Sport     string `json:"sport"`
	ItemCount int    `json:"itemCount"`
	Visited   int    `json:"visited"`
}

// TrackedProgress reports live progress for every list the user follows
// that has no current (non-legacy) badge. Zero-item lists are omitted.
// Read-only: never writes a badge. No ordering guarantee; the caller
// sorts for display.
func (e *BadgeEngine) TrackedProgress(userID string) ([]TrackedList, error) {
	var follows []models.ListFollow
	if err := e.db.Preload("List").Where("user_id = ?", userID).Find(&follows).Error; err != nil {
		return nil, err
	}
	if len(follows) == 0 {
		return []TrackedList{}, nil
	}

	listIDs := make([]string, 0, len(follows))
	for _, f := range follows {
		listIDs = append(listIDs, f.ListID)
	}

	var earned []string
	if err := e.db.Model(&models.Badge{}).
		Where("user_id = ? AND list_id IN ? AND is_legacy = ?", userID, listIDs, false).
		Pluck("list_id", &earned).Error; err != nil {
		return nil, err
	}
	earnedSet := make(map[string]struct{}, len(earned))
	for _, id := range earned {
		earnedSet[id] = struct{}{}
	}

	membership, err := ResolveMembership(e.db, userID)
	if err != nil {
		return nil, err
	}
	itemsByList, err := e.itemsForLists(listIDs)
	if err != nil {
		return nil, err
	}

	tracked := make([]TrackedList, 0, len(follows))
	for _, f := range follows {
		list := f.List
		if list.ItemCount == 0 {
			continue
		}
		if _, done := earnedSet[list.ID]; done {
			continue
		}

		progress := EvaluateList(&list, itemsByList[list.ID], membership)
		tracked = append(tracked, TrackedList{
			ListID:    list.ID,
			Name:      list.Name,
			Slug:      list.Slug,
			Sport:     list.Sport,
			ItemCount: list.ItemCount,
			Visited:   progress.VisitedCount,
		})
	}

	return tracked, nil
}

// BadgeItems returns the per-item checklist for a badge's list,
// evaluated against the list's current items at call time. For a legacy
// badge this intentionally shows how the now-edited list stands today,
// not the historical snapshot the badge was earned under.
func (e *BadgeEngine) BadgeItems(listID, userID string) ([]ItemProgress, error) {
	var list models.List
	if err := e.db.First(&list, "id = ?", listID).Error; err != nil {
		return nil, fmt.Errorf("list lookup failed: %w", err)
	}

	var items []models.ListItem
	if err := e.db.Where("list_id = ?", listID).Find(&items).Error; err != nil {
		return nil, err
	}

	membership, err := ResolveMembership(e.db, userID)
	if err != nil {
		return nil, err
	}

	progress := EvaluateList(&list, items, membership)
	return progress.Items, nil
}

// ListProgressFor evaluates one list for a user, for display on list
// detail pages. Same rule as every other read path.
func (e *BadgeEngine) ListProgressFor(listID, userID string) (*ListProgress, error) {
	var list models.List
	if err := e.db.First(&list, "id = ?", listID).Error; err != nil {
		return nil, fmt.Errorf("list lookup failed: %w", err)
	}

	var items []models.ListItem
	if err := e.db.Where("list_id = ?", listID).Find(&items).Error; err != nil {
		return nil, err
	}

	membership, err := ResolveMembership(e.db, userID)
	if err != nil {
		return nil, err
	}

	progress := EvaluateList(&list, items, membership)
	return &progress, nil
}
