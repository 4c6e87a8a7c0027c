package services

import (
	"sort"

	"github.com/turnstile-app/turnstile-backend/internal/models"
)

// ItemProgress is the satisfied/unsatisfied state of one list item.
type ItemProgress struct {
	DisplayName string `json:"displayName"`
	Satisfied   bool   `json:"satisfied"`
}

// ListProgress is the result of evaluating a user's membership against
// one list's items.
type ListProgress struct {
	VisitedCount int            `json:"visitedCount"`
	Total        int            `json:"total"`
	Items        []ItemProgress `json:"items"`
}

// EvaluateList applies the single satisfaction rule shared by the whole
// engine: a venue item is satisfied when its venue has been visited, an
// event item when its tag has been earned. Pure function, no I/O.
//
// Items with an unrecognized shape (missing reference, or a list type
// the engine doesn't know) count as unsatisfied rather than failing the
// evaluation. Output follows display order ascending, ties broken by
// item id.
func EvaluateList(list *models.List, items []models.ListItem, membership *Membership) ListProgress {
	sorted := make([]models.ListItem, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].DisplayOrder != sorted[j].DisplayOrder {
			return sorted[i].DisplayOrder < sorted[j].DisplayOrder
		}
		return sorted[i].ID < sorted[j].ID
	})

	progress := ListProgress{
		Total: len(sorted),
		Items: make([]ItemProgress, 0, len(sorted)),
	}

	for _, item := range sorted {
		satisfied := false
		switch list.ListType {
		case models.ListTypeVenue:
			if item.VenueID != nil {
				satisfied = membership.HasVenue(*item.VenueID)
			}
		case models.ListTypeEvent:
			if item.EventTag != nil {
				satisfied = membership.HasTag(*item.EventTag)
			}
		}

		if satisfied {
			progress.VisitedCount++
		}
		progress.Items = append(progress.Items, ItemProgress{
			DisplayName: item.DisplayName,
			Satisfied:   satisfied,
		})
	}

	return progress
}
