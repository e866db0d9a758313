package services

import (
	"context"
	"fmt"
	"route-roster-service/internal/domain"
	"route-roster-service/internal/platform/obs"
	"route-roster-service/internal/ports"
	"time"
)

// InitializeChecklist stores every catalog component that is not yet part of
// the checklist and creates the unit header when missing. It is safe to call
// repeatedly; existing items keep their state.
func InitializeChecklist(ctx context.Context, repo ports.InspectionRepository, now time.Time) (_ int, err error) {
	defer obs.Time(ctx, "inspection.InitializeChecklist")(&err)

	items := make([]domain.InspectionItem, 0, domain.CatalogSize())
	for _, cat := range domain.InspectionCatalog {
		for _, el := range cat.Elements {
			items = append(items, domain.InspectionItem{
				Category:   cat.Name,
				Element:    el,
				ModifiedAt: now,
			})
		}
	}

	added, err := repo.InsertItems(ctx, items)
	if err != nil {
		return 0, fmt.Errorf("initialize checklist: insert items: %w", err)
	}

	_, ok, err := repo.GetUnit(ctx)
	if err != nil {
		return 0, fmt.Errorf("initialize checklist: get unit: %w", err)
	}
	if !ok {
		if err := repo.PutUnit(ctx, domain.UnitInfo{ModifiedAt: now}); err != nil {
			return 0, fmt.Errorf("initialize checklist: create unit: %w", err)
		}
	}

	return added, nil
}

// ListChecklist returns the stored items in the requested order.
func ListChecklist(ctx context.Context, repo ports.InspectionRepository, order domain.InspectionOrder) ([]domain.InspectionItem, error) {
	if order == "" {
		order = domain.OrderByElement
	}
	if !order.Valid() {
		return nil, fmt.Errorf("list checklist: %w: unknown order %q", domain.ErrInvalidInput, order)
	}

	items, err := repo.ListItems(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("list checklist: %w", err)
	}
	return items, nil
}

// UpdateChecklistItem applies a partial update to one item.
func UpdateChecklistItem(
	ctx context.Context,
	repo ports.InspectionRepository,
	id int64,
	patch domain.InspectionItemPatch,
	now time.Time,
) (domain.InspectionItem, error) {
	item, err := repo.UpdateItem(ctx, id, patch, now)
	if err != nil {
		return domain.InspectionItem{}, fmt.Errorf("update checklist item id=%d: %w", id, err)
	}
	return item, nil
}

// GetUnitInfo returns the unit header; a missing row reads as empty.
func GetUnitInfo(ctx context.Context, repo ports.InspectionRepository) (domain.UnitInfo, error) {
	u, _, err := repo.GetUnit(ctx)
	if err != nil {
		return domain.UnitInfo{}, fmt.Errorf("get unit info: %w", err)
	}
	return u, nil
}

// UpdateUnitInfo merges patch into the stored unit header.
func UpdateUnitInfo(
	ctx context.Context,
	repo ports.InspectionRepository,
	patch domain.UnitInfoPatch,
	now time.Time,
) (domain.UnitInfo, error) {
	current, _, err := repo.GetUnit(ctx)
	if err != nil {
		return domain.UnitInfo{}, fmt.Errorf("update unit info: get unit: %w", err)
	}

	next := patch.Apply(current, now)
	if err := repo.PutUnit(ctx, next); err != nil {
		return domain.UnitInfo{}, fmt.Errorf("update unit info: put unit: %w", err)
	}
	return next, nil
}
