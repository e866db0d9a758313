package ports

import (
	"context"
	"route-roster-service/internal/domain"
	"time"
)

// Port: a boundary for the inspection checklist storage.
type InspectionRepository interface {
	ListItems(ctx context.Context, order domain.InspectionOrder) ([]domain.InspectionItem, error)
	// Insert items; items whose (category, element) already exists are skipped.
	// Return the number of inserted rows.
	InsertItems(ctx context.Context, items []domain.InspectionItem) (int, error)
	// Apply a partial update, or return domain.ErrNotFound.
	UpdateItem(ctx context.Context, id int64, patch domain.InspectionItemPatch, at time.Time) (domain.InspectionItem, error)

	// Return the unit row and whether it exists.
	GetUnit(ctx context.Context) (domain.UnitInfo, bool, error)
	PutUnit(ctx context.Context, u domain.UnitInfo) error
}
