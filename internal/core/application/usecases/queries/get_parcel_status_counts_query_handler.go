package queries

import (
	"context"

	"gorm.io/gorm"
)

// ParcelStatusCount is one row of the per-stage parcel tally.
type ParcelStatusCount struct {
	Status string
	Count  int64
}

// GetParcelStatusCountsQueryHandler tallies parcels per lifecycle stage.
type GetParcelStatusCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelStatusCountsQueryHandler creates a handler for the tally query.
func NewGetParcelStatusCountsQueryHandler(db *gorm.DB) GetParcelStatusCountsQueryHandler {
	return GetParcelStatusCountsQueryHandler{db: db}
}

// Handle executes the tally. Stages with no parcels are simply absent from
// the result.
func (h GetParcelStatusCountsQueryHandler) Handle(
	ctx context.Context,
	query GetParcelStatusCountsQuery,
) ([]ParcelStatusCount, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make([]ParcelStatusCount, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM parcels
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c ParcelStatusCount
		if err = rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}
