package queries

import (
	"errors"

	"senderplus/internal/pkg/guard"
)

// ErrGetParcelStatusCountsQueryIsNotConstructed is returned when the query
// was not created via NewGetParcelStatusCountsQuery.
var ErrGetParcelStatusCountsQueryIsNotConstructed = errors.New(
	"GetParcelStatusCountsQuery must be created via NewGetParcelStatusCountsQuery constructor")

// GetParcelStatusCountsQuery requests the number of parcels per lifecycle
// stage. Used by the periodic delivery report job.
type GetParcelStatusCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetParcelStatusCountsQuery creates the status-count query.
func NewGetParcelStatusCountsQuery() GetParcelStatusCountsQuery {
	return GetParcelStatusCountsQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetParcelStatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelStatusCountsQueryIsNotConstructed)
}
