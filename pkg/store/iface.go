// iface.go defines the StoreInterface for dependency injection and testing.
//
// The concrete *Store type satisfies this interface. Code that depends on
// the store (the pcal commands, the holiday calendar) can accept
// StoreInterface instead of *Store, enabling in-memory fakes in tests.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/daviddao/persiancal/pkg/model"
	"github.com/daviddao/persiancal/pkg/persian"
)

// StoreInterface defines the full set of store operations.
// The concrete *Store type implements this interface.
type StoreInterface interface {
	// Close closes the database connection.
	Close() error

	// AddOccasion validates and inserts an occasion.
	AddOccasion(ctx context.Context, o *model.Occasion) error

	// GetOccasion retrieves an occasion by ID.
	GetOccasion(ctx context.Context, id uuid.UUID) (*model.Occasion, error)

	// DeleteOccasion removes an occasion by ID.
	DeleteOccasion(ctx context.Context, id uuid.UUID) error

	// ListOccasions returns every occasion in calendar order.
	ListOccasions(ctx context.Context) ([]model.Occasion, error)

	// OccasionsOn returns the occasions falling on a date.
	OccasionsOn(ctx context.Context, d persian.Date) ([]model.Occasion, error)

	// OccasionsInMonth returns the occasions falling in a month.
	OccasionsInMonth(ctx context.Context, ym persian.YearMonth) ([]model.Occasion, error)

	// CountOccasions returns the number of stored occasions.
	CountOccasions(ctx context.Context) (int64, error)
}

// Compile-time check that *Store implements StoreInterface.
var _ StoreInterface = (*Store)(nil)
