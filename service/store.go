package service

import (
	"context"
	"time"

	"rehearsal_booking/model"
)

// Store is the persistence contract the reservation service works against.
// Lookup methods return (nil, nil) when no record matches.
type Store interface {
	GetAll(ctx context.Context) ([]model.Reservation, error)
	GetByID(ctx context.Context, id uint) (*model.Reservation, error)
	// GetBySlot matches the exact date+hour timestamp of a slot.
	GetBySlot(ctx context.Context, slot time.Time) (*model.Reservation, error)
	// ClosedHours lists the hours of day that hold a record with is_open = false.
	ClosedHours(ctx context.Context, day time.Time) ([]int, error)
	Create(ctx context.Context, r *model.Reservation) error
	Update(ctx context.Context, r *model.Reservation) error
}
