package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"rehearsal_booking/model"
)

// ReservationStore is the gorm-backed store behind the reservation service.
type ReservationStore struct {
	db *gorm.DB
}

func NewReservationStore(db *gorm.DB) *ReservationStore {
	return &ReservationStore{db: db}
}

func (s *ReservationStore) GetAll(ctx context.Context) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := s.db.WithContext(ctx).Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *ReservationStore) GetByID(ctx context.Context, id uint) (*model.Reservation, error) {
	var reservation model.Reservation
	err := s.db.WithContext(ctx).First(&reservation, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (s *ReservationStore) GetBySlot(ctx context.Context, slot time.Time) (*model.Reservation, error) {
	var reservation model.Reservation
	err := s.db.WithContext(ctx).Where("date = ?", slot).First(&reservation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (s *ReservationStore) ClosedHours(ctx context.Context, day time.Time) ([]int, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var slots []time.Time
	err := s.db.WithContext(ctx).
		Model(&model.Reservation{}).
		Where("date >= ? AND date < ? AND is_open = ?", start, end, false).
		Pluck("date", &slots).Error
	if err != nil {
		return nil, err
	}

	hours := make([]int, 0, len(slots))
	for _, slot := range slots {
		hours = append(hours, slot.Hour())
	}
	return hours, nil
}

func (s *ReservationStore) Create(ctx context.Context, r *model.Reservation) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *ReservationStore) Update(ctx context.Context, r *model.Reservation) error {
	return s.db.WithContext(ctx).Save(r).Error
}
