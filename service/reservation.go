package service

import (
	"context"
	"regexp"
	"slices"
	"time"

	"rehearsal_booking/model"
)

// Only institutional addresses of the form name.surname@kiu.edu.ge may book,
// both segments strictly alphanumeric.
var kiuEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9]+\.[a-zA-Z0-9]+@kiu\.edu\.ge$`)

// maxScanDays bounds the forward walk of NextAvailableDates so a fully booked
// stretch cannot stall the scan forever.
const maxScanDays = 365

var (
	weekendHours = []int{15, 16, 17, 18, 19, 20, 21}
	weekdayHours = []int{17, 18, 19, 20, 21}
)

type ReservationService struct {
	store Store
	clock Clock
}

func NewReservationService(store Store, clock Clock) *ReservationService {
	return &ReservationService{store: store, clock: clock}
}

func (s *ReservationService) GetAll(ctx context.Context) ([]model.Reservation, error) {
	return s.store.GetAll(ctx)
}

func (s *ReservationService) GetByID(ctx context.Context, id uint) (*model.Reservation, error) {
	return s.store.GetByID(ctx, id)
}

// AvailableHours returns the bookable hours of date, ascending: the weekday
// candidate set minus hours held by closed slots minus hours at or before the
// clock's current hour. The current-hour cutoff applies to every date, not
// just today.
func (s *ReservationService) AvailableHours(ctx context.Context, date time.Time) ([]int, error) {
	closed, err := s.store.ClosedHours(ctx, date)
	if err != nil {
		return nil, err
	}

	var candidates []int
	switch date.Weekday() {
	case time.Friday, time.Saturday:
		candidates = weekendHours
	default:
		candidates = weekdayHours
	}

	currentHour := s.clock.Now().Hour()
	available := make([]int, 0, len(candidates))
	for _, hour := range candidates {
		if hour <= currentHour || slices.Contains(closed, hour) {
			continue
		}
		available = append(available, hour)
	}
	return available, nil
}

// AvailableInstruments reports which instruments are still free at date+hour,
// in the order guitar, bass, drums, piano, microphone. A closed slot still
// reports its per-instrument state; it just rejects new submissions.
func (s *ReservationService) AvailableInstruments(ctx context.Context, date time.Time, hour int) ([]bool, error) {
	res, err := s.store.GetBySlot(ctx, slotTime(date, hour))
	if err != nil {
		return nil, err
	}
	if res == nil {
		return []bool{true, true, true, true, true}, nil
	}
	return []bool{
		!res.IsGuitarTaken,
		!res.IsBassTaken,
		!res.IsDrumsTaken,
		!res.IsPianoTaken,
		!res.IsMicrophoneTaken,
	}, nil
}

// Submit validates a booking request and either creates the slot's record or
// merges instrument claims into an open one. Rejections come back as
// model.ErrWrongEmail, model.ErrWrongHour or model.ErrSlotReserved; anything
// else is a store fault.
func (s *ReservationService) Submit(ctx context.Context, req model.SubmitRequest) (*model.Reservation, error) {
	if !kiuEmailRegex.MatchString(req.Email) {
		return nil, model.ErrWrongEmail
	}

	hours, err := s.AvailableHours(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(hours, req.Hour) {
		return nil, model.ErrWrongHour
	}

	slot := slotTime(req.Date, req.Hour)
	existing, err := s.store.GetBySlot(ctx, slot)
	if err != nil {
		return nil, err
	}

	switch {
	case existing == nil:
		reservation := &model.Reservation{
			Email:             req.Email,
			Date:              slot,
			IsGuitarTaken:     req.IsGuitarTaken,
			IsBassTaken:       req.IsBassTaken,
			IsDrumsTaken:      req.IsDrumsTaken,
			IsPianoTaken:      req.IsPianoTaken,
			IsMicrophoneTaken: req.IsMicrophoneTaken,
			IsOpen:            req.IsOpen,
		}
		if err := s.store.Create(ctx, reservation); err != nil {
			return nil, err
		}
		return reservation, nil

	case !existing.IsOpen:
		return nil, model.ErrSlotReserved

	default:
		// Claims only accumulate. The opener's email and openness stay as
		// they are, whatever the new submission carries.
		existing.IsGuitarTaken = req.IsGuitarTaken || existing.IsGuitarTaken
		existing.IsBassTaken = req.IsBassTaken || existing.IsBassTaken
		existing.IsDrumsTaken = req.IsDrumsTaken || existing.IsDrumsTaken
		existing.IsPianoTaken = req.IsPianoTaken || existing.IsPianoTaken
		existing.IsMicrophoneTaken = req.IsMicrophoneTaken || existing.IsMicrophoneTaken
		if err := s.store.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
}

// NextAvailableDates walks forward from today collecting dates that still
// have at least one bookable hour, stopping at 7 dates or at the scan
// horizon. A shorter result means nothing else is available inside the
// window.
func (s *ReservationService) NextAvailableDates(ctx context.Context) ([]time.Time, error) {
	dates := make([]time.Time, 0, 7)
	now := s.clock.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for i := 0; i < maxScanDays && len(dates) < 7; i++ {
		hours, err := s.AvailableHours(ctx, day)
		if err != nil {
			return nil, err
		}
		if len(hours) > 0 {
			dates = append(dates, day)
		}
		day = day.AddDate(0, 0, 1)
	}
	return dates, nil
}

func slotTime(date time.Time, hour int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
}
