package handler_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rehearsal_booking/handler"
	"rehearsal_booking/model"
	"rehearsal_booking/router"
	"rehearsal_booking/service"
)

// monday is 2025-01-06; the clock is pinned to 10:00 that morning.
var monday = time.Date(2025, 1, 6, 0, 0, 0, 0, time.Local)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type memStore struct {
	nextID uint
	byID   map[uint]model.Reservation
}

func newMemStore() *memStore {
	return &memStore{byID: make(map[uint]model.Reservation)}
}

func (m *memStore) GetAll(context.Context) ([]model.Reservation, error) {
	all := make([]model.Reservation, 0, len(m.byID))
	for _, r := range m.byID {
		all = append(all, r)
	}
	return all, nil
}

func (m *memStore) GetByID(_ context.Context, id uint) (*model.Reservation, error) {
	r, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (m *memStore) GetBySlot(_ context.Context, slot time.Time) (*model.Reservation, error) {
	for _, r := range m.byID {
		if r.Date.Equal(slot) {
			r := r
			return &r, nil
		}
	}
	return nil, nil
}

func (m *memStore) ClosedHours(_ context.Context, day time.Time) ([]int, error) {
	hours := []int{}
	for _, r := range m.byID {
		if r.Date.Year() == day.Year() && r.Date.YearDay() == day.YearDay() && !r.IsOpen {
			hours = append(hours, r.Date.Hour())
		}
	}
	return hours, nil
}

func (m *memStore) Create(_ context.Context, r *model.Reservation) error {
	m.nextID++
	r.ID = m.nextID
	m.byID[r.ID] = *r
	return nil
}

func (m *memStore) Update(_ context.Context, r *model.Reservation) error {
	m.byID[r.ID] = *r
	return nil
}

func (m *memStore) seed(r model.Reservation) {
	m.nextID++
	r.ID = m.nextID
	m.byID[r.ID] = r
}

func setupApp(store service.Store) *fiber.App {
	app := fiber.New()
	handler.Setup(service.NewReservationService(store, fixedClock{now: slot(monday, 10)}))
	router.SetupRoutes(app)
	return app
}

func slot(day time.Time, hour int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}

func bodyOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func Test_GetAvailableTimes_Route(t *testing.T) {
	store := newMemStore()
	store.seed(model.Reservation{Email: "a.b@kiu.edu.ge", Date: slot(monday, 18), IsOpen: false})
	app := setupApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/times/2025-01-06", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[17,19,20,21]`, bodyOf(t, resp))
}

func Test_AddReservation_Route(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "wrong_email",
			body:       `{"email":"john.doe@gmail.com","date":"2025-01-06","hour":17,"isOpen":true}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Wrong Email"`,
		},
		{
			name:       "wrong_hour",
			body:       `{"email":"a.b@kiu.edu.ge","date":"2025-01-06","hour":9,"isOpen":true}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Wrong Hour"`,
		},
		{
			name:       "success",
			body:       `{"email":"a.b@kiu.edu.ge","date":"2025-01-06","hour":17,"isGuitarTaken":true,"isOpen":true}`,
			wantStatus: http.StatusOK,
			wantBody:   `"Success"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := setupApp(newMemStore())

			req := httptest.NewRequest(http.MethodPut, "/reservation", bytes.NewReader([]byte(tc.body)))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)

			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			assert.Equal(t, tc.wantBody, bodyOf(t, resp))
		})
	}
}

func Test_AddReservation_MalformedDate(t *testing.T) {
	app := setupApp(newMemStore())

	req := httptest.NewRequest(http.MethodPut, "/reservation",
		bytes.NewReader([]byte(`{"email":"a.b@kiu.edu.ge","date":"06.01.2025","hour":17}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func Test_AddReservation_MergesIntoOpenSlot(t *testing.T) {
	store := newMemStore()
	store.seed(model.Reservation{
		Email: "a.b@kiu.edu.ge", Date: slot(monday, 17), IsOpen: true,
		IsGuitarTaken: true,
	})
	app := setupApp(store)

	req := httptest.NewRequest(http.MethodPut, "/reservation",
		bytes.NewReader([]byte(`{"email":"c.d@kiu.edu.ge","date":"2025-01-06","hour":17,"isBassTaken":true,"isOpen":true}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `"Success"`, bodyOf(t, resp))

	merged, err := store.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, merged)
	assert.True(t, merged.IsGuitarTaken)
	assert.True(t, merged.IsBassTaken)
	assert.Equal(t, "a.b@kiu.edu.ge", merged.Email)
}

func Test_GetReservations_Route(t *testing.T) {
	store := newMemStore()
	store.seed(model.Reservation{Email: "a.b@kiu.edu.ge", Date: slot(monday, 17), IsOpen: true})
	app := setupApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reservation", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, bodyOf(t, resp), `"a.b@kiu.edu.ge"`)
}

func Test_GetReservationById_Route(t *testing.T) {
	store := newMemStore()
	store.seed(model.Reservation{Email: "a.b@kiu.edu.ge", Date: slot(monday, 17), IsOpen: true})
	app := setupApp(store)

	t.Run("found", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reservation/1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, bodyOf(t, resp), `"a.b@kiu.edu.ge"`)
	})

	t.Run("missing_id_answers_null", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reservation/999", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "null", bodyOf(t, resp))
	})

	t.Run("non_numeric_id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reservation/abc", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func Test_GetAvailableInstruments_Route(t *testing.T) {
	store := newMemStore()
	store.seed(model.Reservation{
		Email: "a.b@kiu.edu.ge", Date: slot(monday, 17), IsOpen: true,
		IsGuitarTaken: true,
	})
	app := setupApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/get_instruments/2025-01-06-17", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[false,true,true,true,true]`, bodyOf(t, resp))
}

func Test_GetDates_Route(t *testing.T) {
	app := setupApp(newMemStore())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/get_dates", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t,
		`["2025-01-06","2025-01-07","2025-01-08","2025-01-09","2025-01-10","2025-01-11","2025-01-12"]`,
		bodyOf(t, resp))
}
