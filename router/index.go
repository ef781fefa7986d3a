package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"rehearsal_booking/handler"
	"rehearsal_booking/validate"
)

func SetupRoutes(app *fiber.App) {
	reservation := app.Group("/reservation", logger.New())
	reservation.Get("/", handler.GetReservations)
	reservation.Get("/:reservationId", validate.GetById("reservationId"), handler.GetReservationById)
	reservation.Put("/", validate.AddReservation(), handler.AddReservation)

	app.Get("/times/:year-:month-:day", logger.New(), handler.GetAvailableTimes)
	app.Get("/get_dates", logger.New(), handler.GetDates)
	app.Get("/get_instruments/:year-:month-:day-:hour", logger.New(), handler.GetAvailableInstruments)
}
