package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"rehearsal_booking/constants"
	"rehearsal_booking/model"
	"rehearsal_booking/service"
	"rehearsal_booking/utils"
)

var reservations *service.ReservationService

// Setup wires the reservation service the handlers run against.
func Setup(svc *service.ReservationService) {
	reservations = svc
}

func GetReservations(c *fiber.Ctx) error {
	rows, err := reservations.GetAll(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// GetReservationById answers 200 with the record, or 200 with null when no
// record has that id.
func GetReservationById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	reservation, err := reservations.GetByID(c.Context(), uint(id))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}
	return c.Status(fiber.StatusOK).JSON(reservation)
}

func AddReservation(c *fiber.Ctx) error {
	input := c.Locals("submitInput").(model.SubmitRequest)

	_, err := reservations.Submit(c.Context(), input)
	if err != nil {
		if model.IsRejection(err) {
			return c.Status(fiber.StatusBadRequest).JSON(err.Error())
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}
	return c.Status(fiber.StatusOK).JSON(constants.MSG_SUCCESS)
}

func GetAvailableTimes(c *fiber.Ctx) error {
	date, err := dateFromParams(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	hours, err := reservations.AvailableHours(c.Context(), date)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}
	return c.Status(fiber.StatusOK).JSON(hours)
}

func GetDates(c *fiber.Ctx) error {
	dates, err := reservations.NextAvailableDates(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	formatted := make([]string, 0, len(dates))
	for _, d := range dates {
		formatted = append(formatted, d.Format("2006-01-02"))
	}
	return c.Status(fiber.StatusOK).JSON(formatted)
}

func GetAvailableInstruments(c *fiber.Ctx) error {
	date, err := dateFromParams(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	hour, err := strconv.Atoi(c.Params("hour"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	instruments, err := reservations.AvailableInstruments(c.Context(), date, hour)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}
	return c.Status(fiber.StatusOK).JSON(instruments)
}

func dateFromParams(c *fiber.Ctx) (time.Time, error) {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return time.Time{}, err
	}
	month, err := strconv.Atoi(c.Params("month"))
	if err != nil {
		return time.Time{}, err
	}
	day, err := strconv.Atoi(c.Params("day"))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}
