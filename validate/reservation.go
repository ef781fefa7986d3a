package validate

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"rehearsal_booking/constants"
	"rehearsal_booking/model"
	"rehearsal_booking/utils"
)

// AddReservation parses and structurally checks a booking submission. The
// booking rules themselves (email pattern, hour legality, slot state) live in
// the service, which owns the rejection messages.
func AddReservation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AddReservationInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		date, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("submitInput", model.SubmitRequest{
			Email:             input.Email,
			Date:              date,
			Hour:              input.Hour,
			IsGuitarTaken:     input.IsGuitarTaken,
			IsBassTaken:       input.IsBassTaken,
			IsDrumsTaken:      input.IsDrumsTaken,
			IsPianoTaken:      input.IsPianoTaken,
			IsMicrophoneTaken: input.IsMicrophoneTaken,
			IsOpen:            input.IsOpen,
		})

		return c.Next()
	}
}
