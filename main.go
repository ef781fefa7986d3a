package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"rehearsal_booking/database"
	"rehearsal_booking/handler"
	"rehearsal_booking/router"
	"rehearsal_booking/service"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,PUT,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	database.ConnectDB()

	svc := service.NewReservationService(database.NewReservationStore(database.DB), service.RealClock{})
	handler.Setup(svc)

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":8002"))
}
