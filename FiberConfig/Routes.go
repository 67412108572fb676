package FiberConfig

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"

	"Hearth/Controllers"
	"Hearth/Models"
	"Hearth/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	ownerController := Controllers.NewOwnerController(db)
	propertyController := Controllers.NewPropertyController(db)
	taskController := Controllers.NewTaskController(db)
	bookingController := Controllers.NewBookingController(db)
	calendarController := Controllers.NewCalendarController(db)
	reportController := Controllers.NewReportController(db)

	// API group
	api := app.Group("/api")

	// Calendar routes - the portfolio-wide and per-property views run
	// through the same engine, only the filter scope differs
	calendar := api.Group("/calendar", middleware.Verify(1))
	calendar.Get("/", calendarController.GetCalendar)
	calendar.Get("/list", calendarController.GetCalendarList)
	calendar.Post("/expand", calendarController.ToggleExpansion)

	// Owner routes
	owners := api.Group("/owners", middleware.Verify(2))
	owners.Get("/", ownerController.GetOwners)
	owners.Post("/", ownerController.CreateOwner)
	owners.Get("/:id", ownerController.GetOwner)
	owners.Put("/:id", ownerController.UpdateOwner)
	owners.Delete("/:id", ownerController.DeleteOwner)

	// Property routes
	properties := api.Group("/properties", middleware.Verify(1))
	properties.Get("/", propertyController.GetProperties)
	properties.Get("/:id", propertyController.GetProperty)
	properties.Get("/:id/calendar", calendarController.GetPropertyCalendar)
	properties.Post("/", middleware.Verify(2), propertyController.CreateProperty)
	properties.Put("/:id", middleware.Verify(2), propertyController.UpdateProperty)
	properties.Delete("/:id", middleware.Verify(2), propertyController.DeleteProperty)

	// Task routes
	tasks := api.Group("/tasks", middleware.Verify(1))
	tasks.Get("/", taskController.GetTasks)
	tasks.Get("/:id", taskController.GetTask)
	tasks.Post("/", middleware.Verify(2), taskController.CreateTask)
	tasks.Put("/:id", middleware.Verify(2), taskController.UpdateTask)
	tasks.Patch("/:id/paid", middleware.Verify(3), taskController.TogglePaid)
	tasks.Delete("/:id", middleware.Verify(2), taskController.DeleteTask)

	// Booking routes
	bookings := api.Group("/bookings", middleware.Verify(1))
	bookings.Get("/", bookingController.GetBookings)
	bookings.Get("/:id", bookingController.GetBooking)
	bookings.Post("/", middleware.Verify(2), bookingController.CreateBooking)
	bookings.Put("/:id", middleware.Verify(2), bookingController.UpdateBooking)
	bookings.Delete("/:id", middleware.Verify(2), bookingController.DeleteBooking)

	// Report routes
	reports := api.Group("/reports", middleware.Verify(3))
	reports.Get("/tasks/export", reportController.ExportTasks)
}

func FiberConfig() {
	fmt.Println("Server Up...")
	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           300,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	SetupRoutes(app, Models.DB)

	// Auth routes stay outside the verified groups
	app.Post("/api/Login", Controllers.Login)
	app.Get("/api/validate-token", Controllers.ValidateToken)
	app.Use("/api/User", Controllers.User)
	app.Use("/api/Logout", Controllers.Logout)
	app.Post("/api/RegisterUser", middleware.Verify(4), Controllers.RegisterUser)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	app.Listen(":" + port)
}
