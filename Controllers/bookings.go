package Controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Hearth/Models"
)

// BookingController handles booking CRUD
type BookingController struct {
	DB *gorm.DB
}

// NewBookingController creates a new BookingController
func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

// BookingRequest is the create/update payload
type BookingRequest struct {
	GuestName  string `json:"guest_name"`
	CheckIn    string `json:"check_in" validate:"required"`
	CheckOut   string `json:"check_out" validate:"required"`
	Source     string `json:"source" validate:"omitempty,oneof=platformA platformB manual other"`
	OwnerID    uint   `json:"owner_id" validate:"required"`
	PropertyID uint   `json:"property_id" validate:"required"`
	Notes      string `json:"notes"`
}

// validateDates parses both dates and rejects check-in after check-out.
// Bad intervals are refused here, at write time, so the calendar engine
// never sees one from our own store.
func (r *BookingRequest) validateDates() (string, bool) {
	checkIn, err := time.Parse("2006-01-02", r.CheckIn)
	if err != nil {
		return "check_in must be YYYY-MM-DD", false
	}
	checkOut, err := time.Parse("2006-01-02", r.CheckOut)
	if err != nil {
		return "check_out must be YYYY-MM-DD", false
	}
	if checkIn.After(checkOut) {
		return "check_in must not be after check_out", false
	}
	return "", true
}

// GetBookings retrieves bookings, optionally restricted to one property
// GET /api/bookings?property_id=3
func (c *BookingController) GetBookings(ctx *fiber.Ctx) error {
	query := c.DB.Order("check_in")
	if propertyID := ctx.Query("property_id"); propertyID != "" {
		query = query.Where("property_id = ?", propertyID)
	}

	var bookings []Models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve bookings"})
	}
	return ctx.JSON(bookings)
}

// GetBooking retrieves a single booking by ID
func (c *BookingController) GetBooking(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID"})
	}

	var booking Models.Booking
	if err := c.DB.First(&booking, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	return ctx.JSON(booking)
}

// CreateBooking creates a new booking
func (c *BookingController) CreateBooking(ctx *fiber.Ctx) error {
	var input BookingRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg, ok := input.validateDates(); !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	var property Models.Property
	if err := c.DB.First(&property, input.PropertyID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Property not found"})
	}

	source := input.Source
	if source == "" {
		source = Models.SourceOther
	}

	booking := Models.Booking{
		GuestName:  input.GuestName,
		CheckIn:    input.CheckIn,
		CheckOut:   input.CheckOut,
		Source:     source,
		OwnerID:    input.OwnerID,
		PropertyID: input.PropertyID,
		Notes:      input.Notes,
	}
	if err := c.DB.Create(&booking).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(booking)
}

// UpdateBooking updates an existing booking
func (c *BookingController) UpdateBooking(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID"})
	}

	var booking Models.Booking
	if err := c.DB.First(&booking, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	var input BookingRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg, ok := input.validateDates(); !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	booking.GuestName = input.GuestName
	booking.CheckIn = input.CheckIn
	booking.CheckOut = input.CheckOut
	if input.Source != "" {
		booking.Source = input.Source
	}
	booking.OwnerID = input.OwnerID
	booking.PropertyID = input.PropertyID
	booking.Notes = input.Notes
	if err := c.DB.Save(&booking).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking"})
	}
	return ctx.JSON(booking)
}

// DeleteBooking soft deletes a booking
func (c *BookingController) DeleteBooking(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID"})
	}

	var booking Models.Booking
	if err := c.DB.First(&booking, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	c.DB.Delete(&booking)
	return ctx.JSON(fiber.Map{"message": "Booking deleted successfully"})
}
