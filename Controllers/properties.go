package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Hearth/Models"
)

// PropertyController handles property-related API endpoints
type PropertyController struct {
	DB *gorm.DB
}

// NewPropertyController creates a new PropertyController
func NewPropertyController(db *gorm.DB) *PropertyController {
	return &PropertyController{DB: db}
}

// PropertyRequest is the create/update payload
type PropertyRequest struct {
	Name         string  `json:"name" validate:"required"`
	OwnerID      uint    `json:"owner_id" validate:"required"`
	Address      string  `json:"address"`
	RentalType   string  `json:"rental_type" validate:"omitempty,oneof=short_term long_term"`
	NightlyRate  float64 `json:"nightly_rate" validate:"gte=0"`
	Bedrooms     int     `json:"bedrooms" validate:"gte=0"`
	MaxOccupancy int     `json:"max_occupancy" validate:"gte=0"`
}

// GetProperties retrieves all properties, optionally for one owner
// GET /api/properties?owner_id=2
func (c *PropertyController) GetProperties(ctx *fiber.Ctx) error {
	query := c.DB.Order("name")
	if ownerID := ctx.Query("owner_id"); ownerID != "" {
		query = query.Where("owner_id = ?", ownerID)
	}

	var properties []Models.Property
	if err := query.Find(&properties).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve properties"})
	}
	return ctx.JSON(properties)
}

// GetProperty retrieves a single property by ID
func (c *PropertyController) GetProperty(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid property ID"})
	}

	var property Models.Property
	if err := c.DB.First(&property, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Property not found"})
	}
	return ctx.JSON(property)
}

// CreateProperty creates a new property
func (c *PropertyController) CreateProperty(ctx *fiber.Ctx) error {
	var input PropertyRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var owner Models.Owner
	if err := c.DB.First(&owner, input.OwnerID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Owner not found"})
	}

	property := Models.Property{
		Name:         input.Name,
		OwnerID:      input.OwnerID,
		Address:      input.Address,
		RentalType:   input.RentalType,
		NightlyRate:  input.NightlyRate,
		Bedrooms:     input.Bedrooms,
		MaxOccupancy: input.MaxOccupancy,
	}
	if err := c.DB.Create(&property).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create property"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(property)
}

// UpdateProperty updates an existing property
func (c *PropertyController) UpdateProperty(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid property ID"})
	}

	var property Models.Property
	if err := c.DB.First(&property, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Property not found"})
	}

	var input PropertyRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	property.Name = input.Name
	property.OwnerID = input.OwnerID
	property.Address = input.Address
	property.RentalType = input.RentalType
	property.NightlyRate = input.NightlyRate
	property.Bedrooms = input.Bedrooms
	property.MaxOccupancy = input.MaxOccupancy
	if err := c.DB.Save(&property).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update property"})
	}
	return ctx.JSON(property)
}

// DeleteProperty soft deletes a property and refuses while bookings or
// tasks still reference it
func (c *PropertyController) DeleteProperty(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid property ID"})
	}

	var property Models.Property
	if err := c.DB.First(&property, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Property not found"})
	}

	var refs int64
	c.DB.Model(&Models.Booking{}).Where("property_id = ?", id).Count(&refs)
	if refs == 0 {
		c.DB.Model(&Models.MaintenanceTask{}).Where("property_id = ?", id).Count(&refs)
	}
	if refs > 0 {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Property still has bookings or tasks; delete them first",
		})
	}

	c.DB.Delete(&property)
	return ctx.JSON(fiber.Map{"message": "Property deleted successfully"})
}
