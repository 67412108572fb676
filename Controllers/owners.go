package Controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Hearth/Models"
)

// OwnerController handles owner-related API endpoints
type OwnerController struct {
	DB *gorm.DB
}

// NewOwnerController creates a new OwnerController
func NewOwnerController(db *gorm.DB) *OwnerController {
	return &OwnerController{DB: db}
}

// GetOwners retrieves all owners
func (c *OwnerController) GetOwners(ctx *fiber.Ctx) error {
	var owners []Models.Owner
	if err := c.DB.Find(&owners).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve owners"})
	}
	return ctx.JSON(owners)
}

// GetOwner retrieves a single owner with their properties
func (c *OwnerController) GetOwner(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid owner ID"})
	}

	var owner Models.Owner
	if err := c.DB.Preload("Properties").First(&owner, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Owner not found"})
	}
	return ctx.JSON(owner)
}

// CreateOwner creates a new owner
func (c *OwnerController) CreateOwner(ctx *fiber.Ctx) error {
	var input Models.Owner
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.Name == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	owner := Models.Owner{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
		Notes: input.Notes,
	}
	if err := c.DB.Create(&owner).Error; err != nil {
		if strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "UNIQUE constraint") {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "An owner with this name already exists",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create owner"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(owner)
}

// UpdateOwner updates an existing owner
func (c *OwnerController) UpdateOwner(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid owner ID"})
	}

	var owner Models.Owner
	if err := c.DB.First(&owner, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Owner not found"})
	}

	var input Models.Owner
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	c.DB.Model(&owner).Updates(Models.Owner{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
		Notes: input.Notes,
	})
	return ctx.JSON(owner)
}

// DeleteOwner soft deletes an owner
func (c *OwnerController) DeleteOwner(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid owner ID"})
	}

	var owner Models.Owner
	if err := c.DB.First(&owner, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Owner not found"})
	}

	var propertyCount int64
	c.DB.Model(&Models.Property{}).Where("owner_id = ?", id).Count(&propertyCount)
	if propertyCount > 0 {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Owner still has properties; delete or reassign them first",
		})
	}

	c.DB.Delete(&owner)
	return ctx.JSON(fiber.Map{"message": "Owner deleted successfully"})
}
