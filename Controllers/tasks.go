package Controllers

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Hearth/Models"
)

var validate = validator.New()

// TaskController handles maintenance task CRUD
type TaskController struct {
	DB *gorm.DB
}

// NewTaskController creates a new TaskController
func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{DB: db}
}

// TaskRequest is the create/update payload
type TaskRequest struct {
	Title      string  `json:"title" validate:"required"`
	Date       string  `json:"date" validate:"required"`
	Amount     float64 `json:"amount" validate:"gte=0"`
	Paid       bool    `json:"paid"`
	OwnerID    uint    `json:"owner_id" validate:"required"`
	PropertyID uint    `json:"property_id" validate:"required"`
	Notes      string  `json:"notes"`
}

func (r *TaskRequest) validateDates() error {
	_, err := time.Parse("2006-01-02", r.Date)
	return err
}

// GetTasks retrieves tasks, optionally restricted to one property
// GET /api/tasks?property_id=3
func (c *TaskController) GetTasks(ctx *fiber.Ctx) error {
	query := c.DB.Order("date")
	if propertyID := ctx.Query("property_id"); propertyID != "" {
		query = query.Where("property_id = ?", propertyID)
	}

	var tasks []Models.MaintenanceTask
	if err := query.Find(&tasks).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve tasks"})
	}
	return ctx.JSON(tasks)
}

// GetTask retrieves a single task by ID
func (c *TaskController) GetTask(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var task Models.MaintenanceTask
	if err := c.DB.First(&task, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}
	return ctx.JSON(task)
}

// CreateTask creates a new maintenance task
func (c *TaskController) CreateTask(ctx *fiber.Ctx) error {
	var input TaskRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := input.validateDates(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
	}

	var property Models.Property
	if err := c.DB.First(&property, input.PropertyID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Property not found"})
	}

	task := Models.MaintenanceTask{
		Title:      input.Title,
		Date:       input.Date,
		Amount:     input.Amount,
		Paid:       input.Paid,
		OwnerID:    input.OwnerID,
		PropertyID: input.PropertyID,
		Notes:      input.Notes,
	}
	if err := c.DB.Create(&task).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create task"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(task)
}

// UpdateTask updates an existing task
func (c *TaskController) UpdateTask(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var task Models.MaintenanceTask
	if err := c.DB.First(&task, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	var input TaskRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := input.validateDates(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
	}

	task.Title = input.Title
	task.Date = input.Date
	task.Amount = input.Amount
	task.Paid = input.Paid
	task.OwnerID = input.OwnerID
	task.PropertyID = input.PropertyID
	task.Notes = input.Notes
	if err := c.DB.Save(&task).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update task"})
	}
	return ctx.JSON(task)
}

// TogglePaid flips the paid flag without touching the rest of the record
// PATCH /api/tasks/:id/paid
func (c *TaskController) TogglePaid(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var task Models.MaintenanceTask
	if err := c.DB.First(&task, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	task.Paid = !task.Paid
	if err := c.DB.Save(&task).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update task"})
	}
	return ctx.JSON(task)
}

// DeleteTask soft deletes a task
func (c *TaskController) DeleteTask(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var task Models.MaintenanceTask
	if err := c.DB.First(&task, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	c.DB.Delete(&task)
	return ctx.JSON(fiber.Map{"message": "Task deleted successfully"})
}
