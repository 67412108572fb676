package Controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Hearth/Calendar"
	"Hearth/Models"
)

// CalendarController serves the portfolio-wide and per-property calendar
// views. Both run through the same engine; only the filter scope differs.
type CalendarController struct {
	DB *gorm.DB

	// Expansion state is per user session and rendered grid, kept in
	// memory only. Losing it on restart just collapses every day.
	mu        sync.Mutex
	expansion map[string]*Calendar.ExpansionState
}

// NewCalendarController creates a new CalendarController
func NewCalendarController(db *gorm.DB) *CalendarController {
	return &CalendarController{
		DB:        db,
		expansion: make(map[string]*Calendar.ExpansionState),
	}
}

// CalendarResponse is the JSON shape for grid views
type CalendarResponse struct {
	View          Calendar.ViewKind      `json:"view"`
	ReferenceDate string                 `json:"reference_date"`
	Days          []Calendar.CalendarDay `json:"days"`
	PreviewLimit  int                    `json:"preview_limit"`
	ExpandedDay   string                 `json:"expanded_day,omitempty"`
	TotalAmount   float64                `json:"total_amount"`
}

// GetCalendar returns the bucketed month or week grid for the whole
// portfolio, restricted by the optional owner_ids/property_ids filters.
// GET /api/calendar?view=month&date=2024-06-15&owner_ids=1,2&property_ids=3
func (c *CalendarController) GetCalendar(ctx *fiber.Ctx) error {
	selection := Calendar.FilterSelection{
		OwnerIDs:    splitIDs(ctx.Query("owner_ids")),
		PropertyIDs: splitIDs(ctx.Query("property_ids")),
	}
	return c.renderCalendar(ctx, selection)
}

// GetPropertyCalendar returns the same grid pre-filtered to one property.
// GET /api/properties/:id/calendar?view=month&date=2024-06-15
func (c *CalendarController) GetPropertyCalendar(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid property ID"})
	}

	var property Models.Property
	if err := c.DB.First(&property, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Property not found"})
	}

	selection := Calendar.FilterSelection{PropertyIDs: []string{strconv.Itoa(id)}}
	return c.renderCalendar(ctx, selection)
}

func (c *CalendarController) renderCalendar(ctx *fiber.Ctx, selection Calendar.FilterSelection) error {
	view, reference, err := parseViewParams(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	now := time.Now()
	cells := Calendar.GenerateGrid(reference, view, now)

	tasks, bookings, err := c.loadWindow(cells[0].Date, cells[len(cells)-1].Date)
	if err != nil {
		return normalizationError(ctx, err)
	}

	tasks, bookings = Calendar.ApplyFilter(tasks, bookings, selection)
	days := Calendar.Bucket(cells, tasks, bookings)

	total := 0.0
	for _, d := range days {
		total += d.TotalAmount
	}

	expanded := ""
	if state := c.stateFor(ctx); state != nil {
		expanded, _ = state.Expanded()
	}

	return ctx.JSON(CalendarResponse{
		View:          view,
		ReferenceDate: Calendar.DayKey(reference),
		Days:          days,
		PreviewLimit:  Calendar.PreviewLimit(view),
		ExpandedDay:   expanded,
		TotalAmount:   total,
	})
}

// GetCalendarList returns the flat list-view projection instead of a grid.
// GET /api/calendar/list?owner_ids=1&property_ids=2
func (c *CalendarController) GetCalendarList(ctx *fiber.Ctx) error {
	tasks, bookings, err := c.loadAll()
	if err != nil {
		return normalizationError(ctx, err)
	}

	selection := Calendar.FilterSelection{
		OwnerIDs:    splitIDs(ctx.Query("owner_ids")),
		PropertyIDs: splitIDs(ctx.Query("property_ids")),
	}
	tasks, bookings = Calendar.ApplyFilter(tasks, bookings, selection)

	return ctx.JSON(Calendar.Project(tasks, bookings))
}

// ToggleExpansion flips the expanded day for the calling user's grid.
// POST /api/calendar/expand  {"day_key": "2024-06-10"}
func (c *CalendarController) ToggleExpansion(ctx *fiber.Ctx) error {
	var input struct {
		DayKey string `json:"day_key"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if _, err := time.Parse("2006-01-02", input.DayKey); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "day_key must be YYYY-MM-DD"})
	}

	state := c.stateFor(ctx)
	if state == nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not logged in"})
	}
	state.Toggle(input.DayKey)

	expanded, ok := state.Expanded()
	return ctx.JSON(fiber.Map{
		"expanded_day": expanded,
		"expanded":     ok,
	})
}

// stateFor returns the per-user expansion state, creating it on first use
func (c *CalendarController) stateFor(ctx *fiber.Ctx) *Calendar.ExpansionState {
	user, ok := ctx.Locals("user").(Models.User)
	if !ok {
		return nil
	}
	key := strconv.FormatUint(uint64(user.Id), 10)

	c.mu.Lock()
	defer c.mu.Unlock()
	state, exists := c.expansion[key]
	if !exists {
		state = &Calendar.ExpansionState{}
		c.expansion[key] = state
	}
	return state
}

// loadWindow fetches and normalizes every task and booking touching the
// [from, to] day window. Date columns are ISO strings, so BETWEEN works
// lexicographically.
func (c *CalendarController) loadWindow(from, to time.Time) ([]Calendar.ScheduledTask, []Calendar.BookingInterval, error) {
	fromKey := Calendar.DayKey(from)
	toKey := Calendar.DayKey(to)

	var taskRows []Models.MaintenanceTask
	if err := c.DB.Where("date BETWEEN ? AND ?", fromKey, toKey).Find(&taskRows).Error; err != nil {
		return nil, nil, fmt.Errorf("loading tasks: %w", err)
	}

	var bookingRows []Models.Booking
	if err := c.DB.Where("check_in <= ? AND check_out >= ?", toKey, fromKey).Find(&bookingRows).Error; err != nil {
		return nil, nil, fmt.Errorf("loading bookings: %w", err)
	}

	return normalizeRows(taskRows, bookingRows)
}

func (c *CalendarController) loadAll() ([]Calendar.ScheduledTask, []Calendar.BookingInterval, error) {
	var taskRows []Models.MaintenanceTask
	if err := c.DB.Find(&taskRows).Error; err != nil {
		return nil, nil, fmt.Errorf("loading tasks: %w", err)
	}

	var bookingRows []Models.Booking
	if err := c.DB.Find(&bookingRows).Error; err != nil {
		return nil, nil, fmt.Errorf("loading bookings: %w", err)
	}

	return normalizeRows(taskRows, bookingRows)
}

func normalizeRows(taskRows []Models.MaintenanceTask, bookingRows []Models.Booking) ([]Calendar.ScheduledTask, []Calendar.BookingInterval, error) {
	rawTasks := make([]Calendar.RawTask, 0, len(taskRows))
	for _, row := range taskRows {
		rawTasks = append(rawTasks, Calendar.RawTask{
			ID:         strconv.FormatUint(uint64(row.ID), 10),
			Date:       row.Date,
			Amount:     row.Amount,
			OwnerID:    strconv.FormatUint(uint64(row.OwnerID), 10),
			PropertyID: strconv.FormatUint(uint64(row.PropertyID), 10),
			Paid:       row.Paid,
		})
	}

	rawBookings := make([]Calendar.RawBooking, 0, len(bookingRows))
	for _, row := range bookingRows {
		rawBookings = append(rawBookings, Calendar.RawBooking{
			ID:         strconv.FormatUint(uint64(row.ID), 10),
			StartDate:  row.CheckIn,
			EndDate:    row.CheckOut,
			Source:     row.Source,
			OwnerID:    strconv.FormatUint(uint64(row.OwnerID), 10),
			PropertyID: strconv.FormatUint(uint64(row.PropertyID), 10),
		})
	}

	tasks, err := Calendar.NormalizeTasks(rawTasks)
	if err != nil {
		return nil, nil, err
	}
	bookings, err := Calendar.NormalizeBookings(rawBookings)
	if err != nil {
		return nil, nil, err
	}
	return tasks, bookings, nil
}

// normalizationError maps engine errors onto HTTP statuses. Bad stored
// records are the caller's data problem (422), everything else is a 500.
func normalizationError(ctx *fiber.Ctx, err error) error {
	var malformed *Calendar.MalformedDateError
	if errors.As(err, &malformed) {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":     "Malformed date on stored record",
			"record_id": malformed.RecordID,
			"field":     malformed.Field,
			"value":     malformed.Value,
		})
	}
	var invalid *Calendar.InvalidIntervalError
	if errors.As(err, &invalid) {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":     "Booking interval has start after end",
			"record_id": invalid.RecordID,
		})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load calendar data"})
}

func parseViewParams(ctx *fiber.Ctx) (Calendar.ViewKind, time.Time, error) {
	view := Calendar.ViewKind(ctx.Query("view", string(Calendar.ViewMonth)))
	if view != Calendar.ViewMonth && view != Calendar.ViewWeek {
		return "", time.Time{}, fmt.Errorf("view must be %q or %q", Calendar.ViewMonth, Calendar.ViewWeek)
	}

	reference := time.Now()
	if raw := ctx.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return "", time.Time{}, fmt.Errorf("date must be YYYY-MM-DD")
		}
		reference = parsed
	}
	return view, reference, nil
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
