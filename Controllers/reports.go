package Controllers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"Hearth/Models"
)

// ReportController builds downloadable spreadsheets from the ledger data
type ReportController struct {
	DB *gorm.DB
}

// NewReportController creates a new ReportController
func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// ExportTasks streams an xlsx of one month's maintenance tasks.
// GET /api/reports/tasks/export?month=2024-06
func (c *ReportController) ExportTasks(ctx *fiber.Ctx) error {
	month := ctx.Query("month", time.Now().Format("2006-01"))
	if _, err := time.Parse("2006-01", month); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month must be YYYY-MM"})
	}

	var tasks []Models.MaintenanceTask
	if err := c.DB.Where("date LIKE ?", month+"%").Order("date").Find(&tasks).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve tasks"})
	}

	propertyNames := c.propertyNameIndex()
	ownerNames := c.ownerNameIndex()

	buf, err := tasksToExcel(tasks, propertyNames, ownerNames, month)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="tasks-%s.xlsx"`, month))
	return ctx.Send(buf.Bytes())
}

func (c *ReportController) propertyNameIndex() map[uint]string {
	var properties []Models.Property
	c.DB.Find(&properties)
	index := make(map[uint]string, len(properties))
	for _, p := range properties {
		index[p.ID] = p.Name
	}
	return index
}

func (c *ReportController) ownerNameIndex() map[uint]string {
	var owners []Models.Owner
	c.DB.Find(&owners)
	index := make(map[uint]string, len(owners))
	for _, o := range owners {
		index[o.ID] = o.Name
	}
	return index
}

func tasksToExcel(tasks []Models.MaintenanceTask, propertyNames, ownerNames map[uint]string, month string) (*bytes.Buffer, error) {
	f := excelize.NewFile()

	sheetName := "Tasks"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"ID", "Date", "Title", "Property", "Owner", "Amount", "Paid", "Notes"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err == nil {
		f.SetRowStyle(sheetName, 1, 1, headerStyle)
	}

	total := 0.0
	for rowIndex, task := range tasks {
		row := rowIndex + 2
		paid := "No"
		if task.Paid {
			paid = "Yes"
		}

		values := []interface{}{
			task.ID,
			task.Date,
			task.Title,
			propertyNames[task.PropertyID],
			ownerNames[task.OwnerID],
			task.Amount,
			paid,
			task.Notes,
		}
		for colIndex, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, row)
			f.SetCellValue(sheetName, cell, value)
		}
		total += task.Amount
	}

	// Total row under the data
	totalRow := len(tasks) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", totalRow), "Total "+month)
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", totalRow), total)

	for i := 0; i < len(headers); i++ {
		f.SetColWidth(sheetName, string('A'+rune(i)), string('A'+rune(i)), 15)
	}

	if f.GetSheetName(0) != sheetName {
		f.DeleteSheet("Sheet1")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing Excel file to buffer: %v", err)
	}
	return &buf, nil
}
