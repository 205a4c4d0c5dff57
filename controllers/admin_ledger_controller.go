package controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/Govind-619/EnrollPay/models"
	"github.com/Govind-619/EnrollPay/utils"
)

// GET /api/admin/enrollments
// Returns every ledger row as JSON, newest last (sheet order).
func (ac *AdminController) ListEnrollments(c *gin.Context) {
	utils.LogInfo("ListEnrollments called")

	rawRows, err := ac.Ledger.Rows(c.Request.Context())
	if err != nil {
		utils.LogError("Failed to read ledger: %v", err)
		utils.InternalServerError(c, "Failed to read ledger", nil)
		return
	}

	rows := make([]models.LedgerRow, 0, len(rawRows))
	for _, raw := range rawRows {
		rows = append(rows, models.LedgerRowFromValues(raw))
	}
	utils.LogInfo("Retrieved %d ledger rows", len(rows))

	utils.Success(c, "Enrollments retrieved successfully", gin.H{
		"enrollments": rows,
		"total":       len(rows),
	})
}

// enrollmentSummary aggregates the ledger for the export footers.
type enrollmentSummary struct {
	Total          int
	StatusCounts   map[string]int
	CapturedMinor  int64
	CapturedAmount string
}

func summarize(rows []models.LedgerRow) enrollmentSummary {
	summary := enrollmentSummary{StatusCounts: make(map[string]int)}
	for _, row := range rows {
		summary.Total++
		summary.StatusCounts[row.Status]++
		if row.Status == models.PaymentStatusCaptured {
			if minor, err := strconv.ParseInt(row.Amount, 10, 64); err == nil {
				summary.CapturedMinor += minor
			}
		}
	}
	summary.CapturedAmount = fmt.Sprintf("%.2f", float64(summary.CapturedMinor)/100)
	return summary
}

var exportHeaders = []string{
	"Timestamp", "Name", "Mobile", "Email", "City", "Experience",
	"Amount", "Currency", "Payment ID", "Order ID", "Status", "Status Timestamp",
}

// GET /api/admin/enrollments/export/excel
func (ac *AdminController) ExportEnrollmentsExcel(c *gin.Context) {
	utils.LogInfo("ExportEnrollmentsExcel called")

	rawRows, err := ac.Ledger.Rows(c.Request.Context())
	if err != nil {
		utils.LogError("Failed to read ledger: %v", err)
		utils.InternalServerError(c, "Failed to read ledger", nil)
		return
	}
	rows := make([]models.LedgerRow, 0, len(rawRows))
	for _, raw := range rawRows {
		rows = append(rows, models.LedgerRowFromValues(raw))
	}
	summary := summarize(rows)
	utils.LogDebug("Retrieved %d ledger rows for Excel export", len(rows))

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Enrollments")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", nil)
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString("ENROLLPAY - Enrollment Report")
	titleRow = sheet.AddRow()
	titleRow.AddCell().SetString("Generated: " + time.Now().Format("2006-01-02 15:04"))
	sheet.AddRow() // spacing

	headerRow := sheet.AddRow()
	for _, h := range exportHeaders {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, row := range rows {
		r := sheet.AddRow()
		for _, value := range []string{
			row.Timestamp, row.Name, row.Mobile, row.Email, row.City, row.Experience,
			row.Amount, row.Currency, row.PaymentID, row.OrderID, row.Status, row.StatusTimestamp,
		} {
			r.AddCell().SetString(value)
		}
	}

	sheet.AddRow() // spacing
	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	summaryData := [][]string{
		{"Total Rows", fmt.Sprintf("%d", summary.Total)},
		{"Captured Revenue", summary.CapturedAmount},
	}
	for status, count := range summary.StatusCounts {
		if status == "" {
			status = "(blank)"
		}
		summaryData = append(summaryData, []string{"Status " + status, fmt.Sprintf("%d", count)})
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=enrollments_%s.xlsx", time.Now().Format("20060102")))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", nil)
		return
	}
	utils.LogInfo("Successfully generated Excel export with %d rows", len(rows))
}

// GET /api/admin/enrollments/export/pdf
func (ac *AdminController) ExportEnrollmentsPDF(c *gin.Context) {
	utils.LogInfo("ExportEnrollmentsPDF called")

	rawRows, err := ac.Ledger.Rows(c.Request.Context())
	if err != nil {
		utils.LogError("Failed to read ledger: %v", err)
		utils.InternalServerError(c, "Failed to read ledger", nil)
		return
	}
	rows := make([]models.LedgerRow, 0, len(rawRows))
	for _, raw := range rawRows {
		rows = append(rows, models.LedgerRowFromValues(raw))
	}
	summary := summarize(rows)
	utils.LogDebug("Retrieved %d ledger rows for PDF export", len(rows))

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "ENROLLPAY - Enrollment Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(12)

	widths := []float64{28, 28, 22, 42, 20, 20, 18, 16, 30, 30, 18, 28}
	headers := []string{"Timestamp", "Name", "Mobile", "Email", "City", "Exp", "Amount", "Cur", "Payment ID", "Order ID", "Status", "Status TS"}

	pdf.SetFont("Arial", "B", 8)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 7)
	for _, row := range rows {
		values := []string{
			row.Timestamp, row.Name, row.Mobile, row.Email, row.City, row.Experience,
			row.Amount, row.Currency, row.PaymentID, row.OrderID, row.Status, row.StatusTimestamp,
		}
		for i, value := range values {
			pdf.CellFormat(widths[i], 6, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Total Rows: %d", summary.Total))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Captured Revenue: "+summary.CapturedAmount)
	pdf.Ln(6)
	for status, count := range summary.StatusCounts {
		if status == "" {
			status = "(blank)"
		}
		pdf.Cell(0, 6, fmt.Sprintf("Status %s: %d", status, count))
		pdf.Ln(6)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=enrollments_%s.pdf", time.Now().Format("20060102")))
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF file: %v", err)
		utils.InternalServerError(c, "Failed to write PDF file", nil)
		return
	}
	utils.LogInfo("Successfully generated PDF export with %d rows", len(rows))
}
