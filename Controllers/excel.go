package Controllers

import (
	"fmt"
	"log"
	"net/http"

	"RehabCenter/Billing"
	"RehabCenter/Models"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/gin-gonic/gin"
)

// ExportInvoicesTable writes the invoices in the given issue-date range to an
// xlsx sheet, one row per invoice with its computed balance.
func ExportInvoicesTable(c *gin.Context) {
	var input struct {
		DateFrom string `json:"date_from"`
		DateTo   string `json:"date_to"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	db := getDB(c)
	query := db.Model(&Models.Invoice{}).
		Preload("Payments").Preload("Session.Patient").Preload("Session.Procedure")
	if input.DateFrom != "" && input.DateTo != "" {
		query = query.Where("issue_date BETWEEN ? AND ?", input.DateFrom, input.DateTo)
	}

	var invoices []Models.Invoice
	if err := query.Order("issue_date").Find(&invoices).Error; err != nil {
		respondError(c, err)
		return
	}

	headers := map[string]string{
		"A1": "Issue Date",
		"B1": "Patient",
		"C1": "Procedure",
		"D1": "Amount",
		"E1": "Total Paid",
		"F1": "Remaining",
		"G1": "Paid",
	}
	file := excelize.NewFile()
	sheet := "Invoices"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i, invoice := range invoices {
		appendRowInvoice(sheet, file, i, invoice)
	}

	filename := "./Invoices.xlsx"
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to write report"})
		return
	}
	c.FileAttachment(filename, "Invoices.xlsx")
}

func appendRowInvoice(sheet string, file *excelize.File, index int, invoice Models.Invoice) {
	row := index + 2
	balance := Billing.GetBalance(&invoice)

	patientName := ""
	procedureTitle := ""
	if invoice.Session != nil {
		if invoice.Session.Patient != nil {
			patientName = invoice.Session.Patient.Name
		}
		if invoice.Session.Procedure != nil {
			procedureTitle = invoice.Session.Procedure.Title
		}
	}

	file.SetCellValue(sheet, fmt.Sprintf("A%v", row), invoice.IssueDate)
	file.SetCellValue(sheet, fmt.Sprintf("B%v", row), patientName)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", row), procedureTitle)
	file.SetCellValue(sheet, fmt.Sprintf("D%v", row), invoice.Amount.StringFixed(2))
	file.SetCellValue(sheet, fmt.Sprintf("E%v", row), balance.TotalPaid.StringFixed(2))
	file.SetCellValue(sheet, fmt.Sprintf("F%v", row), balance.Remaining.StringFixed(2))
	file.SetCellValue(sheet, fmt.Sprintf("G%v", row), balance.IsPaid)
}
