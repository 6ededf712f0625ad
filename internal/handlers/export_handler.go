package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportTransactionsHandler writes the caller's ledger as an xlsx download.
// The same search/type/month query filters as the listing endpoint apply, so
// the export matches whatever view the user is looking at.
func ExportTransactionsHandler(c *gin.Context) {
	transactions, ok := fetchFilteredTransactions(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	sheetName := "Transactions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build Excel file"})
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Date", "Description", "Category", "Type", "Payment Method", "Amount"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, tx := range transactions {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), tx.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), tx.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), tx.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), tx.Type)
		if tx.PaymentMethod != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), *tx.PaymentMethod)
		}
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), tx.Amount)
	}

	fileName := fmt.Sprintf("transactions_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}
