package handlers

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"estate-crm/internal/repository"
)

// ReportHandler отдает месячный отчет табличным вложением:
// CSV по умолчанию, ?format=xlsx - книга Excel.
type ReportHandler struct {
	engine *repository.ReportEngine
}

func NewReportHandler(engine *repository.ReportEngine) *ReportHandler {
	return &ReportHandler{engine: engine}
}

var reportHeaders = []string{
	"Property",
	"Income",
	"Expenses",
	"AgencyCommission",
	"FinalAmountPayable",
	"NoOfTransactions",
	"NoOfCreditTransactions",
	"NoOfDebitTransactions",
}

// MonthlyReport строит сводку за текущий календарный месяц. Любая ошибка
// хранилища отменяет отчет целиком - частичный отчет не отдается никогда.
func (h *ReportHandler) MonthlyReport(c *gin.Context) {
	rows, err := h.engine.MonthlyReport(time.Now())
	if err != nil {
		slog.Error("Не удалось построить месячный отчет", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error!"})
		return
	}

	if c.Query("format") == "xlsx" {
		h.writeXLSX(c, rows)
		return
	}
	h.writeCSV(c, rows)
}

func (h *ReportHandler) writeCSV(c *gin.Context, rows []*repository.ReportRow) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=monthly-report.csv")

	writer := csv.NewWriter(c.Writer)
	if err := writer.Write(reportHeaders); err != nil {
		slog.Error("Ошибка записи CSV", "error", err)
		return
	}
	for _, row := range rows {
		record := []string{
			row.PropertyName,
			formatAmount(row.Income),
			formatAmount(row.Expenses),
			formatAmount(row.AgencyCommission),
			formatAmount(row.FinalAmount),
			strconv.Itoa(len(row.Transactions)),
			strconv.Itoa(row.CreditCount()),
			strconv.Itoa(row.DebitCount()),
		}
		if err := writer.Write(record); err != nil {
			slog.Error("Ошибка записи CSV", "error", err)
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		// Заголовки уже ушли клиенту, статус менять поздно.
		slog.Error("Ошибка записи CSV", "error", err)
	}
}

func (h *ReportHandler) writeXLSX(c *gin.Context, rows []*repository.ReportRow) {
	f := excelize.NewFile()
	sheetName := "Monthly Report"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		slog.Error("Не удалось создать лист отчета", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error!"})
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, row := range rows {
		line := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", line), row.PropertyName)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", line), row.Income)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", line), row.Expenses)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", line), row.AgencyCommission)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", line), row.FinalAmount)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", line), len(row.Transactions))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", line), row.CreditCount())
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", line), row.DebitCount())
	}

	fileName := fmt.Sprintf("monthly-report_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		slog.Error("Ошибка записи книги Excel", "error", err)
	}
}

// formatAmount печатает сумму без хвостовых нулей, как это делал бы JSON.
func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
