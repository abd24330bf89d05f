package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/jvill171/express-biztime/internal/models"
	"github.com/jvill171/express-biztime/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler serves invoice dumps for spreadsheet use.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

var exportHeaders = []string{"id", "comp_code", "amt", "paid", "add_date", "paid_date"}

func exportRow(inv *models.Invoice) []string {
	paidDate := ""
	if inv.PaidDate != nil {
		paidDate = inv.PaidDate.Format("2006-01-02")
	}
	return []string{
		strconv.FormatUint(uint64(inv.ID), 10),
		inv.CompCode,
		strconv.FormatFloat(inv.Amt, 'f', 2, 64),
		strconv.FormatBool(inv.Paid),
		inv.AddDate.Format("2006-01-02"),
		paidDate,
	}
}

func (h *ExportHandler) loadInvoices() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := h.DB.Order("id ASC").Find(&invoices).Error
	return invoices, err
}

// ExportInvoicesCSV writes every invoice as a CSV attachment.
func (h *ExportHandler) ExportInvoicesCSV(c *gin.Context) {
	invoices, err := h.loadInvoices()
	if err != nil {
		util.Fail(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"invoices_%s.csv\"",
		time.Now().Format("20060102")))
	c.Status(http.StatusOK)

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for i := range invoices {
		writer.Write(exportRow(&invoices[i]))
	}
}

// ExportInvoicesXLSX writes every invoice as an XLSX attachment.
func (h *ExportHandler) ExportInvoicesXLSX(c *gin.Context) {
	invoices, err := h.loadInvoices()
	if err != nil {
		util.Fail(c, err)
		return
	}

	f := excelize.NewFile()
	sheetName := "Invoices"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Fail(c, err)
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}
	for idx := range invoices {
		row := idx + 2
		for col, value := range exportRow(&invoices[idx]) {
			cell := fmt.Sprintf("%c%d", 'A'+col, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 16)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 8)
	f.SetColWidth(sheetName, "E", "F", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"invoices_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Fail(c, err)
	}
}
