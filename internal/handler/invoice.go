package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/jvill171/express-biztime/internal/models"
	"github.com/jvill171/express-biztime/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InvoiceHandler serves the /invoices routes.
type InvoiceHandler struct {
	DB *gorm.DB
}

func NewInvoiceHandler(db *gorm.DB) *InvoiceHandler {
	return &InvoiceHandler{DB: db}
}

// ---------- request/response shapes ----------

type createInvoiceReq struct {
	CompCode string   `json:"comp_code"`
	Amt      *float64 `json:"amt"`
}

type updateInvoiceReq struct {
	Amt  *float64 `json:"amt"`
	Paid *bool    `json:"paid"`
}

type invoiceListItem struct {
	ID       uint   `json:"id"`
	CompCode string `json:"comp_code"`
}

// invoiceDetail embeds the company looked up by comp_code; the scalar
// comp_code field itself is dropped from the detail response.
type invoiceDetail struct {
	ID       uint           `json:"id"`
	Amt      float64        `json:"amt"`
	Paid     bool           `json:"paid"`
	AddDate  time.Time      `json:"add_date"`
	PaidDate *time.Time     `json:"paid_date"`
	Company  models.Company `json:"company"`
}

// parseInvoiceID reads the :id route param. A non-numeric id cannot match
// any invoice, so it reports NotFound rather than a validation error.
func parseInvoiceID(c *gin.Context) (uint, *util.APIError) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id < 0 {
		return 0, util.NotFound("Invoice not found: %s", idStr)
	}
	return uint(id), nil
}

// ListInvoices returns every invoice's (id, comp_code), ordered by id.
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices := make([]invoiceListItem, 0)
	if err := h.DB.Model(&models.Invoice{}).
		Select("id", "comp_code").
		Order("id ASC").
		Scan(&invoices).Error; err != nil {
		util.Fail(c, err)
		return
	}

	util.OK(c, util.Response{"invoices": invoices})
}

// GetInvoice returns one invoice with its company embedded.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, apiErr := parseInvoiceID(c)
	if apiErr != nil {
		util.Fail(c, apiErr)
		return
	}

	var invoice models.Invoice
	if err := h.DB.First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Fail(c, util.NotFound("Invoice not found: %d", id))
			return
		}
		util.Fail(c, err)
		return
	}

	// The FK should make a missing company impossible; kept as a guard.
	var company models.Company
	if err := h.DB.First(&company, "code = ?", invoice.CompCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Fail(c, util.NotFound("Invoice's company not found: %s", invoice.CompCode))
			return
		}
		util.Fail(c, err)
		return
	}

	util.OK(c, util.Response{"invoice": invoiceDetail{
		ID:       invoice.ID,
		Amt:      invoice.Amt,
		Paid:     invoice.Paid,
		AddDate:  invoice.AddDate,
		PaidDate: invoice.PaidDate,
		Company:  company,
	}})
}

// CreateInvoice adds an invoice for a company. paid defaults to false,
// add_date to the current date, paid_date to null.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req createInvoiceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Fail(c, util.BadRequest("Bad Request"))
		return
	}
	if req.CompCode == "" || req.Amt == nil {
		util.Fail(c, util.BadRequest("Bad Request"))
		return
	}

	invoice := models.Invoice{
		CompCode: req.CompCode,
		Amt:      *req.Amt,
		AddDate:  time.Now(),
	}
	if err := h.DB.Create(&invoice).Error; err != nil {
		util.Fail(c, err)
		return
	}

	util.Created(c, util.Response{"invoice": invoice})
}

// UpdateInvoice updates amt and the paid state.
//
// The paid flag is read back first and only a flip touches paid_date:
// false→true stamps today, true→false clears it, and an unchanged flag
// writes amt alone, leaving paid_date exactly as it was.
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id, apiErr := parseInvoiceID(c)
	if apiErr != nil {
		util.Fail(c, apiErr)
		return
	}

	var req updateInvoiceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Fail(c, util.BadRequest("Bad Request"))
		return
	}
	if req.Amt == nil || req.Paid == nil {
		util.Fail(c, util.BadRequest("Bad Request"))
		return
	}

	var invoice models.Invoice
	if err := h.DB.First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Fail(c, util.NotFound("Invoice not found: %d", id))
			return
		}
		util.Fail(c, err)
		return
	}

	if invoice.Paid != *req.Paid {
		invoice.Amt = *req.Amt
		invoice.Paid = *req.Paid
		if invoice.Paid {
			now := time.Now()
			invoice.PaidDate = &now
		} else {
			invoice.PaidDate = nil
		}
		if err := h.DB.Model(&invoice).Updates(map[string]interface{}{
			"amt":       invoice.Amt,
			"paid":      invoice.Paid,
			"paid_date": invoice.PaidDate,
		}).Error; err != nil {
			util.Fail(c, err)
			return
		}
	} else {
		invoice.Amt = *req.Amt
		if err := h.DB.Model(&invoice).Update("amt", invoice.Amt).Error; err != nil {
			util.Fail(c, err)
			return
		}
	}

	util.OK(c, util.Response{"invoice": invoice})
}

// DeleteInvoice removes an invoice.
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, apiErr := parseInvoiceID(c)
	if apiErr != nil {
		util.Fail(c, apiErr)
		return
	}

	res := h.DB.Delete(&models.Invoice{}, "id = ?", id)
	if res.Error != nil {
		util.Fail(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		util.Fail(c, util.NotFound("Invoice not found: %d", id))
		return
	}

	util.Deleted(c)
}
