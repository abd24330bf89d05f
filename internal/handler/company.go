package handler

import (
	"errors"
	"strings"

	"github.com/jvill171/express-biztime/internal/models"
	"github.com/jvill171/express-biztime/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// CompanyHandler serves the /companies routes.
type CompanyHandler struct {
	DB *gorm.DB
}

func NewCompanyHandler(db *gorm.DB) *CompanyHandler {
	return &CompanyHandler{DB: db}
}

// ---------- request/response shapes ----------

type companyReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type companyListItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type companyResp struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Industries  []string `json:"industries"`
}

// industryLabels returns the display labels of every industry associated
// with the company. Always a slice, never nil, so the JSON field encodes
// as an empty array rather than null when no associations exist.
func (h *CompanyHandler) industryLabels(code string) ([]string, error) {
	labels := make([]string, 0)
	err := h.DB.Model(&models.CompanyIndustry{}).
		Joins("JOIN industries ON industries.code = company_industry.industry_code").
		Where("company_industry.comp_code = ?", code).
		Pluck("industries.industry", &labels).Error
	if labels == nil {
		labels = []string{}
	}
	return labels, err
}

// ListCompanies returns every company's (code, name), ordered by name.
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies := make([]companyListItem, 0)
	if err := h.DB.Model(&models.Company{}).
		Select("code", "name").
		Order("name ASC").
		Scan(&companies).Error; err != nil {
		util.Fail(c, err)
		return
	}

	util.OK(c, util.Response{"companies": companies})
}

// GetCompany returns one company plus its associated industry labels.
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	code := c.Param("code")

	var company models.Company
	if err := h.DB.First(&company, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Fail(c, util.NotFound("Company not found: %s", code))
			return
		}
		util.Fail(c, err)
		return
	}

	industries, err := h.industryLabels(company.Code)
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.OK(c, util.Response{"company": companyResp{
		Code:        company.Code,
		Name:        company.Name,
		Description: company.Description,
		Industries:  industries,
	}})
}

// CreateCompany adds a company. The code is derived by slugifying the
// name; a colliding slug surfaces as a duplicate-key Conflict through the
// boundary translator.
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req companyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Fail(c, util.BadRequest("Bad Request"))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	if req.Name == "" || req.Description == "" {
		util.Fail(c, util.BadRequest("Bad Request: Missing data"))
		return
	}

	company := models.Company{
		Code:        slug.Make(req.Name),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.DB.Create(&company).Error; err != nil {
		util.Fail(c, err)
		return
	}

	util.Created(c, util.Response{"company": company})
}

// UpdateCompany edits name and description. The code itself is immutable.
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	code := c.Param("code")

	var req companyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Fail(c, util.BadRequest("Bad Request"))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	if req.Name == "" || req.Description == "" {
		util.Fail(c, util.BadRequest("Bad Request: Missing data"))
		return
	}

	var company models.Company
	if err := h.DB.First(&company, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Fail(c, util.NotFound("Company not found: %s", code))
			return
		}
		util.Fail(c, err)
		return
	}

	company.Name = req.Name
	company.Description = req.Description
	if err := h.DB.Model(&company).
		Select("name", "description").
		Updates(&company).Error; err != nil {
		util.Fail(c, err)
		return
	}

	util.OK(c, util.Response{"company": company})
}

// DeleteCompany removes a company. Invoices and association rows
// referencing it go with it (ON DELETE CASCADE).
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	code := c.Param("code")

	res := h.DB.Delete(&models.Company{}, "code = ?", code)
	if res.Error != nil {
		util.Fail(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		util.Fail(c, util.NotFound("Company not found: %s", code))
		return
	}

	util.Deleted(c)
}
