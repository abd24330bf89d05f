package handler

import (
	"errors"
	"strings"

	"github.com/jvill171/express-biztime/internal/models"
	"github.com/jvill171/express-biztime/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// IndustryHandler serves the /industries routes, including the
// company-industry association endpoint.
type IndustryHandler struct {
	DB *gorm.DB
}

func NewIndustryHandler(db *gorm.DB) *IndustryHandler {
	return &IndustryHandler{DB: db}
}

// ---------- request/response shapes ----------

type createIndustryReq struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

type industryResp struct {
	Code      string   `json:"code"`
	Industry  string   `json:"industry"`
	Companies []string `json:"companies"`
}

// ListIndustries returns every industry with the codes of its associated
// companies aggregated into an array, empty when none exist.
func (h *IndustryHandler) ListIndustries(c *gin.Context) {
	var industries []models.Industry
	if err := h.DB.Order("code ASC").Find(&industries).Error; err != nil {
		util.Fail(c, err)
		return
	}

	var links []models.CompanyIndustry
	if err := h.DB.Find(&links).Error; err != nil {
		util.Fail(c, err)
		return
	}

	byIndustry := make(map[string][]string, len(industries))
	for _, link := range links {
		byIndustry[link.IndustryCode] = append(byIndustry[link.IndustryCode], link.CompCode)
	}

	items := make([]industryResp, 0, len(industries))
	for _, ind := range industries {
		companies := byIndustry[ind.Code]
		if companies == nil {
			companies = []string{}
		}
		items = append(items, industryResp{
			Code:      ind.Code,
			Industry:  ind.Industry,
			Companies: companies,
		})
	}

	util.OK(c, util.Response{"industries": items})
}

// CreateIndustry adds an industry, rejecting duplicate codes.
func (h *IndustryHandler) CreateIndustry(c *gin.Context) {
	var req createIndustryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Fail(c, util.BadRequest("Bad Request"))
		return
	}

	req.Code = strings.TrimSpace(req.Code)
	req.Industry = strings.TrimSpace(req.Industry)
	if req.Code == "" || req.Industry == "" {
		util.Fail(c, util.BadRequest("Bad Request: Missing data"))
		return
	}

	// Pre-check for a friendly message; the unique constraint backs this
	// up under a race via the translator.
	var existing models.Industry
	err := h.DB.First(&existing, "code = ?", req.Code).Error
	if err == nil {
		util.Fail(c, util.Conflict("Duplicate code exists: %s", req.Code))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		util.Fail(c, err)
		return
	}

	industry := models.Industry{Code: req.Code, Industry: req.Industry}
	if err := h.DB.Create(&industry).Error; err != nil {
		util.Fail(c, err)
		return
	}

	util.Created(c, util.Response{"industry": industry})
}

// AssociateCompany links a company to an industry. Both sides must exist
// and the pair must not already be associated.
func (h *IndustryHandler) AssociateCompany(c *gin.Context) {
	industryCode := c.Param("i_code")
	compCode := c.Param("c_code")

	var company models.Company
	companyErr := h.DB.First(&company, "code = ?", compCode).Error
	var industry models.Industry
	industryErr := h.DB.First(&industry, "code = ?", industryCode).Error

	if errors.Is(companyErr, gorm.ErrRecordNotFound) || errors.Is(industryErr, gorm.ErrRecordNotFound) {
		util.Fail(c, util.NotFound("Company or Industry not found: %s, %s", compCode, industryCode))
		return
	}
	if companyErr != nil {
		util.Fail(c, companyErr)
		return
	}
	if industryErr != nil {
		util.Fail(c, industryErr)
		return
	}

	var existing models.CompanyIndustry
	err := h.DB.First(&existing, "comp_code = ? AND industry_code = ?", compCode, industryCode).Error
	if err == nil {
		util.Fail(c, util.Conflict("Duplicate association exists: %s, %s", compCode, industryCode))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		util.Fail(c, err)
		return
	}

	link := models.CompanyIndustry{CompCode: compCode, IndustryCode: industryCode}
	if err := h.DB.Create(&link).Error; err != nil {
		util.Fail(c, err)
		return
	}

	util.Created(c, util.Response{"company_industry": link})
}

// DeleteIndustry removes an industry and, via cascade, its associations.
func (h *IndustryHandler) DeleteIndustry(c *gin.Context) {
	code := c.Param("code")

	res := h.DB.Delete(&models.Industry{}, "code = ?", code)
	if res.Error != nil {
		util.Fail(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		util.Fail(c, util.NotFound("Industry not found: %s", code))
		return
	}

	util.Deleted(c)
}
