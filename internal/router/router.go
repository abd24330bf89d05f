package router

import (
	"github.com/jvill171/express-biztime/internal/config"
	"github.com/jvill171/express-biztime/internal/handler"
	"github.com/jvill171/express-biztime/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRouter builds the route table once and wires every handler with
// its database handle. No handler reaches for globals.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(
		gin.Logger(),
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Metrics(),
		middleware.AuditMiddleware(db),
	)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	companyHandler := handler.NewCompanyHandler(db)
	r.GET("/companies", companyHandler.ListCompanies)
	r.GET("/companies/:code", companyHandler.GetCompany)
	r.POST("/companies", companyHandler.CreateCompany)
	r.PUT("/companies/:code", companyHandler.UpdateCompany)
	r.DELETE("/companies/:code", companyHandler.DeleteCompany)

	invoiceHandler := handler.NewInvoiceHandler(db)
	r.GET("/invoices", invoiceHandler.ListInvoices)
	r.GET("/invoices/:id", invoiceHandler.GetInvoice)
	r.POST("/invoices", invoiceHandler.CreateInvoice)
	r.PUT("/invoices/:id", invoiceHandler.UpdateInvoice)
	r.DELETE("/invoices/:id", invoiceHandler.DeleteInvoice)

	industryHandler := handler.NewIndustryHandler(db)
	r.GET("/industries", industryHandler.ListIndustries)
	r.POST("/industries", industryHandler.CreateIndustry)
	r.POST("/industries/:i_code/:c_code", industryHandler.AssociateCompany)
	r.DELETE("/industries/:code", industryHandler.DeleteIndustry)

	exportHandler := handler.NewExportHandler(db)
	r.GET("/export/invoices.csv", exportHandler.ExportInvoicesCSV)
	r.GET("/export/invoices.xlsx", exportHandler.ExportInvoicesXLSX)

	return r
}
