package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/jvill171/express-biztime/internal/config"
	"github.com/jvill171/express-biztime/internal/database"
	"github.com/jvill171/express-biztime/internal/models"
	"github.com/jvill171/express-biztime/internal/router"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// newTestServer spins up the full route table over a throwaway sqlite
// database seeded with three companies and five invoices.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Init(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "biztime_test.db"),
	})
	if err != nil {
		t.Fatalf("init database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	seed(t, db)

	cfg := &config.Config{Server: config.ServerConfig{Mode: gin.TestMode}}
	return router.SetupRouter(cfg, db), db
}

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()

	companies := []models.Company{
		{Code: "c1", Name: "Comp1", Description: "D1"},
		{Code: "c2", Name: "Comp2", Description: "D2"},
		{Code: "c3", Name: "Comp3", Description: "D3"},
	}
	if err := db.Create(&companies).Error; err != nil {
		t.Fatalf("seed companies: %v", err)
	}

	paidDate1 := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	paidDate2 := time.Date(2020, 10, 12, 0, 0, 0, 0, time.UTC)
	now := time.Now()
	invoices := []models.Invoice{
		{CompCode: "c1", Amt: 100, Paid: true, AddDate: now},
		{CompCode: "c1", Amt: 200, Paid: false, AddDate: now, PaidDate: &paidDate1},
		{CompCode: "c2", Amt: 300, Paid: true, AddDate: now},
		{CompCode: "c2", Amt: 400, Paid: false, AddDate: now},
		{CompCode: "c2", Amt: 500, Paid: true, AddDate: now, PaidDate: &paidDate2},
	}
	if err := db.Create(&invoices).Error; err != nil {
		t.Fatalf("seed invoices: %v", err)
	}
}

func seedIndustries(t *testing.T, db *gorm.DB) {
	t.Helper()

	industries := []models.Industry{
		{Code: "acct", Industry: "Accounting"},
		{Code: "tech", Industry: "Technology"},
	}
	if err := db.Create(&industries).Error; err != nil {
		t.Fatalf("seed industries: %v", err)
	}
	link := models.CompanyIndustry{CompCode: "c1", IndustryCode: "acct"}
	if err := db.Create(&link).Error; err != nil {
		t.Fatalf("seed association: %v", err)
	}
}

// doJSON performs one request against the router and returns the recorder.
func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}

// firstInvoiceID returns the id of the seeded (c1, 100, paid) invoice.
func firstInvoiceID(t *testing.T, db *gorm.DB) uint {
	t.Helper()

	var invoice models.Invoice
	if err := db.Order("id ASC").First(&invoice).Error; err != nil {
		t.Fatalf("find first invoice: %v", err)
	}
	return invoice.ID
}
