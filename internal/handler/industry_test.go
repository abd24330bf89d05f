package handler_test

import (
	"net/http"
	"testing"

	"github.com/jvill171/express-biztime/internal/models"
)

func TestListIndustries(t *testing.T) {
	r, db := newTestServer(t)
	seedIndustries(t, db)

	w := doJSON(t, r, http.MethodGet, "/industries", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	industries := decodeBody(t, w)["industries"].([]interface{})
	if len(industries) != 2 {
		t.Fatalf("len(industries) = %d, want 2", len(industries))
	}

	byCode := make(map[string]map[string]interface{})
	for _, raw := range industries {
		item := raw.(map[string]interface{})
		byCode[item["code"].(string)] = item
	}

	acct := byCode["acct"]
	if acct["industry"] != "Accounting" {
		t.Errorf("acct.industry = %v", acct["industry"])
	}
	companies := acct["companies"].([]interface{})
	if len(companies) != 1 || companies[0] != "c1" {
		t.Errorf("acct.companies = %v, want [c1]", companies)
	}

	// zero associations must still be an array, not null
	tech := byCode["tech"]
	techCompanies, ok := tech["companies"].([]interface{})
	if !ok {
		t.Fatalf("tech.companies = %v (%T), want empty array", tech["companies"], tech["companies"])
	}
	if len(techCompanies) != 0 {
		t.Errorf("tech.companies = %v, want empty", techCompanies)
	}
}

func TestCreateIndustry(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/industries", map[string]string{
		"code":     "mfg",
		"industry": "Manufacturing",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	industry := decodeBody(t, w)["industry"].(map[string]interface{})
	if industry["code"] != "mfg" || industry["industry"] != "Manufacturing" {
		t.Errorf("unexpected industry: %v", industry)
	}
}

func TestCreateIndustry_MissingData(t *testing.T) {
	r, _ := newTestServer(t)

	cases := []map[string]string{
		{},
		{"code": "mfg"},
		{"industry": "Manufacturing"},
	}
	for _, body := range cases {
		w := doJSON(t, r, http.MethodPost, "/industries", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("POST %v status = %d, want 400", body, w.Code)
		}
	}
}

func TestCreateIndustry_Duplicate(t *testing.T) {
	r, db := newTestServer(t)
	seedIndustries(t, db)

	w := doJSON(t, r, http.MethodPost, "/industries", map[string]string{
		"code":     "acct",
		"industry": "Accounting Again",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", w.Code, w.Body.String())
	}
	if n := countRows(t, db, &models.Industry{}); n != 2 {
		t.Errorf("industry count = %d, want 2", n)
	}
}

func TestAssociateCompany(t *testing.T) {
	r, db := newTestServer(t)
	seedIndustries(t, db)

	w := doJSON(t, r, http.MethodPost, "/industries/tech/c2", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	link := decodeBody(t, w)["company_industry"].(map[string]interface{})
	if link["comp_code"] != "c2" || link["industry_code"] != "tech" {
		t.Errorf("unexpected association: %v", link)
	}
}

func TestAssociateCompany_MissingReference(t *testing.T) {
	r, db := newTestServer(t)
	seedIndustries(t, db)

	for _, path := range []string{"/industries/nope/c1", "/industries/acct/nope", "/industries/nope/nope"} {
		w := doJSON(t, r, http.MethodPost, path, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("POST %s status = %d, want 404", path, w.Code)
		}
	}

	if n := countRows(t, db, &models.CompanyIndustry{}); n != 1 {
		t.Errorf("association count = %d, want 1", n)
	}
}

func TestAssociateCompany_Duplicate(t *testing.T) {
	r, db := newTestServer(t)
	seedIndustries(t, db)

	w := doJSON(t, r, http.MethodPost, "/industries/acct/c1", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", w.Code, w.Body.String())
	}
	if n := countRows(t, db, &models.CompanyIndustry{}); n != 1 {
		t.Errorf("association count = %d, want 1", n)
	}
}

func TestDeleteIndustry(t *testing.T) {
	r, db := newTestServer(t)
	seedIndustries(t, db)

	w := doJSON(t, r, http.MethodDelete, "/industries/tech", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := decodeBody(t, w)["status"]; got != "deleted" {
		t.Errorf("status field = %v, want deleted", got)
	}
	if n := countRows(t, db, &models.Industry{}); n != 1 {
		t.Errorf("industry count = %d, want 1", n)
	}

	w = doJSON(t, r, http.MethodDelete, "/industries/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown code status = %d, want 404", w.Code)
	}
}
