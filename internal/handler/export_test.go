package handler_test

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"
)

func TestExportInvoicesCSV(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/export/invoices.csv", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	// header + five seeded invoices
	if len(records) != 6 {
		t.Fatalf("len(records) = %d, want 6", len(records))
	}
	if records[0][0] != "id" || records[0][1] != "comp_code" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][1] != "c1" || records[1][2] != "100.00" {
		t.Errorf("unexpected first row: %v", records[1])
	}
}

func TestExportInvoicesXLSX(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/export/invoices.xlsx", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("Content-Type = %q, want spreadsheet", ct)
	}
	if w.Body.Len() == 0 {
		t.Error("empty xlsx body")
	}
}
