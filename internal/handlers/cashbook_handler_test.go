package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	service "clinic-cashbook-backend/internal/services/cashbook"

	"github.com/gin-gonic/gin"
)

// Validation failures are rejected before any repository call, so a service
// with no storage behind it is enough here.
func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCashbookHandler(service.NewCashbookService(nil, nil))

	r := gin.New()
	r.GET("/daily-report", h.GetDailyReport)
	r.POST("/daily-balance", h.SaveDailyBalance)
	r.POST("/transactions", h.CreateTransaction)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetDailyReportRejectsBadRange(t *testing.T) {
	r := testRouter()
	cases := []struct {
		name  string
		query string
	}{
		{"missing from", "?to=2026-06-30"},
		{"missing to", "?from=2026-06-01"},
		{"malformed from", "?from=01-06-2026&to=2026-06-30"},
		{"malformed to", "?from=2026-06-01&to=June"},
		{"to precedes from", "?from=2026-06-30&to=2026-06-01"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodGet, "/daily-report"+c.query, "")
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestSaveDailyBalanceRejectsMalformedInput(t *testing.T) {
	r := testRouter()
	cases := []struct {
		name string
		body string
	}{
		{"not json", "not json"},
		{"missing date", `{"balance": 1000}`},
		{"bad date format", `{"date": "06-01-2026", "balance": 1000}`},
		{"missing balance", `{"date": "2026-06-01"}`},
		{"balance as word", `{"date": "2026-06-01", "balance": "lots"}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/daily-balance", c.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestCreateTransactionRejectsMalformedInput(t *testing.T) {
	r := testRouter()
	cases := []struct {
		name string
		body string
	}{
		{"missing occurred_at", `{"amount": 500}`},
		{"date-only timestamp", `{"occurred_at": "2026-06-01", "amount": 500}`},
		{"missing amount", `{"occurred_at": "2026-06-01T10:00:00Z"}`},
		{"amount as word", `{"occurred_at": "2026-06-01T10:00:00Z", "amount": "many"}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/transactions", c.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body: %s", w.Code, w.Body.String())
			}
		})
	}
}
