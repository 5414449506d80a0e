package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"clinic-cashbook-backend/internal/dates"
	service "clinic-cashbook-backend/internal/services/cashbook"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CashbookHandler struct {
	service *service.CashbookService
}

func NewCashbookHandler(s *service.CashbookService) *CashbookHandler {
	return &CashbookHandler{service: s}
}

// parseRange reads the from/to query params as YYYY-MM-DD days.
func parseRange(c *gin.Context) (from, to time.Time, ok bool) {
	from, err := dates.ParseDay(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing 'from' date, expected YYYY-MM-DD"})
		return from, to, false
	}
	to, err = dates.ParseDay(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing 'to' date, expected YYYY-MM-DD"})
		return from, to, false
	}
	return from, to, true
}

// GetDailyReport computes the reconciled cash book for [from, to].
func (h *CashbookHandler) GetDailyReport(c *gin.Context) {
	from, to, ok := parseRange(c)
	if !ok {
		return
	}

	report, err := h.service.DailyReport(from, to)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "'to' must not precede 'from'"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"from":     dates.DayKey(report.From),
		"to":       dates.DayKey(report.To),
		"previous": report.Previous,
		"days":     report.Days,
	})
}

// SaveDailyBalance creates or overwrites the counted balance for one day.
func (h *CashbookHandler) SaveDailyBalance(c *gin.Context) {
	var payload struct {
		Date    string      `json:"date"`
		Balance json.Number `json:"balance"`
		Note    string      `json:"note"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	date, err := dates.ParseDay(payload.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}
	amount, err := decimal.NewFromString(payload.Balance.String())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid balance, expected a number"})
		return
	}

	if _, err := h.service.SaveDailyBalance(date, amount, payload.Note); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CreateTransaction appends one cash movement to the ledger. This is the
// boundary import/sync subsystems write through.
func (h *CashbookHandler) CreateTransaction(c *gin.Context) {
	var payload struct {
		OccurredAt  string      `json:"occurred_at"`
		Amount      json.Number `json:"amount"`
		Description string      `json:"description"`
		Reference   string      `json:"reference"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	occurredAt, err := time.Parse(time.RFC3339, payload.OccurredAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid occurred_at, expected RFC3339"})
		return
	}
	amount, err := decimal.NewFromString(payload.Amount.String())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount, expected a number"})
		return
	}

	tx, err := h.service.AddTransaction(occurredAt, amount, payload.Description, payload.Reference)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "ok", "transaction": tx})
}

// ListTransactions returns the range's transactions, newest first.
func (h *CashbookHandler) ListTransactions(c *gin.Context) {
	from, to, ok := parseRange(c)
	if !ok {
		return
	}

	txs, err := h.service.ListTransactions(from, to)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "'to' must not precede 'from'"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": txs, "count": len(txs)})
}
