// Package cashbook turns the clinic's raw ledger into a gap-free daily
// reconciliation report: per-day totals, a carried running balance, and the
// discrepancy between what was projected and what was counted.
package cashbook

import (
	"errors"
	"strings"
	"time"

	"clinic-cashbook-backend/internal/dates"
	"clinic-cashbook-backend/internal/models"
	"clinic-cashbook-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// ErrInvalidRange is returned when to precedes from. The range is rejected
// rather than answered with zero days, which would hide a caller bug.
var ErrInvalidRange = errors.New("invalid range: to precedes from")

type CashbookService struct {
	ledgerRepo  *repository.LedgerRepository
	balanceRepo *repository.BalanceRepository
}

func NewCashbookService(
	ledgerRepo *repository.LedgerRepository,
	balanceRepo *repository.BalanceRepository,
) *CashbookService {
	return &CashbookService{
		ledgerRepo:  ledgerRepo,
		balanceRepo: balanceRepo,
	}
}

// DailyReport loads the window and reconciles it. Reports are computed fresh
// from stored state on every call; nothing is cached or invalidated.
func (s *CashbookService) DailyReport(from, to time.Time) (*models.DailyReport, error) {
	from, to = dates.DayOf(from), dates.DayOf(to)
	if to.Before(from) {
		return nil, ErrInvalidRange
	}

	window, err := s.ledgerRepo.LoadWindow(from, to)
	if err != nil {
		return nil, err
	}

	return &models.DailyReport{
		From:     from,
		To:       to,
		Previous: window.Previous,
		Days:     Reconcile(from, to, window.Previous, window.Transactions, window.RecordedBalances),
	}, nil
}

// SaveDailyBalance stores a counted balance for one day, creating or
// overwriting the row. Note is trimmed; an empty note is stored as absent.
// Previously generated reports are not touched; the next read picks it up.
func (s *CashbookService) SaveDailyBalance(date time.Time, amount decimal.Decimal, note string) (*models.RecordedBalance, error) {
	var notePtr *string
	if trimmed := strings.TrimSpace(note); trimmed != "" {
		notePtr = &trimmed
	}
	return s.balanceRepo.Upsert(date, amount, notePtr)
}

// AddTransaction appends one cash movement to the ledger.
func (s *CashbookService) AddTransaction(occurredAt time.Time, amount decimal.Decimal, description, reference string) (*models.LedgerTransaction, error) {
	tx := &models.LedgerTransaction{
		OccurredAt:  occurredAt,
		Amount:      amount,
		Description: strings.TrimSpace(description),
		Reference:   strings.TrimSpace(reference),
	}
	if err := s.ledgerRepo.CreateTransaction(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// ListTransactions returns the range's transactions newest first.
func (s *CashbookService) ListTransactions(from, to time.Time) ([]models.LedgerTransaction, error) {
	from, to = dates.DayOf(from), dates.DayOf(to)
	if to.Before(from) {
		return nil, ErrInvalidRange
	}
	return s.ledgerRepo.ListTransactions(from, to)
}
