package repository

import (
	"errors"
	"fmt"
	"time"

	"clinic-cashbook-backend/internal/dates"
	"clinic-cashbook-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Expose DB if needed
func (r *LedgerRepository) DB() *gorm.DB {
	return r.db
}

// LedgerWindow is everything the reconciler needs for one date range, loaded
// in a single pass. RecordedBalances is keyed by day (YYYY-MM-DD).
type LedgerWindow struct {
	Previous         *models.RecordedBalance
	Transactions     []models.LedgerTransaction
	RecordedBalances map[string]models.RecordedBalance
}

// LoadWindow reads the anchor balance, the range's transactions and the
// range's recorded balances. The anchor is the most recent recorded balance
// strictly before from; a balance dated from itself belongs to the range.
// Read-only; storage errors are returned unchanged apart from wrapping.
func (r *LedgerRepository) LoadWindow(from, to time.Time) (*LedgerWindow, error) {
	w := &LedgerWindow{
		RecordedBalances: make(map[string]models.RecordedBalance),
	}

	var previous models.RecordedBalance
	err := r.db.
		Where("date < ?", dates.DayOf(from)).
		Order("date DESC").
		First(&previous).Error
	switch {
	case err == nil:
		w.Previous = &previous
	case errors.Is(err, gorm.ErrRecordNotFound):
		// No anchor; the running balance starts at zero.
	default:
		return nil, fmt.Errorf("load previous balance: %w", err)
	}

	// The upper bound must cover the whole final day: transactions carry a
	// time of day, so comparing against midnight of `to` would drop that
	// day's afternoon takings.
	err = r.db.
		Where("occurred_at >= ? AND occurred_at <= ?", dates.DayOf(from), dates.EndOfDay(to)).
		Order("occurred_at ASC").
		Find(&w.Transactions).Error
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	var recorded []models.RecordedBalance
	err = r.db.
		Where("date >= ? AND date <= ?", dates.DayOf(from), dates.DayOf(to)).
		Find(&recorded).Error
	if err != nil {
		return nil, fmt.Errorf("load recorded balances: %w", err)
	}
	for _, rb := range recorded {
		w.RecordedBalances[dates.DayKey(rb.Date)] = rb
	}

	return w, nil
}

// CreateTransaction inserts a single ledger row. The engine never updates or
// deletes transactions; they are append-only at this boundary.
func (r *LedgerRepository) CreateTransaction(tx *models.LedgerTransaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}
	if err := r.db.Create(tx).Error; err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

// ListTransactions returns the range's transactions newest first.
func (r *LedgerRepository) ListTransactions(from, to time.Time) ([]models.LedgerTransaction, error) {
	var txs []models.LedgerTransaction
	err := r.db.
		Where("occurred_at >= ? AND occurred_at <= ?", dates.DayOf(from), dates.EndOfDay(to)).
		Order("occurred_at DESC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}
