package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"clinic-cashbook-backend/internal/dates"
	"clinic-cashbook-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BalanceRepository struct {
	db *gorm.DB
}

func NewBalanceRepository(db *gorm.DB) *BalanceRepository {
	return &BalanceRepository{db: db}
}

// Upsert stores the counted balance for one day, overwriting amount and note
// wholesale if the day already has a row. Last write wins on concurrent saves
// for the same date; every save is appended to the audit log with the amount
// it replaced.
func (r *BalanceRepository) Upsert(date time.Time, amount decimal.Decimal, note *string) (*models.RecordedBalance, error) {
	day := dates.DayOf(date)
	now := time.Now()

	var existing models.RecordedBalance
	var previousAmount *decimal.Decimal
	action := "created"
	err := r.db.Where("date = ?", day).First(&existing).Error
	switch {
	case err == nil:
		action = "updated"
		prev := existing.Amount
		previousAmount = &prev
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return nil, fmt.Errorf("load recorded balance: %w", err)
	}

	rb := &models.RecordedBalance{
		ID:        uuid.New(),
		Date:      day,
		Amount:    amount,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "note", "updated_at"}),
	}).Create(rb).Error
	if err != nil {
		return nil, fmt.Errorf("upsert recorded balance: %w", err)
	}

	details, _ := json.Marshal(map[string]interface{}{
		"date":            dates.DayKey(day),
		"previous_amount": previousAmount,
		"new_amount":      amount,
		"note":            note,
	})
	audit := &models.BalanceAuditLog{
		ID:        uuid.New(),
		Date:      day,
		Action:    action,
		Details:   details,
		CreatedAt: now,
	}
	if err := r.db.Create(audit).Error; err != nil {
		return nil, fmt.Errorf("write balance audit log: %w", err)
	}

	return rb, nil
}

// GetByDate returns the recorded balance for one day, or nil if none exists.
func (r *BalanceRepository) GetByDate(date time.Time) (*models.RecordedBalance, error) {
	var rb models.RecordedBalance
	err := r.db.Where("date = ?", dates.DayOf(date)).First(&rb).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load recorded balance: %w", err)
	}
	return &rb, nil
}
