package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerTransaction is a single cash movement. Amount is signed: non-negative
// means money in, negative means money out. Rows are written by import/sync
// subsystems and by the intake endpoint; the reconciliation engine only reads them.
type LedgerTransaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	OccurredAt  time.Time       `gorm:"column:occurred_at;index" json:"occurred_at"`
	Amount      decimal.Decimal `gorm:"type:numeric" json:"amount"`
	Description string          `json:"description"`
	Reference   string          `json:"reference"`
	CreatedAt   time.Time       `json:"created_at"`
}
