package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordedBalance is a manually counted cash balance for one calendar day.
// Date is stored at midnight UTC and is unique; a second save for the same
// day overwrites amount and note wholesale.
type RecordedBalance struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Date      time.Time       `gorm:"uniqueIndex" json:"date"`
	Amount    decimal.Decimal `gorm:"type:numeric" json:"amount"`
	Note      *string         `json:"note"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
