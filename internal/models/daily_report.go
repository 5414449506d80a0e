package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyBalanceRecord is one day of the reconciled cash book. It is derived on
// every read and never persisted. RecordedBalance, Difference and Note are nil
// on days without a manually counted balance.
type DailyBalanceRecord struct {
	Date            time.Time        `json:"date"`
	TotalIn         decimal.Decimal  `json:"total_in"`
	TotalOut        decimal.Decimal  `json:"total_out"`
	NetChange       decimal.Decimal  `json:"net_change"`
	ExpectedBalance decimal.Decimal  `json:"expected_balance"`
	RecordedBalance *decimal.Decimal `json:"recorded_balance"`
	Difference      *decimal.Decimal `json:"difference"`
	Note            *string          `json:"note"`
	HasCashback     bool             `json:"has_cashback"`
}

// DailyReport is the full reconciliation output for a date range. Previous is
// the most recent recorded balance strictly before From, or nil if the cash
// book starts inside the range.
type DailyReport struct {
	From     time.Time            `json:"from"`
	To       time.Time            `json:"to"`
	Previous *RecordedBalance     `json:"previous"`
	Days     []DailyBalanceRecord `json:"days"`
}
