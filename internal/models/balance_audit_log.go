package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BalanceAuditLog records every save of a daily balance, including the amount
// it replaced, so overwrites stay traceable without row versioning.
type BalanceAuditLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Date      time.Time      `gorm:"index"`
	Action    string         // "created" or "updated"
	Details   datatypes.JSON
	CreatedAt time.Time
}
