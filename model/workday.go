package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Workday groups a validator's redemptions into an open/closed shift.
// A validator has at most one open workday at a time; closing is terminal.
type Workday struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	ValidatorId *string    `gorm:"type:uuid" json:"validatorId"`
	Validator   *User      `gorm:"foreignKey:ValidatorId" json:"-"`
	Created     time.Time  `gorm:"autoCreateTime" json:"created"`
	Closed      *time.Time `json:"closed"`
	Status      int        `gorm:"default:1" json:"status"`

	Trips []Operation `gorm:"foreignKey:WorkdayId" json:"-"`
}

func (w *Workday) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
