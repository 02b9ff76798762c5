package model

import (
	"time"

	"ticket_server/constants"
)

type Tariff struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:200" json:"name"`
	Number    int        `gorm:"uniqueIndex" json:"number"`
	Cost      float64    `gorm:"not null" json:"cost"`
	Created   time.Time  `gorm:"autoCreateTime" json:"created"`
	StartDate *time.Time `gorm:"type:date" json:"startDate"`
	EndDate   *time.Time `gorm:"type:date" json:"endDate"`
	Status    int        `gorm:"default:1" json:"status"`
}

func (t *Tariff) IsActive() bool {
	return t.Status == constants.TYPE_ACTIVE
}
