package model

import "time"

type Zone struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:300" json:"name"`
	Number    int        `gorm:"uniqueIndex" json:"number"`
	StartDate *time.Time `gorm:"type:date" json:"startDate"`
	EndDate   *time.Time `gorm:"type:date" json:"endDate"`
}
