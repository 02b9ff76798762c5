package model

type VehicleType struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:30;not null" json:"name"`
	Number int    `gorm:"uniqueIndex;not null" json:"number"`
}
