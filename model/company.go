package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Company struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	Code      int    `json:"code"`
	Category  int    `gorm:"not null" json:"category"`
	Name      string `gorm:"size:200" json:"name"`
	ShortName string `gorm:"size:100" json:"shortName"`
	Inn       string `gorm:"size:12;uniqueIndex" json:"inn"`
	Email     string `gorm:"size:200" json:"email"`
	Status    int    `gorm:"default:1" json:"status"`

	Users []User `gorm:"foreignKey:CompanyId" json:"-"`
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
