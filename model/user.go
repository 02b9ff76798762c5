package model

import (
	"ticket_server/constants"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string   `gorm:"type:uuid;primaryKey" json:"id"`
	Login     string   `gorm:"size:100;uniqueIndex" json:"login"`
	Password  string   `gorm:"size:200" json:"-"`
	Name      string   `gorm:"size:200" json:"name"`
	Code      int      `json:"code"`
	Role      int      `gorm:"not null" json:"role"`
	Status    int      `gorm:"default:1" json:"status"`
	CompanyId *string  `gorm:"type:uuid" json:"companyId"`
	Company   *Company `gorm:"foreignKey:CompanyId" json:"-"`

	Workdays []Workday `gorm:"foreignKey:ValidatorId" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// CurrentWorkday returns the validator's open workday, or nil.
func (u *User) CurrentWorkday(db *gorm.DB) *Workday {
	var workday Workday
	err := db.Where("validator_id = ? AND status = ?", u.ID, constants.WORKDAY_OPEN).
		First(&workday).Error
	if err != nil {
		return nil
	}
	return &workday
}
