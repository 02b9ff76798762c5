package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Route struct {
	ID            string      `gorm:"type:uuid;primaryKey" json:"id"`
	VehicleTypeId uint        `json:"vehicleTypeId"`
	VehicleType   VehicleType `gorm:"foreignKey:VehicleTypeId" json:"-"`
	RouteNumber   int         `gorm:"index" json:"routeNumber"`
	Name          string      `gorm:"size:25" json:"name"`
	RouteDetail   string      `json:"routeDetail"`
}

func (r *Route) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
