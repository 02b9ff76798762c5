package model

import (
	"strconv"
	"strings"
	"time"
)

// SINGLE is the only ticket type number with an issuance strategy today.
const SINGLE = 1

type TicketType struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	TariffId     uint          `json:"tariffId"`
	Tariff       Tariff        `gorm:"foreignKey:TariffId" json:"-"`
	ZoneId       uint          `json:"zoneId"`
	Zone         Zone          `gorm:"foreignKey:ZoneId" json:"-"`
	Code         string        `gorm:"size:10;uniqueIndex" json:"code"`
	Name         string        `gorm:"size:200" json:"name"`
	Lifetime     uint          `json:"lifetime"` // validity in days
	Number       int           `gorm:"index" json:"number"`
	Status       int           `gorm:"default:1" json:"status"`
	Created      time.Time     `gorm:"autoCreateTime" json:"created"`
	VehicleTypes []VehicleType `gorm:"many2many:ticket_type_vehicle_types" json:"-"`
}

// ReprVehicleTypes joins the permitted vehicle type names with a dash.
func (t *TicketType) ReprVehicleTypes() string {
	names := make([]string, 0, len(t.VehicleTypes))
	for _, vt := range t.VehicleTypes {
		names = append(names, vt.Name)
	}
	return strings.Join(names, "-")
}

// ReprVehicleTypeNumbers joins the permitted vehicle type numbers with a
// dash, as carried in the QR payload.
func (t *TicketType) ReprVehicleTypeNumbers() string {
	numbers := make([]string, 0, len(t.VehicleTypes))
	for _, vt := range t.VehicleTypes {
		numbers = append(numbers, strconv.Itoa(vt.Number))
	}
	return strings.Join(numbers, "-")
}
