package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Operation records a single redemption (trip). Under the SINGLE ticket type
// policy a ticket has at most one Operation; later presentations are checked
// against it instead of creating new rows.
type Operation struct {
	ID            string `gorm:"type:uuid;primaryKey" json:"id"`
	TicketId      string `gorm:"type:uuid;index" json:"ticketId"`
	Ticket        Ticket `gorm:"foreignKey:TicketId" json:"-"`
	OperationType int    `gorm:"default:0" json:"operationType"`

	RouteNumber   string       `gorm:"size:25" json:"route_number"`
	RunNumber     string       `gorm:"size:25" json:"run_number"`
	VehicleTypeId *uint        `json:"-"`
	VehicleType   *VehicleType `gorm:"foreignKey:VehicleTypeId" json:"-"`
	VehicleNumber string       `gorm:"size:25" json:"vehicle_number"`
	LicensePlate  string       `gorm:"size:25" json:"license_plate"`

	WorkdayId *string  `gorm:"type:uuid" json:"workdayId"`
	Workday   *Workday `gorm:"foreignKey:WorkdayId" json:"-"`

	ValidatorNumber int `json:"validator_number"`

	Created  time.Time `json:"created"`                   // client-asserted redemption instant
	Imported time.Time `gorm:"autoCreateTime" json:"imported"` // server receipt instant
}

func (o *Operation) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// Carrier resolves the company that redeemed the ticket through the
// operation's workday -> validator -> company chain.
func (o *Operation) Carrier(db *gorm.DB) *Company {
	if o.WorkdayId == nil {
		return nil
	}
	var workday Workday
	if err := db.Preload("Validator.Company").First(&workday, "id = ?", *o.WorkdayId).Error; err != nil {
		return nil
	}
	if workday.Validator == nil {
		return nil
	}
	return workday.Validator.Company
}

// TripInput is the redemption context supplied by a validator.
type TripInput struct {
	TicketId        string `json:"ticket_id" validate:"required,uuid4"`
	RunNumber       string `json:"run_number" validate:"required"`
	RouteNumber     string `json:"route_number" validate:"omitempty"`
	VehicleType     int    `json:"vehicle_type" validate:"required"`
	VehicleNumber   string `json:"vehicle_number" validate:"required"`
	LicensePlate    string `json:"license_plate" validate:"omitempty"`
	ValidatorNumber int    `json:"validator_number" validate:"omitempty"`
	Created         string `json:"created" validate:"omitempty"`
}

// CheckTripInput is the context supplied by an inspector. Optional fields are
// pointers so a missing value can fall back to the stored operation.
type CheckTripInput struct {
	TicketId      string `json:"ticket_id" validate:"required,uuid4"`
	RunNumber     string `json:"run_number" validate:"omitempty"`
	CarrierCode   *int   `json:"carrier_code" validate:"omitempty"`
	VehicleType   *int   `json:"vehicle_type" validate:"omitempty"`
	VehicleNumber string `json:"vehicle_number" validate:"required"`
	RouteNumber   string `json:"route_number" validate:"omitempty"`
}

type LoadTripsInput struct {
	Tickets []TripInput `json:"tickets" validate:"required,dive"`
}

// TripResult is the per-item outcome of a batch redemption.
type TripResult struct {
	TicketId string `json:"ticket_id"`
	Code     int    `json:"code"`
	Detail   string `json:"detail"`
}
