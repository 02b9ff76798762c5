package model

import (
	"encoding/base64"
	"time"

	"ticket_server/constants"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Ticket struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	Token  string `gorm:"size:250;uniqueIndex" json:"token"` // idempotency token
	Series string `gorm:"size:8" json:"series"`

	SellerId     *string    `gorm:"type:uuid" json:"sellerId"`
	Seller       *User      `gorm:"foreignKey:SellerId" json:"-"`
	TicketTypeId uint       `json:"ticketTypeId"`
	TicketType   TicketType `gorm:"foreignKey:TicketTypeId" json:"-"`
	Amount       float64    `gorm:"not null" json:"amount"`
	Status       int        `gorm:"default:1" json:"status"`

	Created   time.Time  `gorm:"autoCreateTime" json:"created"`
	Completed *time.Time `json:"completed"`
	Disabled  *time.Time `json:"disabled"`

	StartDate time.Time `gorm:"type:date" json:"startDate"`
	EndDate   time.Time `gorm:"type:date" json:"endDate"`

	QRCode []byte `gorm:"column:qr_code" json:"-"`

	Number     *TicketNumber `gorm:"foreignKey:TicketId;constraint:OnDelete:CASCADE" json:"-"`
	Operations []Operation   `gorm:"foreignKey:TicketId;constraint:OnDelete:CASCADE" json:"-"`
}

func (t *Ticket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// SetStatus moves the ticket forward and stamps the transition time. The
// completion time is set only on ACTIVE -> COMPLETED, the disabled time only
// on COMPLETED -> DISABLED.
func (t *Ticket) SetStatus(tx *gorm.DB, status int) error {
	now := time.Now()
	if t.Status == constants.TICKET_ACTIVE && status == constants.TICKET_COMPLETED {
		t.Completed = &now
	} else if t.Status == constants.TICKET_COMPLETED && status == constants.TICKET_DISABLED {
		t.Disabled = &now
	}
	t.Status = status
	return tx.Save(t).Error
}

// AgentName is the selling company name printed on the ticket.
func (t *Ticket) AgentName() string {
	if t.Seller != nil && t.Seller.Company != nil {
		return t.Seller.Company.Name
	}
	return ""
}

// ImageBase64 returns the stored QR PNG re-encoded for JSON transport.
func (t *Ticket) ImageBase64() string {
	if len(t.QRCode) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(t.QRCode)
}

// TicketNumber exists as a separate table to get an auto-increment serial for
// the ticket; the row id is the number embedded in the QR payload.
type TicketNumber struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	TicketId string `gorm:"type:uuid;uniqueIndex" json:"ticketId"`
}

type CreateTicketInput struct {
	Token      string `json:"token" validate:"required"`
	TicketType int    `json:"ticket_type" validate:"omitempty"`
}

type FilterTicketInput struct {
	Pagination
	TicketTypeId uint   `json:"ticketTypeId" query:"ticketTypeId" validate:"omitempty,gt=0"`
	Status       int    `json:"status" query:"status" validate:"omitempty,oneof=1 2 3"`
	SellerId     string `json:"sellerId" query:"sellerId" validate:"omitempty,uuid4"`
}
