package helper

import (
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"ticket_server/config"
	"ticket_server/constants"
	"ticket_server/model"
	"ticket_server/utils"

	"gorm.io/gorm"
)

// SingleTicketManager issues and encodes SINGLE (one-trip) tickets. Other
// ticket types get their own manager registered in TicketManagers; the
// redemption state machine does not depend on the variant.
type SingleTicketManager struct {
	db         *gorm.DB
	seller     *model.User
	token      string
	ticketType model.TicketType
}

// NewSingleTicketManager resolves the active SINGLE ticket type with its
// tariff. Issuance fails up front when the type or tariff is missing.
func NewSingleTicketManager(db *gorm.DB, seller *model.User, token string) (*SingleTicketManager, error) {
	var ticketType model.TicketType
	err := db.Preload("Tariff").Preload("Zone").Preload("VehicleTypes").
		Where("number = ? AND status = ?", model.SINGLE, constants.TYPE_ACTIVE).
		First(&ticketType).Error
	if err != nil {
		return nil, fmt.Errorf("%s: %w", constants.TICKET_TYPE_NOT_FOUND, err)
	}
	if !ticketType.Tariff.IsActive() {
		return nil, errors.New(constants.TARIFF_NOT_FOUND)
	}
	if seller == nil {
		return nil, errors.New(constants.USER_NOT_FOUND)
	}
	return &SingleTicketManager{
		db:         db,
		seller:     seller,
		token:      token,
		ticketType: ticketType,
	}, nil
}

// TicketManagerFactory builds the issuance strategy for a ticket type number.
type TicketManagerFactory func(db *gorm.DB, seller *model.User, token string) (*SingleTicketManager, error)

// TicketManagers maps ticket type numbers to their issuance strategy.
// Extending the variant set means registering here; the redemption protocol
// stays untouched.
var TicketManagers = map[int]TicketManagerFactory{
	model.SINGLE: NewSingleTicketManager,
}

// MakeTicketData returns the printable ticket payload for the idempotency
// token: an existing ticket is returned unchanged, otherwise one is created.
func (tm *SingleTicketManager) MakeTicketData() (map[string]any, error) {
	ticket, err := tm.findByToken()
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		if _, err := tm.CreateTicket(); err != nil {
			return nil, err
		}
		ticket, err = tm.findByToken()
		if err != nil {
			return nil, err
		}
		if ticket == nil {
			return nil, errors.New(constants.TICKET_NOT_FOUND)
		}
	}

	number := uint(0)
	if ticket.Number != nil {
		number = ticket.Number.ID
	}
	data := map[string]any{
		"ticket_name":  tm.ticketType.Name,
		"series":       ticket.Series,
		"number":       fmt.Sprintf("%08d", number),
		"company_name": Settings.MainCompany(),
		"agent_name":   ticket.AgentName(),
		"vehicle_type": tm.ticketType.ReprVehicleTypes(),
		"created_date": utils.FormatTicketDate(ticket.Created),
		"start_date":   utils.FormatTicketDate(ticket.StartDate),
		"end_date":     utils.FormatTicketDate(ticket.EndDate),
		"ticket_zone":  tm.ticketType.Zone.Name,
		"amount":       ticket.Amount,
		"qr_code":      ticket.ImageBase64(),
	}
	return data, nil
}

func (tm *SingleTicketManager) findByToken() (*model.Ticket, error) {
	var ticket model.Ticket
	err := tm.db.Preload("Seller.Company").Preload("Number").
		Where("token = ?", tm.token).First(&ticket).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// CreateTicket allocates the ticket, its serial number and the signed QR
// payload in one transaction. A concurrent request holding the same token
// loses on the unique index and gets the winner's ticket back.
func (tm *SingleTicketManager) CreateTicket() (*model.Ticket, error) {
	today := utils.Today()
	ticket := model.Ticket{
		Token:        tm.token,
		Series:       tm.GenerateSeries(),
		SellerId:     &tm.seller.ID,
		TicketTypeId: tm.ticketType.ID,
		Amount:       tm.ticketType.Tariff.Cost,
		Status:       constants.TICKET_ACTIVE,
		StartDate:    today,
		EndDate:      today.AddDate(0, 0, int(tm.ticketType.Lifetime)),
	}

	err := tm.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ticket).Error; err != nil {
			return err
		}
		number := model.TicketNumber{TicketId: ticket.ID}
		if err := tx.Create(&number).Error; err != nil {
			return err
		}

		payload, err := tm.QRData(&ticket, number.ID)
		if err != nil {
			return err
		}
		png, err := utils.GenerateQRCode(payload, Settings.QRConfig())
		if err != nil {
			return err
		}
		ticket.QRCode = png
		return tx.Model(&ticket).Update("qr_code", png).Error
	})
	if err != nil {
		if utils.IsUniqueViolation(err) {
			return tm.findByToken()
		}
		return nil, err
	}

	SaveQRImage(ticket.ID, ticket.QRCode)
	return &ticket, nil
}

// TicketInfo is the ordered payload tuple: [ticket id, type code, series,
// zero-padded number, start date, end date, algorithm version, vehicle type
// numbers]. The signature is appended as the final element.
func (tm *SingleTicketManager) TicketInfo(ticket *model.Ticket, number uint) []string {
	return []string{
		ticket.ID,
		tm.ticketType.Code,
		ticket.Series,
		fmt.Sprintf("%08d", number),
		utils.FormatTicketDate(ticket.StartDate),
		utils.FormatTicketDate(ticket.EndDate),
		utils.AlgorithmVersion,
		tm.ticketType.ReprVehicleTypeNumbers(),
	}
}

// QRData builds and signs the JSON-array payload encoded into the QR symbol.
func (tm *SingleTicketManager) QRData(ticket *model.Ticket, number uint) (string, error) {
	info := tm.TicketInfo(ticket, number)
	message, err := utils.CanonicalMessage(info)
	if err != nil {
		return "", err
	}
	key, err := PrivateKey()
	if err != nil {
		return "", err
	}
	signature, err := utils.Sign(message, key)
	if err != nil {
		return "", err
	}
	info = append(info, signature)
	raw, err := json.Marshal(info)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// QRDataCompressed is the zstd-compressed payload for density-constrained
// symbols.
func (tm *SingleTicketManager) QRDataCompressed(ticket *model.Ticket, number uint) ([]byte, error) {
	payload, err := tm.QRData(ticket, number)
	if err != nil {
		return nil, err
	}
	return utils.CompressZstd([]byte(payload)), nil
}

// Verify validates a scanned payload against the public key.
func (tm *SingleTicketManager) Verify(payload []byte, isCompressed bool) (bool, error) {
	key, err := PublicKey()
	if err != nil {
		return false, err
	}
	return utils.Verify(payload, isCompressed, key)
}

// GenerateSeries builds the YYMM-<type code> series for tickets issued now.
func (tm *SingleTicketManager) GenerateSeries() string {
	return time.Now().Format("0601") + "-" + tm.ticketType.Code
}

func keyPath() string {
	return config.ConfigDefault("KEY_PATH", "keys")
}

// PrivateKey loads the process-wide signing key.
func PrivateKey() (*rsa.PrivateKey, error) {
	return utils.LoadPrivateKey(filepath.Join(keyPath(),
		config.ConfigDefault("PRIVATE_KEY_FILENAME", "private.pem")))
}

// PublicKey loads the verification key handed out to field devices.
func PublicKey() (*rsa.PublicKey, error) {
	return utils.LoadPublicKey(filepath.Join(keyPath(),
		config.ConfigDefault("PUBLIC_KEY_FILENAME", "public.pem")))
}

// PublicKeyPEM returns the raw PEM handed to validators on workday open.
func PublicKeyPEM() (string, error) {
	raw, err := os.ReadFile(filepath.Join(keyPath(),
		config.ConfigDefault("PUBLIC_KEY_FILENAME", "public.pem")))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// EnsureKeys generates a key pair on first start when none is provisioned.
func EnsureKeys() error {
	private := filepath.Join(keyPath(), config.ConfigDefault("PRIVATE_KEY_FILENAME", "private.pem"))
	if _, err := os.Stat(private); err == nil {
		return nil
	}
	log.Println("signing keys not found, generating a new pair in", keyPath())
	return utils.GenerateKeys(keyPath(),
		config.ConfigDefault("PRIVATE_KEY_FILENAME", "private.pem"),
		config.ConfigDefault("PUBLIC_KEY_FILENAME", "public.pem"))
}

// SaveQRImage persists the rendered symbol under QR_PATH keyed by ticket id
// and mirrors it to cloudinary when configured. Failures are logged, not
// fatal: the payload of record lives on the ticket row.
func SaveQRImage(ticketID string, png []byte) {
	dir := config.ConfigDefault("QR_PATH", filepath.Join("uploads", "codes"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("failed to create QR dir %s: %v", dir, err)
		return
	}
	path := filepath.Join(dir, ticketID+".png")
	if err := os.WriteFile(path, png, 0o644); err != nil {
		log.Printf("failed to write QR image %s: %v", path, err)
		return
	}
	go UploadQRImage(ticketID, png)
}
