package database

import (
	"log"

	"ticket_server/constants"
	"ticket_server/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData provisions the reference data a fresh install needs: vehicle
// types, the SINGLE ticket type with its tariff and zone, the main company
// and one user per role. Existing rows are left untouched.
func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("change_me"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	vehicleTypes := []model.VehicleType{
		{Name: "Bus", Number: 1},
		{Name: "Trolleybus", Number: 2},
		{Name: "Tram", Number: 3},
	}
	for _, vt := range vehicleTypes {
		if err := db.Where(model.VehicleType{Number: vt.Number}).FirstOrCreate(&vt).Error; err != nil {
			log.Println("failed to seed vehicle type:", vt.Name, "error:", err)
		}
	}

	tariff := model.Tariff{Name: "Base single-trip tariff", Number: 1, Cost: 30.00, Status: constants.TYPE_ACTIVE}
	if err := db.Where(model.Tariff{Number: tariff.Number}).FirstOrCreate(&tariff).Error; err != nil {
		log.Println("failed to seed tariff:", err)
	}

	zone := model.Zone{Name: "City zone", Number: 1}
	if err := db.Where(model.Zone{Number: zone.Number}).FirstOrCreate(&zone).Error; err != nil {
		log.Println("failed to seed zone:", err)
	}

	var allVehicleTypes []model.VehicleType
	db.Find(&allVehicleTypes)

	ticketType := model.TicketType{
		TariffId: tariff.ID,
		ZoneId:   zone.ID,
		Code:     "1",
		Name:     "Single-trip ticket",
		Lifetime: 30,
		Number:   model.SINGLE,
		Status:   constants.TYPE_ACTIVE,
	}
	if err := db.Where(model.TicketType{Number: model.SINGLE}).FirstOrCreate(&ticketType).Error; err != nil {
		log.Println("failed to seed ticket type:", err)
	}
	if err := db.Model(&ticketType).Association("VehicleTypes").Replace(allVehicleTypes); err != nil {
		log.Println("failed to bind vehicle types to ticket type:", err)
	}

	companies := []model.Company{
		{Code: 1, Category: constants.COMPANY_MAIN, Name: "City Transit Authority", Inn: "7840379186", Status: constants.COMPANY_ACTIVE},
		{Code: 100, Category: constants.COMPANY_AGENT, Name: "Ticket Sales Agent LLC", Inn: "7800000000", Status: constants.COMPANY_ACTIVE},
		{Code: 777, Category: constants.COMPANY_CARRIER, Name: "City Bus Carrier LLC", Inn: "7800000001", Status: constants.COMPANY_ACTIVE},
	}
	for i := range companies {
		if err := db.Where(model.Company{Inn: companies[i].Inn}).FirstOrCreate(&companies[i]).Error; err != nil {
			log.Println("failed to seed company:", companies[i].Name, "error:", err)
		}
	}

	agentCompany := companies[1]
	carrierCompany := companies[2]

	users := []model.User{
		{Login: "admin", Password: hashPassword, Role: constants.ROLE_ADMIN, Status: constants.USER_ACTIVE, Name: "Administrator"},
		{Login: "seller", Password: hashPassword, Role: constants.ROLE_SELLER, Status: constants.USER_ACTIVE, Name: "Counter seller", Code: 1000, CompanyId: &agentCompany.ID},
		{Login: "validator", Password: hashPassword, Role: constants.ROLE_VALIDATOR, Status: constants.USER_ACTIVE, Name: "Onboard validator", Code: 100, CompanyId: &carrierCompany.ID},
		{Login: "inspector", Password: hashPassword, Role: constants.ROLE_INSPECTOR, Status: constants.USER_ACTIVE, Name: "Line inspector", Code: 200, CompanyId: &carrierCompany.ID},
	}
	for _, user := range users {
		if err := db.Where(model.User{Login: user.Login}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed user:", user.Login, "error:", err)
		}
	}

	settings := []model.Setting{
		{Name: "qr_version", Value: "", Description: "Forced QR symbol version, empty = auto-fit"},
		{Name: "qr_error_correction", Value: "0", Description: "QR error correction level: 1=L, 0=M, 3=Q, 2=H"},
		{Name: "qr_box_size", Value: "10", Description: "Pixels per QR module"},
		{Name: "qr_border", Value: "4", Description: "Quiet zone width in modules, 0 disables the border"},
		{Name: "qr_color", Value: "black", Description: "Foreground color, name or #RRGGBB"},
		{Name: "qr_back_color", Value: "white", Description: "Background color, name or #RRGGBB"},
		{Name: "qr_fit", Value: "true", Description: "Auto-fit the symbol version to the payload"},
	}
	for _, setting := range settings {
		if err := db.Where(model.Setting{Name: setting.Name}).FirstOrCreate(&setting).Error; err != nil {
			log.Println("failed to seed setting:", setting.Name, "error:", err)
		}
	}
}
