package database

import (
	"fmt"
	"strconv"

	"ticket_server/config"
	"ticket_server/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.ConfigDefault("DB_PORT", "5432")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"),
		config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	Migrate(DB)
	fmt.Println("Database Migrated")

	SeedData(DB)
}

// Migrate creates the schema plus the constraints that tags cannot express.
// The partial unique index is what actually enforces "one open workday per
// validator"; the application-level lookup is advisory only.
func Migrate(db *gorm.DB) {
	db.AutoMigrate(
		&model.VehicleType{},
		&model.Tariff{},
		&model.Zone{},
		&model.Route{},
		&model.TicketType{},
		&model.Company{},
		&model.User{},
		&model.Ticket{},
		&model.TicketNumber{},
		&model.Workday{},
		&model.Operation{},
		&model.Setting{},
	)

	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_workdays_validator_open
		ON workdays (validator_id) WHERE status = 1`)
}
