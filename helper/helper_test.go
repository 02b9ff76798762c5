package helper

import (
	"path/filepath"
	"testing"

	"ticket_server/database"
	"ticket_server/model"
	"ticket_server/utils"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a throwaway sqlite database with the full schema, the
// seed data and a fresh signing key pair wired through the environment.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dir := t.TempDir()
	db, err := gorm.Open(sqlite.Open(filepath.Join(dir, "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	database.Migrate(db)
	database.SeedData(db)

	keyDir := filepath.Join(dir, "keys")
	if err := utils.GenerateKeys(keyDir, "private.pem", "public.pem"); err != nil {
		t.Fatalf("generate keys: %v", err)
	}
	t.Setenv("KEY_PATH", keyDir)
	t.Setenv("QR_PATH", filepath.Join(dir, "codes"))

	if err := Settings.Load(db); err != nil {
		t.Fatalf("load settings: %v", err)
	}
	return db
}

func seededUser(t *testing.T, db *gorm.DB, login string) *model.User {
	t.Helper()
	var user model.User
	if err := db.Preload("Company").Where("login = ?", login).First(&user).Error; err != nil {
		t.Fatalf("seeded user %s missing: %v", login, err)
	}
	return &user
}

func issueTicket(t *testing.T, db *gorm.DB, token string) *model.Ticket {
	t.Helper()
	seller := seededUser(t, db, "seller")
	manager, err := NewSingleTicketManager(db, seller, token)
	if err != nil {
		t.Fatalf("new ticket manager: %v", err)
	}
	ticket, err := manager.CreateTicket()
	if err != nil {
		t.Fatalf("create ticket: %v", err)
	}
	return ticket
}
