package helper

import (
	"errors"
	"testing"

	"ticket_server/constants"
	"ticket_server/model"

	"github.com/google/uuid"
)

func TestOpenWorkdaySingularity(t *testing.T) {
	db := setupTestDB(t)
	validator := seededUser(t, db, "validator")

	first, err := OpenWorkday(db, validator)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if first.Status != constants.WORKDAY_OPEN {
		t.Errorf("status = %d, want OPEN", first.Status)
	}

	if _, err := OpenWorkday(db, validator); !errors.Is(err, ErrWorkdayAlreadyOpen) {
		t.Errorf("second open error = %v, want ErrWorkdayAlreadyOpen", err)
	}
}

func TestCloseWorkday(t *testing.T) {
	db := setupTestDB(t)
	ticket := issueTicket(t, db, "token-close")
	validator, workday := openTestWorkday(t, db)

	results, err := CloseWorkday(db, workday.ID, validator, []model.TripInput{tripInput(ticket.ID)})
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if len(results) != 1 || results[0].Code != 601 {
		t.Errorf("results = %+v, want one 601 entry", results)
	}

	var stored model.Workday
	db.First(&stored, "id = ?", workday.ID)
	if stored.Status != constants.WORKDAY_CLOSED {
		t.Errorf("status = %d, want CLOSED", stored.Status)
	}
	if stored.Closed == nil {
		t.Error("close timestamp not set")
	}

	// closing frees the validator for a new shift
	if _, err := OpenWorkday(db, validator); err != nil {
		t.Errorf("reopen after close: %v", err)
	}
}

func TestCloseWorkdayEmptyPayload(t *testing.T) {
	db := setupTestDB(t)
	validator, workday := openTestWorkday(t, db)

	results, err := CloseWorkday(db, workday.ID, validator, nil)
	if err != nil {
		t.Fatalf("close with no trips: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %+v, want empty", results)
	}
}

func TestCloseWorkdayTwice(t *testing.T) {
	db := setupTestDB(t)
	validator, workday := openTestWorkday(t, db)

	if _, err := CloseWorkday(db, workday.ID, validator, nil); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if _, err := CloseWorkday(db, workday.ID, validator, nil); !errors.Is(err, ErrWorkdayClosed) {
		t.Errorf("second close error = %v, want ErrWorkdayClosed", err)
	}
}

func TestCloseWorkdayWrongOwner(t *testing.T) {
	db := setupTestDB(t)
	validator, workday := openTestWorkday(t, db)

	other := model.User{
		Login:     "validator2",
		Role:      constants.ROLE_VALIDATOR,
		Status:    constants.USER_ACTIVE,
		Name:      "Second validator",
		CompanyId: validator.CompanyId,
	}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("create second validator: %v", err)
	}

	if _, err := CloseWorkday(db, workday.ID, &other, nil); !errors.Is(err, ErrWorkdayNotOwner) {
		t.Errorf("close by stranger error = %v, want ErrWorkdayNotOwner", err)
	}
}

func TestCloseWorkdayNotFound(t *testing.T) {
	db := setupTestDB(t)
	validator := seededUser(t, db, "validator")

	if _, err := CloseWorkday(db, uuid.NewString(), validator, nil); !errors.Is(err, ErrWorkdayNotFound) {
		t.Errorf("close unknown error = %v, want ErrWorkdayNotFound", err)
	}
}
