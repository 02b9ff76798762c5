package helper

import (
	"testing"

	"ticket_server/constants"
	"ticket_server/model"
	"ticket_server/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func openTestWorkday(t *testing.T, db *gorm.DB) (*model.User, *model.Workday) {
	t.Helper()
	validator := seededUser(t, db, "validator")
	workday, err := OpenWorkday(db, validator)
	if err != nil {
		t.Fatalf("open workday: %v", err)
	}
	return validator, workday
}

func tripInput(ticketID string) model.TripInput {
	return model.TripInput{
		TicketId:      ticketID,
		RunNumber:     "42",
		VehicleType:   1,
		VehicleNumber: "888338",
		RouteNumber:   "7",
	}
}

func TestRedeemActiveTicket(t *testing.T) {
	db := setupTestDB(t)
	ticket := issueTicket(t, db, "token-redeem")
	validator, workday := openTestWorkday(t, db)

	status, operation, err := RedeemTicket(db, tripInput(ticket.ID), validator, workday)
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if status.Code != 601 {
		t.Errorf("code = %d, want 601", status.Code)
	}
	if operation == nil {
		t.Fatal("no operation recorded")
	}
	if operation.WorkdayId == nil || *operation.WorkdayId != workday.ID {
		t.Error("operation not bound to the open workday")
	}

	var stored model.Ticket
	db.First(&stored, "id = ?", ticket.ID)
	if stored.Status != constants.TICKET_COMPLETED {
		t.Errorf("ticket status = %d, want COMPLETED", stored.Status)
	}
	if stored.Completed == nil {
		t.Error("completion timestamp not set")
	}
}

func TestRedeemCompletedSameRun(t *testing.T) {
	db := setupTestDB(t)
	ticket := issueTicket(t, db, "token-same-run")
	validator, workday := openTestWorkday(t, db)

	if _, _, err := RedeemTicket(db, tripInput(ticket.ID), validator, workday); err != nil {
		t.Fatalf("first redeem: %v", err)
	}

	status, _, err := RedeemTicket(db, tripInput(ticket.ID), validator, workday)
	if err != nil {
		t.Fatalf("second redeem: %v", err)
	}
	if status.Code != 602 {
		t.Errorf("same run code = %d, want 602", status.Code)
	}

	other := tripInput(ticket.ID)
	other.RunNumber = "99"
	status, _, err = RedeemTicket(db, other, validator, workday)
	if err != nil {
		t.Fatalf("third redeem: %v", err)
	}
	if status.Code != 603 {
		t.Errorf("other run code = %d, want 603", status.Code)
	}

	var count int64
	db.Model(&model.Operation{}).Where("ticket_id = ?", ticket.ID).Count(&count)
	if count != 1 {
		t.Errorf("operation count = %d, want 1: completed tickets must not gain trips", count)
	}
}

func TestCheckCompletedVehicleMatch(t *testing.T) {
	db := setupTestDB(t)
	ticket := issueTicket(t, db, "token-vehicle-match")
	validator, workday := openTestWorkday(t, db)

	if _, _, err := RedeemTicket(db, tripInput(ticket.ID), validator, workday); err != nil {
		t.Fatalf("redeem: %v", err)
	}

	// without a run number the vehicle number, carrier code and vehicle type
	// decide together; the seeded carrier company has code 777
	status, _, err := CheckTicket(db, model.CheckTripInput{
		TicketId:      ticket.ID,
		VehicleNumber: "888338",
		CarrierCode:   utils.Ptr(777),
		VehicleType:   utils.Ptr(1),
	})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if status.Code != 602 {
		t.Errorf("matching triple code = %d, want 602", status.Code)
	}

	status, _, err = CheckTicket(db, model.CheckTripInput{
		TicketId:      ticket.ID,
		VehicleNumber: "111111",
		CarrierCode:   utils.Ptr(777),
		VehicleType:   utils.Ptr(1),
	})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if status.Code != 603 {
		t.Errorf("different vehicle code = %d, want 603", status.Code)
	}

	status, _, err = CheckTicket(db, model.CheckTripInput{
		TicketId:      ticket.ID,
		VehicleNumber: "888338",
		CarrierCode:   utils.Ptr(100),
		VehicleType:   utils.Ptr(1),
	})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if status.Code != 603 {
		t.Errorf("different carrier code = %d, want 603", status.Code)
	}

	// missing fields fall back to the stored trip values
	status, _, err = CheckTicket(db, model.CheckTripInput{
		TicketId:      ticket.ID,
		VehicleNumber: "888338",
	})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if status.Code != 602 {
		t.Errorf("fallback code = %d, want 602", status.Code)
	}
}

func TestCheckActiveTicket(t *testing.T) {
	db := setupTestDB(t)
	ticket := issueTicket(t, db, "token-check-active")

	status, _, err := CheckTicket(db, model.CheckTripInput{
		TicketId:      ticket.ID,
		VehicleNumber: "888338",
	})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if status.Code != 600 {
		t.Errorf("code = %d, want 600", status.Code)
	}

	var stored model.Ticket
	db.First(&stored, "id = ?", ticket.ID)
	if stored.Status != constants.TICKET_ACTIVE {
		t.Error("check must not change ticket state")
	}
}

func TestRedeemExpiredTicket(t *testing.T) {
	db := setupTestDB(t)
	ticket := issueTicket(t, db, "token-expired")
	validator, workday := openTestWorkday(t, db)

	yesterday := utils.Today().AddDate(0, 0, -1)
	db.Model(&model.Ticket{}).Where("id = ?", ticket.ID).Update("end_date", yesterday)

	status, operation, err := RedeemTicket(db, tripInput(ticket.ID), validator, workday)
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if status.Code != 604 {
		t.Errorf("code = %d, want 604", status.Code)
	}
	if operation != nil {
		t.Error("expired ticket must not gain an operation")
	}

	var stored model.Ticket
	db.First(&stored, "id = ?", ticket.ID)
	if stored.Status != constants.TICKET_ACTIVE {
		t.Error("expiry is a read-time decision; status must stay ACTIVE")
	}
}

func TestRedeemDisabledTicket(t *testing.T) {
	db := setupTestDB(t)
	ticket := issueTicket(t, db, "token-disabled")
	validator, workday := openTestWorkday(t, db)

	db.Model(&model.Ticket{}).Where("id = ?", ticket.ID).Update("status", constants.TICKET_DISABLED)

	status, operation, err := RedeemTicket(db, tripInput(ticket.ID), validator, workday)
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if status.Code != 605 {
		t.Errorf("code = %d, want 605", status.Code)
	}
	if operation != nil {
		t.Error("disabled ticket must not gain an operation")
	}

	status, _, err = CheckTicket(db, model.CheckTripInput{
		TicketId:      ticket.ID,
		VehicleNumber: "888338",
	})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if status.Code != 605 {
		t.Errorf("check code = %d, want 605", status.Code)
	}
}

func TestRedeemUnknownTicket(t *testing.T) {
	db := setupTestDB(t)
	validator, workday := openTestWorkday(t, db)

	status, _, err := RedeemTicket(db, tripInput(uuid.NewString()), validator, workday)
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if status.Code != 606 {
		t.Errorf("code = %d, want 606", status.Code)
	}
}

func TestLoadTripsPerItemResults(t *testing.T) {
	db := setupTestDB(t)
	fresh := issueTicket(t, db, "token-batch-1")
	redeemed := issueTicket(t, db, "token-batch-2")
	validator, workday := openTestWorkday(t, db)

	if _, _, err := RedeemTicket(db, tripInput(redeemed.ID), validator, workday); err != nil {
		t.Fatalf("pre-redeem: %v", err)
	}

	results, err := LoadTrips(db, []model.TripInput{
		tripInput(fresh.ID),
		tripInput(redeemed.ID),
		tripInput(uuid.NewString()),
	}, validator, workday)
	if err != nil {
		t.Fatalf("load trips: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[0].Code != 601 {
		t.Errorf("fresh ticket code = %d, want 601", results[0].Code)
	}
	if results[1].Code != 602 {
		t.Errorf("already redeemed code = %d, want 602", results[1].Code)
	}
	if results[2].Code != 606 {
		t.Errorf("unknown ticket code = %d, want 606", results[2].Code)
	}

	var count int64
	db.Model(&model.Operation{}).Where("ticket_id = ?", redeemed.ID).Count(&count)
	if count != 1 {
		t.Errorf("already redeemed ticket gained operations: %d", count)
	}
}

func TestWriteOffTickets(t *testing.T) {
	db := setupTestDB(t)
	expired := issueTicket(t, db, "token-writeoff-1")
	current := issueTicket(t, db, "token-writeoff-2")
	validator, workday := openTestWorkday(t, db)

	for _, ticket := range []*model.Ticket{expired, current} {
		if _, _, err := RedeemTicket(db, tripInput(ticket.ID), validator, workday); err != nil {
			t.Fatalf("redeem: %v", err)
		}
	}
	yesterday := utils.Today().AddDate(0, 0, -1)
	db.Model(&model.Ticket{}).Where("id = ?", expired.ID).Update("end_date", yesterday)

	count, err := WriteOffTickets(db)
	if err != nil {
		t.Fatalf("write off: %v", err)
	}
	if count != 1 {
		t.Errorf("wrote off %d tickets, want 1", count)
	}

	var stored model.Ticket
	db.First(&stored, "id = ?", expired.ID)
	if stored.Status != constants.TICKET_DISABLED {
		t.Errorf("expired ticket status = %d, want DISABLED", stored.Status)
	}
	if stored.Disabled == nil {
		t.Error("disabled timestamp not set")
	}

	var storedCurrent model.Ticket
	db.First(&storedCurrent, "id = ?", current.ID)
	if storedCurrent.Status != constants.TICKET_COMPLETED {
		t.Error("ticket inside its validity window must not be written off")
	}
}
