package helper

import (
	"errors"

	"ticket_server/constants"
	"ticket_server/model"
	"ticket_server/utils"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate serializes the read-decide-write sequence on a row. The
// sqlite test driver has no FOR UPDATE; its single writer covers the same
// guarantee there.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// makeSingleTrip records the redemption operation for a first presentation.
func makeSingleTrip(tx *gorm.DB, ticket *model.Ticket, input model.TripInput, validator *model.User, workday *model.Workday) (*model.Operation, error) {
	var vehicleType model.VehicleType
	if err := tx.Where("number = ?", input.VehicleType).First(&vehicleType).Error; err != nil {
		return nil, err
	}

	operation := model.Operation{}
	copier.Copy(&operation, &input)
	operation.TicketId = ticket.ID
	operation.OperationType = constants.OPERATION_TRIP
	operation.VehicleTypeId = &vehicleType.ID
	operation.VehicleType = &vehicleType
	operation.Created = utils.ParseClientTime(input.Created)

	if workday == nil && validator != nil {
		workday = validator.CurrentWorkday(tx)
	}
	if workday != nil {
		operation.WorkdayId = &workday.ID
	}

	if err := tx.Create(&operation).Error; err != nil {
		return nil, err
	}
	return &operation, nil
}

// RedeemTicket is the mutating entry point of the redemption protocol, used
// by validators. Exactly one concurrent caller transitions an ACTIVE ticket
// and creates its Operation; everyone else observes COMPLETED and falls into
// the check comparison. The whole sequence runs in one transaction with the
// ticket row locked.
func RedeemTicket(db *gorm.DB, input model.TripInput, validator *model.User, workday *model.Workday) (constants.CheckStatus, *model.Operation, error) {
	var status string
	var operation *model.Operation

	err := db.Transaction(func(tx *gorm.DB) error {
		var ticket model.Ticket
		err := lockForUpdate(tx).First(&ticket, "id = ?", input.TicketId).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			status = constants.CHECK_NOT_FOUND
			return nil
		}
		if err != nil {
			return err
		}

		switch ticket.Status {
		case constants.TICKET_ACTIVE:
			if utils.DateBefore(ticket.EndDate, utils.Today()) {
				status = constants.CHECK_EXPIRED
				return nil
			}
			trip, err := makeSingleTrip(tx, &ticket, input, validator, workday)
			if err != nil {
				return err
			}
			if err := ticket.SetStatus(tx, constants.TICKET_COMPLETED); err != nil {
				return err
			}
			operation = trip
			status = constants.CHECK_COMPLETED
		case constants.TICKET_COMPLETED:
			result, trip, err := checkCompletedTicket(tx, &ticket, checkInputFromTrip(input))
			if err != nil {
				return err
			}
			status = result
			operation = trip
		default:
			status = constants.CHECK_DISABLED
		}
		return nil
	})
	if err != nil {
		return constants.CheckStatus{}, nil, err
	}
	return constants.CheckStatuses[status], operation, nil
}

// CheckTicket is the read-only entry point, used by inspectors. It never
// mutates ticket state.
func CheckTicket(db *gorm.DB, input model.CheckTripInput) (constants.CheckStatus, *model.Operation, error) {
	var ticket model.Ticket
	err := db.First(&ticket, "id = ?", input.TicketId).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return constants.CheckStatuses[constants.CHECK_NOT_FOUND], nil, nil
	}
	if err != nil {
		return constants.CheckStatus{}, nil, err
	}

	switch ticket.Status {
	case constants.TICKET_ACTIVE:
		if utils.DateBefore(ticket.EndDate, utils.Today()) {
			return constants.CheckStatuses[constants.CHECK_EXPIRED], nil, nil
		}
		return constants.CheckStatuses[constants.CHECK_ACTIVE], nil, nil
	case constants.TICKET_COMPLETED:
		status, trip, err := checkCompletedTicket(db, &ticket, input)
		if err != nil {
			return constants.CheckStatus{}, nil, err
		}
		return constants.CheckStatuses[status], trip, nil
	default:
		return constants.CheckStatuses[constants.CHECK_DISABLED], nil, nil
	}
}

// checkCompletedTicket compares the presented context against the ticket's
// single existing operation. A supplied run number decides alone; without it
// the vehicle number, carrier code and vehicle type must all match. Missing
// context fields fall back to the stored values.
func checkCompletedTicket(db *gorm.DB, ticket *model.Ticket, input model.CheckTripInput) (string, *model.Operation, error) {
	var trip model.Operation
	err := db.Preload("VehicleType").
		Where("ticket_id = ?", ticket.ID).Order("imported").First(&trip).Error
	if err != nil {
		return "", nil, err
	}

	if input.RunNumber != "" {
		if trip.RunNumber == input.RunNumber {
			return constants.CHECK_COMPLETED_HERE, &trip, nil
		}
		return constants.CHECK_COMPLETED_NOT_HERE, &trip, nil
	}

	tripCarrierCode := 0
	if carrier := trip.Carrier(db); carrier != nil {
		tripCarrierCode = carrier.Code
	}
	tripVehicleType := 0
	if trip.VehicleType != nil {
		tripVehicleType = trip.VehicleType.Number
	}

	vehicleNumber := input.VehicleNumber
	if vehicleNumber == "" {
		vehicleNumber = trip.VehicleNumber
	}
	carrierCode := tripCarrierCode
	if input.CarrierCode != nil {
		carrierCode = *input.CarrierCode
	}
	vehicleType := tripVehicleType
	if input.VehicleType != nil {
		vehicleType = *input.VehicleType
	}

	if trip.VehicleNumber == vehicleNumber &&
		carrierCode == tripCarrierCode &&
		vehicleType == tripVehicleType {
		return constants.CHECK_COMPLETED_HERE, &trip, nil
	}
	return constants.CHECK_COMPLETED_NOT_HERE, &trip, nil
}

func checkInputFromTrip(input model.TripInput) model.CheckTripInput {
	vehicleType := input.VehicleType
	return model.CheckTripInput{
		TicketId:      input.TicketId,
		RunNumber:     input.RunNumber,
		VehicleType:   &vehicleType,
		VehicleNumber: input.VehicleNumber,
		RouteNumber:   input.RouteNumber,
	}
}

// LoadTrips applies the redemption protocol to every item independently.
// Items whose ticket is no longer ACTIVE are not mutated, but every item
// still gets a per-item outcome in the response.
func LoadTrips(db *gorm.DB, items []model.TripInput, validator *model.User, workday *model.Workday) ([]model.TripResult, error) {
	results := make([]model.TripResult, 0, len(items))
	for _, item := range items {
		status, _, err := RedeemTicket(db, item, validator, workday)
		if err != nil {
			return nil, err
		}
		results = append(results, model.TripResult{
			TicketId: item.TicketId,
			Code:     status.Code,
			Detail:   status.Detail,
		})
	}
	return results, nil
}

// WriteOffTickets is the nightly sweep: redeemed tickets whose validity
// window has ended move to DISABLED with the disabled timestamp set. ACTIVE
// tickets are never touched here; their expiry stays a read-time decision.
func WriteOffTickets(db *gorm.DB) (int, error) {
	var tickets []model.Ticket
	err := db.Where("status = ? AND end_date < ?", constants.TICKET_COMPLETED, utils.Today()).
		Find(&tickets).Error
	if err != nil {
		return 0, err
	}
	count := 0
	for i := range tickets {
		if err := tickets[i].SetStatus(db, constants.TICKET_DISABLED); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
