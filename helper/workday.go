package helper

import (
	"errors"
	"time"

	"ticket_server/constants"
	"ticket_server/model"
	"ticket_server/utils"

	"gorm.io/gorm"
)

var (
	ErrWorkdayAlreadyOpen = errors.New(constants.WORKDAY_ALREADY_OPEN)
	ErrWorkdayNotFound    = errors.New(constants.WORKDAY_NOT_FOUND)
	ErrWorkdayClosed      = errors.New(constants.WORKDAY_ALREADY_CLOSED)
	ErrWorkdayNotOwner    = errors.New(constants.ACCESS_FORBIDDEN)
)

// OpenWorkday starts a shift for the validator. The lookup is advisory; the
// partial unique index on workdays(validator_id) WHERE status = OPEN is what
// rejects the second of two concurrent opens.
func OpenWorkday(db *gorm.DB, validator *model.User) (*model.Workday, error) {
	if validator.CurrentWorkday(db) != nil {
		return nil, ErrWorkdayAlreadyOpen
	}

	workday := model.Workday{
		ValidatorId: &validator.ID,
		Status:      constants.WORKDAY_OPEN,
	}
	if err := db.Create(&workday).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, ErrWorkdayAlreadyOpen
		}
		return nil, err
	}
	return &workday, nil
}

// CloseWorkday reconciles the supplied pending redemptions into the workday
// and seals it. Only the owning validator may close, only once; an empty
// item list is a valid reconciliation payload.
func CloseWorkday(db *gorm.DB, workdayID string, validator *model.User, items []model.TripInput) ([]model.TripResult, error) {
	var results []model.TripResult

	err := db.Transaction(func(tx *gorm.DB) error {
		var workday model.Workday
		err := lockForUpdate(tx).First(&workday, "id = ?", workdayID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkdayNotFound
		}
		if err != nil {
			return err
		}
		if workday.ValidatorId == nil || *workday.ValidatorId != validator.ID {
			return ErrWorkdayNotOwner
		}
		if workday.Status != constants.WORKDAY_OPEN {
			return ErrWorkdayClosed
		}

		results, err = LoadTrips(tx, items, validator, &workday)
		if err != nil {
			return err
		}

		now := time.Now()
		workday.Status = constants.WORKDAY_CLOSED
		workday.Closed = &now
		return tx.Save(&workday).Error
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
