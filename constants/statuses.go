package constants

// Integer status values are part of the wire/storage contract and must not be
// renumbered.

// User statuses.
const (
	USER_NEW     = 0
	USER_ACTIVE  = 1
	USER_BLOCKED = 2
	USER_DELETED = 3
)

// User roles.
const (
	ROLE_ADMIN     = 0
	ROLE_AGENT     = 2
	ROLE_SELLER    = 3
	ROLE_CARRIER   = 4
	ROLE_INSPECTOR = 5
	ROLE_VALIDATOR = 6
)

// Company categories.
const (
	COMPANY_MAIN    = 0
	COMPANY_AGENT   = 1
	COMPANY_CARRIER = 2
)

// Company statuses mirror user statuses.
const (
	COMPANY_NEW     = 0
	COMPANY_ACTIVE  = 1
	COMPANY_BLOCKED = 2
	COMPANY_DELETED = 3
)

// Ticket statuses. A ticket only moves forward: ACTIVE -> COMPLETED -> DISABLED.
const (
	TICKET_ACTIVE    = 1
	TICKET_COMPLETED = 2
	TICKET_DISABLED  = 3
)

// Ticket type / tariff statuses.
const (
	TYPE_ACTIVE   = 1
	TYPE_BLOCKED  = 2
	TYPE_DISABLED = 3
)

// Workday statuses.
const (
	WORKDAY_OPEN   = 1
	WORKDAY_CLOSED = 2
)

// Operation types. Only TRIP exists today.
const (
	OPERATION_TRIP = 0
)

// CheckStatus is the fixed (code, detail) pair returned by the redemption
// protocol. The codes are a wire-visible contract with field devices.
type CheckStatus struct {
	Code   int    `json:"code"`
	Detail string `json:"detail"`
}

// Redemption / check outcomes.
const (
	CHECK_ACTIVE             = "ACTIVE"
	CHECK_COMPLETED          = "COMPLETED"
	CHECK_COMPLETED_HERE     = "COMPLETED_HERE"
	CHECK_COMPLETED_NOT_HERE = "COMPLETED_NOT_HERE"
	CHECK_EXPIRED            = "EXPIRED"
	CHECK_DISABLED           = "DISABLED"
	CHECK_NOT_FOUND          = "NOT_FOUND"
)

// CheckStatuses maps an outcome to its wire code and human-readable detail.
var CheckStatuses = map[string]CheckStatus{
	CHECK_ACTIVE:             {Code: 600, Detail: "Ticket is not redeemed"},
	CHECK_COMPLETED:          {Code: 601, Detail: "Ticket redeemed"},
	CHECK_COMPLETED_HERE:     {Code: 602, Detail: "Ticket was redeemed earlier on this run"},
	CHECK_COMPLETED_NOT_HERE: {Code: 603, Detail: "Ticket was redeemed on another run"},
	CHECK_EXPIRED:            {Code: 604, Detail: "Ticket expired"},
	CHECK_DISABLED:           {Code: 605, Detail: "Ticket is not valid"},
	CHECK_NOT_FOUND:          {Code: 606, Detail: "Ticket not found"},
}
