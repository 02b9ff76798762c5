package constants

// -- Error responses --
const (
	NOT_FOUND                = "Object not found"
	USER_NOT_FOUND           = "User not found"
	TOKEN_NOT_FOUND          = "Idempotency token is missing"
	TARIFF_NOT_FOUND         = "Tariff not found"
	TICKET_TYPE_NOT_FOUND    = "Ticket type not found"
	TICKET_NOT_FOUND         = "Ticket not found"
	BAD_REQUEST              = "Invalid input data"
	ACCESS_FORBIDDEN         = "Insufficient permissions"
	STATUS_USER_NOT_ACTIVE   = "User is blocked"
	SETTING_ALREADY_CREATED  = "Setting with this name already exists"
	SETTING_NOT_FOUND        = "Setting not found"
	WORKDAY_ALREADY_OPEN     = "Workday is already open"
	WORKDAY_NOT_FOUND        = "Open workday not found"
	WORKDAY_ALREADY_CLOSED   = "Workday is already closed"
	MAIN_COMPANY_NOT_FOUND   = "Main company is not configured"
	MISSING_LOGIN_INPUT      = "Login and password are required"
	INVALID_LOGIN            = "Unknown login"
	INVALID_PASSWORD         = "Wrong password"
	ERROR_INTERNAL_ERROR     = "Internal server error"
	ERROR_CREATE             = "Failed to create object"
	ERROR_UPDATE             = "Failed to update object"
	TICKETS_PAYLOAD_REQUIRED = "Tickets payload is required"
)

// -- Success responses --
const (
	LOAD_SUCCESS     = "Trips loaded"
	SUCCESS_RESPONSE = "OK"
)
