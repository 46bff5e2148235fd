package constants

const (
	ROLE_ADMIN   = "ADMIN"
	ROLE_MANAGER = "MANAGER"
	ROLE_STAFF   = "STAFF"
)

var ROLE = []string{ROLE_ADMIN, ROLE_MANAGER, ROLE_STAFF}

// Order statuses. Transitions are plain field updates.
const (
	ORDER_STATUS_NEW        = "New"
	ORDER_STATUS_IN_KITCHEN = "In Kitchen"
	ORDER_STATUS_ON_THE_WAY = "On the way"
	ORDER_STATUS_DELIVERED  = "Delivered"
	ORDER_STATUS_CANCELLED  = "Cancelled"
)

var ORDER_STATUS = []string{
	ORDER_STATUS_NEW,
	ORDER_STATUS_IN_KITCHEN,
	ORDER_STATUS_ON_THE_WAY,
	ORDER_STATUS_DELIVERED,
	ORDER_STATUS_CANCELLED,
}

const (
	PAYMENT_CASH     = "CASH"
	PAYMENT_CARD     = "CARD"
	PAYMENT_ONLINE   = "ONLINE"
	PAYMENT_PAYCONIQ = "PAYCONIQ"
)

var PAYMENT_METHOD = []string{PAYMENT_CASH, PAYMENT_CARD, PAYMENT_ONLINE, PAYMENT_PAYCONIQ}

// Category kinds select the extras variant a product accepts.
const (
	KIND_PIZZA   = "pizza"
	KIND_SCHOTEL = "schotel"
	KIND_BROODJE = "broodje"
	KIND_OTHER   = "other"
)

var CATEGORY_KIND = []string{KIND_PIZZA, KIND_SCHOTEL, KIND_BROODJE, KIND_OTHER}

// Menu extra types, named after the extras keys they fill.
const (
	EXTRA_VLEES      = "vlees"
	EXTRA_BIJGERECHT = "bijgerecht"
	EXTRA_SAUS       = "saus"
	EXTRA_GARNERING  = "garnering"
)

var EXTRA_TYPE = []string{EXTRA_VLEES, EXTRA_BIJGERECHT, EXTRA_SAUS, EXTRA_GARNERING}

const ORDER_EVENTS_CHANNEL = "pizzeria:orders"

const (
	MISSING_LOGIN_INPUT        = "Username and password are required"
	INVALID_USERNAME           = "Username does not exist"
	INVALID_EMAIL              = "Email does not exist"
	INVALID_PASSWORD           = "Wrong password"
	ACCOUNT_NOT_ACTIVE         = "Account is disabled"
	NOT_ADMIN                  = "Not allowed for this role"
	ROLE_NOT_EXISTS            = "Role does not exist"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Could not read validated input"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter must be a number"
	ERROR_INPUT                = "Invalid input"
	NOT_FOUND_RECORDS          = "Record not found"
	ERROR_CREATE               = "Create failed"
	ERROR_EDIT                 = "Update failed"
	ERROR_DELETE               = "Delete failed"
	CAN_NOT_HASH_PASSWORD      = "Could not hash password"
	PHONE_NUMBER_EXISTS        = "Phone number already registered"
	EMAIL_EXISTS               = "Email already registered"
	USERNAME_EXISTS            = "Username already taken"
	ORDER_WITHOUT_LINES        = "An order needs at least one line"
	ORDER_INVALID_CUSTOMER     = "Customer reference is invalid"
	ORDER_STATUS_NOT_EXISTS    = "Unknown order status"
	PAYMENT_METHOD_NOT_EXISTS  = "Unknown payment method"
	CATEGORY_KIND_NOT_EXISTS   = "Unknown category kind"
	EXTRA_TYPE_NOT_EXISTS      = "Unknown extra type"
	LOGIN_REQUIRED             = "Please log in"
)
