package constant

const (
	RoleClerk = "Clerk"
	RoleAdmin = "Admin"
)

const (
	BookingTypePassenger = "Passenger"
	BookingTypeLuggage   = "Luggage"
	BookingTypeParcel    = "Parcel"
)

const (
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"
	BookingStatusPending   = "Pending"
)

const (
	PaymentMethodCash        = "Cash"
	PaymentMethodMobileMoney = "Mobile Money"
	PaymentMethodCard        = "Card"

	PaymentStatusCompleted = "Completed"
	PaymentStatusPending   = "Pending"
	PaymentStatusFailed    = "Failed"
)

const (
	TripStatusScheduled = "Scheduled"
	TripStatusInTransit = "In Transit"
	TripStatusCompleted = "Completed"
	TripStatusCancelled = "Cancelled"
)

const (
	DateFormat     = "2006-01-02"
	TimeFormat     = "15:04"
	DateTimeFormat = "2006-01-02 15:04:05"
)

// Session keys in the persisted key-value area.
const (
	SessionKeyUserID     = "user_id"
	SessionKeyUserName   = "user_name"
	SessionKeyUserEmail  = "user_email"
	SessionKeyUserRole   = "user_role"
	SessionKeyIsLoggedIn = "is_logged_in"
	SessionKeyFirstTime  = "first_time"
)

const (
	BookingReferencePrefix     = "SC"
	TransactionReferencePrefix = "TXN"
)

const (
	MinPasswordLength = 6
	PhonePattern      = "^[0-9]{10,13}$"
)

// SQLiteUniqueViolation is the message fragment the driver reports on a
// unique-constraint failure.
const SQLiteUniqueViolation = "UNIQUE constraint failed"

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "id"
	DefaultValueSortDir = "DESC"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelStoreScopeName      = "store"

	OtelQueryAttributeKey = "query"
)

const (
	Empty = ""
)
