package domain

import "fmt"

// ErrorKind classifies a business error for transport mapping.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindConflict
	KindBadRequest
	KindUnauthorized
	KindForbidden
)

// Error is a business-rule failure with a machine-readable code. The code
// travels verbatim to API clients; the kind decides the HTTP status.
type Error struct {
	Kind ErrorKind
	Code string
}

func (e *Error) Error() string { return e.Code }

func NotFound(code string) *Error     { return &Error{Kind: KindNotFound, Code: code} }
func Conflict(code string) *Error     { return &Error{Kind: KindConflict, Code: code} }
func BadRequest(code string) *Error   { return &Error{Kind: KindBadRequest, Code: code} }
func Unauthorized(code string) *Error { return &Error{Kind: KindUnauthorized, Code: code} }
func Forbidden(code string) *Error    { return &Error{Kind: KindForbidden, Code: code} }

var (
	// Not found
	ErrUserNotFound        = NotFound("USER_NOT_FOUND")
	ErrClientNotFound      = NotFound("CLIENT_NOT_FOUND")
	ErrDeviceNotFound      = NotFound("DEVICE_NOT_FOUND")
	ErrProductNotFound     = NotFound("PRODUCT_NOT_FOUND")
	ErrProductUnitNotFound = NotFound("PRODUCT_UNIT_NOT_FOUND")
	ErrChipTypeNotFound    = NotFound("CHIP_TYPE_NOT_FOUND")
	ErrRentalNotFound      = NotFound("RENTAL_NOT_FOUND")
	ErrChipTypeNotInRental = NotFound("CHIP_TYPE_NOT_IN_RENTAL")

	// Conflicts (unique constraints)
	ErrEmailExists             = Conflict("EMAIL_ALREADY_EXISTS")
	ErrCodeSportmaniacsExists  = Conflict("CODE_SPORTMANIACS_ALREADY_EXISTS")
	ErrManufactoringCodeExists = Conflict("MANUFACTORING_CODE_ALREADY_EXISTS")
	ErrSerialNumberExists      = Conflict("SERIAL_NUMBER_ALREADY_EXISTS")
	ErrChipTypeNameExists      = Conflict("CHIP_TYPE_NAME_ALREADY_EXISTS")

	// A serializable transaction lost to a concurrent one. Surfaced to the
	// caller as retryable; never retried internally because a retry would
	// have to re-run the availability checks anyway.
	ErrSerializationConflict = Conflict("CONCURRENT_MODIFICATION")

	// Validation / business rules
	ErrQuantityMustBePositive      = BadRequest("QUANTITY_MUST_BE_POSITIVE")
	ErrNotEnoughAvailableQuantity  = BadRequest("NOT_ENOUGH_AVAILABLE_QUANTITY")
	ErrNotEnoughInRepairQuantity   = BadRequest("NOT_ENOUGH_IN_REPAIR_QUANTITY")
	ErrNotEnoughRentedQuantity     = BadRequest("NOT_ENOUGH_RENTED_QUANTITY")
	ErrNotEnoughProductQuantity    = BadRequest("NOT_ENOUGH_PRODUCT_QUANTITY")
	ErrTotalQuantityBelowUsed      = BadRequest("TOTAL_QUANTITY_BELOW_USED")
	ErrDeviceNotAvailable          = BadRequest("DEVICE_NOT_AVAILABLE")
	ErrDeviceNotAvailableForRental = BadRequest("DEVICE_NOT_AVAILABLE_FOR_RENTAL")
	ErrProductUnitNotAvailable     = BadRequest("PRODUCT_UNIT_NOT_AVAILABLE")
	ErrInvalidChipRange            = BadRequest("INVALID_CHIP_RANGE")
	ErrRentalNotActive             = BadRequest("RENTAL_NOT_ACTIVE")
	ErrCSVEmpty                    = BadRequest("CSV_EMPTY")
	ErrCSVInvalidColumns           = BadRequest("CSV_INVALID_COLUMNS")
	ErrCSVParse                    = BadRequest("CSV_PARSE_ERROR")

	// Auth
	ErrInvalidCredentials = Unauthorized("INVALID_CREDENTIALS")
	ErrAccountInactive    = Unauthorized("ACCOUNT_INACTIVE")
	ErrInvalidToken       = Unauthorized("INVALID_TOKEN")
	ErrAdminRequired      = Forbidden("ADMIN_ROLE_REQUIRED")
)

// CSVInvalidChipValue reports a non-numeric chip value at the given 1-based
// CSV row; the header line is row 1.
func CSVInvalidChipValue(row int) *Error {
	return BadRequest(fmt.Sprintf("CSV_INVALID_CHIP_VALUE_AT_ROW_%d", row))
}
