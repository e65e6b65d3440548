package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAdminID   = errors.New("invalid admin ID")
	ErrNegativeBalance  = errors.New("balance cannot be negative")
	ErrNonPositiveDelta = errors.New("amount must be greater than zero")
	ErrInvalidMoney     = errors.New("money values allow at most 12 integer digits and 2 decimal places")

	ErrCourtIDRequired = errors.New("court ID is required")
	ErrAmountRequired  = errors.New("amount is required")
	ErrNegativeAmount  = errors.New("amount cannot be negative")
	ErrDueDateRequired = errors.New("due date is required")
	ErrInvalidMonth    = errors.New("month must be in YYYY-MM format")
	ErrInvalidStatus   = errors.New("invalid service fee status")
	ErrInvalidFeeID    = errors.New("invalid service fee ID")
)
