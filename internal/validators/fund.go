package validators

import (
	"context"

	"github.com/MKhiriev/court-fund/models"
)

// Field name constants accepted by FundValidator.Validate to restrict
// validation to a subset of fields.
const (
	// FieldAdminID targets the owner of a fund.
	FieldAdminID = "AdminID"

	// FieldBalance targets the fund balance.
	FieldBalance = "Balance"

	// FieldAmount targets the amount of a deposit or withdrawal.
	FieldAmount = "Amount"
)

var fundFieldErrors = fieldErrors{
	"AdminID":       ErrInvalidAdminID,
	"Balance.money": ErrInvalidMoney,
	"Balance":       ErrNegativeBalance,
	"Amount.money":  ErrInvalidMoney,
	"Amount":        ErrNonPositiveDelta,
}

// FundValidator implements Validator for models.Fund and
// models.BalanceChangeRequest, in value and pointer form.
type FundValidator struct{}

// NewFundValidator constructs a new FundValidator
// and returns it as the Validator interface.
func NewFundValidator() Validator {
	return &FundValidator{}
}

// Validate dispatches on the dynamic type of obj.
// Returns ErrUnsupportedType for anything else.
func (v *FundValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Fund:
		return validateStruct(ctx, value, fundFieldErrors, fields...)
	case *models.Fund:
		return validateStruct(ctx, *value, fundFieldErrors, fields...)

	case models.BalanceChangeRequest:
		return validateStruct(ctx, value, fundFieldErrors, fields...)
	case *models.BalanceChangeRequest:
		return validateStruct(ctx, *value, fundFieldErrors, fields...)

	default:
		return ErrUnsupportedType
	}
}
