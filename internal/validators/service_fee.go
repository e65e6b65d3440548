package validators

import (
	"context"

	"github.com/MKhiriev/court-fund/models"
)

// Field name constants accepted by ServiceFeeValidator.Validate.
const (
	FieldCourtID = "CourtID"
	FieldDueDate = "DueDate"
	FieldMonth   = "Month"
	FieldStatus  = "Status"
)

var serviceFeeFieldErrors = fieldErrors{
	"CourtID.required": ErrCourtIDRequired,
	"CourtID":          ErrCourtIDRequired,
	"Amount.required":  ErrAmountRequired,
	"Amount.money":     ErrInvalidMoney,
	"Amount":           ErrNegativeAmount,
	"DueDate":          ErrDueDateRequired,
	"Month":            ErrInvalidMonth,
	"Status":           ErrInvalidStatus,
}

// ServiceFeeValidator implements Validator for service fee requests:
// models.CreateServiceFeeRequest and models.UpdateFeeStatusRequest.
//
// A create request must carry court_id, amount and due_date; month, when
// present, must look like "2025-06"; status, when present, must be one of
// pending, completed or overdue.
type ServiceFeeValidator struct{}

// NewServiceFeeValidator constructs a new ServiceFeeValidator
// and returns it as the Validator interface.
func NewServiceFeeValidator() Validator {
	return &ServiceFeeValidator{}
}

func (v *ServiceFeeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateServiceFeeRequest:
		return validateStruct(ctx, value, serviceFeeFieldErrors, fields...)
	case *models.CreateServiceFeeRequest:
		return validateStruct(ctx, *value, serviceFeeFieldErrors, fields...)

	case models.UpdateFeeStatusRequest:
		return v.validateStatusUpdate(ctx, value, fields...)
	case *models.UpdateFeeStatusRequest:
		return v.validateStatusUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ServiceFeeValidator) validateStatusUpdate(ctx context.Context, req models.UpdateFeeStatusRequest, fields ...string) error {
	if req.ID <= 0 {
		return ErrInvalidFeeID
	}

	return validateStruct(ctx, req, serviceFeeFieldErrors, fields...)
}
