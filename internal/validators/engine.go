package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

// Money columns are NUMERIC(14,2): at most 12 integer digits and 2 decimals.
const (
	moneyScale  = 2
	moneyDigits = 14
)

var moneyLimit = decimal.New(1, moneyDigits-moneyScale)

// structEngine returns the shared validator instance. decimal.Decimal values
// are presented to the validator as float64 so numeric tags (gte, gt) apply
// to money fields. Custom tags:
//
//	money        fits NUMERIC(14,2) without rounding
//	nonzerotime  time.Time other than 0001-01-01T00:00:00Z
func structEngine() *validator.Validate {
	engineOnce.Do(func() {
		engine = validator.New(validator.WithRequiredStructEnabled())
		engine.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		// both names are constants, registration cannot fail
		_ = engine.RegisterValidation("money", validMoney)
		_ = engine.RegisterValidation("nonzerotime", nonZeroTime)
	})

	return engine
}

// IsMoney reports whether d can be stored as NUMERIC(14,2) unchanged.
func IsMoney(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(moneyScale)) && d.Abs().LessThan(moneyLimit)
}

// validMoney reads the decimal from the parent struct: fl.Field() only holds
// the float64 produced by decimalValue, which has lost the scale.
func validMoney(fl validator.FieldLevel) bool {
	parent := reflect.Indirect(fl.Parent())
	if parent.Kind() != reflect.Struct {
		return false
	}

	field := reflect.Indirect(parent.FieldByName(fl.StructFieldName()))
	if !field.IsValid() {
		return false
	}

	d, ok := field.Interface().(decimal.Decimal)
	return ok && IsMoney(d)
}

func nonZeroTime(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	return ok && !t.IsZero()
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// fieldErrors maps "<StructField>.<tag>" to a sentinel error. A missing tag
// entry falls back to "<StructField>".
type fieldErrors map[string]error

// validateStruct runs the tag rules of obj. When fields are given, only those
// struct fields are checked.
func validateStruct(ctx context.Context, obj any, mapping fieldErrors, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = structEngine().StructCtx(ctx, obj)
	} else {
		err = structEngine().StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	first := validationErrors[0]
	if mapped, ok := mapping[first.StructField()+"."+first.Tag()]; ok {
		return mapped
	}
	if mapped, ok := mapping[first.StructField()]; ok {
		return mapped
	}

	return fmt.Errorf("%w: %s", ErrUnknownField, first.Error())
}
