package handler

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// maxAmount is the first value that no longer fits a NUMERIC(15,2) column.
var maxAmount = decimal.New(1, 13)

// newValidator returns a validator that reports json field names and
// understands decimal amounts through the decimal_gte0, decimal_gt0 and
// decimal_max tags. decimal_max compares the amount as stored, rounded to cents.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	v.RegisterValidation("decimal_gte0", decimalSign(func(sign int) bool { return sign >= 0 }))
	v.RegisterValidation("decimal_gt0", decimalSign(func(sign int) bool { return sign > 0 }))
	v.RegisterValidation("decimal_max", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return d.Round(2).Abs().LessThan(maxAmount)
	})
	return v
}

func decimalSign(ok func(sign int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return ok(d.Sign())
	}
}

// validationErrors maps each failing field to the rule it broke
func validationErrors(err error) map[string]string {
	out := map[string]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["body"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
