package http

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/MUNTAZIR1234/Invoice/internal/application/dto"
	"github.com/MUNTAZIR1234/Invoice/internal/application/usecase"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/billing"
)

// NewValidator builds the request validator: JSON field names in errors,
// decimal amounts compared as numbers and the rrggbb colour tag.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			if !billing.AmountInRange(d) {
				if d.IsNegative() {
					return math.Inf(-1)
				}
				return math.Inf(1)
			}
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("rrggbb", func(fl validator.FieldLevel) bool {
		return usecase.IsValidHexColor(fl.Field().String())
	})
	return v
}

// bindJSON parses the body into out and validates it. A non-nil result is
// the 400 body to send back.
func bindJSON(c *fiber.Ctx, v *validator.Validate, out interface{}) *dto.ErrorResponse {
	if err := c.BodyParser(out); err != nil {
		return &dto.ErrorResponse{Code: "INVALID_BODY", Message: "request body is not valid JSON"}
	}
	return validate(v, out)
}

func validate(v *validator.Validate, in interface{}) *dto.ErrorResponse {
	if err := v.Struct(in); err != nil {
		resp := formatValidationErrors(err)
		return &resp
	}
	return nil
}

func formatValidationErrors(err error) dto.ErrorResponse {
	resp := dto.ErrorResponse{Code: "VALIDATION", Message: "request validation failed"}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		resp.Message = err.Error()
		return resp
	}
	for _, e := range verrs {
		resp.Fields = append(resp.Fields, dto.FieldError{
			Field:   fieldPath(e),
			Message: getValidationMessage(e),
		})
	}
	return resp
}

// fieldPath drops the struct name: "InvoiceRequest.items[0].amount" -> "items[0].amount".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Minimum length is %s", e.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", e.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", e.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", e.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", e.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", e.Param())
	case "datetime":
		return "Must be a date in YYYY-MM-DD format"
	case "rrggbb":
		return "Must be a colour in #rrggbb format"
	default:
		return fmt.Sprintf("Failed validation: %s", e.Tag())
	}
}
