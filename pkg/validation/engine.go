package validation

import (
	"math"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/angelmondragon/applestore-backend/pkg/enums"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	TagNotBlank      = "notblank"
	TagEmail         = "storeemail"
	TagTimestamp     = "timestamp"
	TagFinite        = "finite"
	TagInvoiceStatus = "invoicestatus"
)

// emailPattern is deliberately permissive: a@b.c passes, a@b does not.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// timestampLayouts are the date shapes accepted on invoices, tried in order.
// They cover the ECMAScript date time string forms (year, year-month, date,
// minute or second precision, Z or numeric offset with or without a colon)
// plus the common RFC 1123 and long forms. Fractional seconds after the
// seconds field parse under any layout that has seconds.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-01",
	"2006",
	time.RFC1123Z,
	time.RFC1123,
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	"Jan 2 2006",
	"January 2, 2006",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	mustRegister(v, TagNotBlank, validators.NotBlank)
	mustRegister(v, TagEmail, func(fl validator.FieldLevel) bool {
		return ValidateEmail(fl.Field().String())
	})
	mustRegister(v, TagTimestamp, func(fl validator.FieldLevel) bool {
		_, ok := ParseTimestamp(fl.Field().String())
		return ok
	})
	mustRegister(v, TagFinite, func(fl validator.FieldLevel) bool {
		f := fl.Field()
		switch f.Kind() {
		case reflect.Float32, reflect.Float64:
			val := f.Float()
			return !math.IsNaN(val) && !math.IsInf(val, 0)
		}
		return true
	})
	mustRegister(v, TagInvoiceStatus, func(fl validator.FieldLevel) bool {
		return enums.InvoiceStatus(fl.Field().String()).IsValid()
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Struct runs the shared validator, custom store tags included, over any
// tagged struct. Field names in the returned errors use json names.
func Struct(value any) error {
	return validate.Struct(value)
}

// ValidateEmail reports whether value, once trimmed, looks like local@domain.tld.
func ValidateEmail(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}
	return emailPattern.MatchString(trimmed)
}

// ParseTimestamp parses an invoice date into a point in time.
func ParseTimestamp(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, trimmed); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
