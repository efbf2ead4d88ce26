package validate

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// ErrorKind identifies the rule a value failed.
type ErrorKind string

const (
	KindRequired        ErrorKind = "required"
	KindNotANumber      ErrorKind = "notANumber"
	KindNotPositive     ErrorKind = "notPositive"
	KindAmountTooLarge  ErrorKind = "amountTooLarge"
	KindTooManyDecimals ErrorKind = "tooManyDecimals"
	KindInvalidDate     ErrorKind = "invalidDate"
	KindFutureDate      ErrorKind = "futureDate"
	KindPattern         ErrorKind = "pattern"
	KindTooShort        ErrorKind = "tooShort"
	KindTooLong         ErrorKind = "tooLong"
)

// FieldError reports a single failed rule for a named field.
type FieldError struct {
	Field   string
	Kind    ErrorKind
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Rule checks one constraint against a raw field value. A nil result means
// the value passes. Rules other than Required treat an empty value as passing
// so optional fields stay optional.
type Rule func(value string) *FieldError

// First applies rules in order and returns the first failure, or nil.
func First(value string, rules ...Rule) *FieldError {
	for _, rule := range rules {
		if fieldErr := rule(value); fieldErr != nil {
			return fieldErr
		}
	}
	return nil
}

func Required(field string) Rule {
	return func(value string) *FieldError {
		if value == "" {
			return &FieldError{Field: field, Kind: KindRequired, Message: "is required"}
		}
		return nil
	}
}

func PositiveAmount(field string) Rule {
	return func(value string) *FieldError {
		if value == "" {
			return nil
		}
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return &FieldError{Field: field, Kind: KindNotANumber, Message: "must be a number"}
		}
		if amount.LessThanOrEqual(decimal.Zero) {
			return &FieldError{Field: field, Kind: KindNotPositive, Message: "must be greater than 0"}
		}
		return nil
	}
}

func MaxAmount(field string, max decimal.Decimal) Rule {
	return func(value string) *FieldError {
		if value == "" {
			return nil
		}
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return &FieldError{Field: field, Kind: KindNotANumber, Message: "must be a number"}
		}
		if amount.GreaterThan(max) {
			return &FieldError{Field: field, Kind: KindAmountTooLarge, Message: "must be at most " + max.StringFixed(2)}
		}
		return nil
	}
}

func MaxDecimals(field string, maxPlaces int) Rule {
	return func(value string) *FieldError {
		if value == "" {
			return nil
		}
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return &FieldError{Field: field, Kind: KindNotANumber, Message: "must be a number"}
		}
		if int(-amount.Exponent()) > maxPlaces {
			return &FieldError{
				Field:   field,
				Kind:    KindTooManyDecimals,
				Message: fmt.Sprintf("must have at most %d decimal places", maxPlaces),
			}
		}
		return nil
	}
}

// NotFutureDate rejects calendar dates after today. The whole of today is
// allowed, matching end-of-day semantics elsewhere in the ledger.
func NotFutureDate(field string, now func() time.Time) Rule {
	return func(value string) *FieldError {
		if value == "" {
			return nil
		}
		date, err := time.Parse("2006-01-02", value)
		if err != nil {
			return &FieldError{Field: field, Kind: KindInvalidDate, Message: "must be a date in YYYY-MM-DD format"}
		}
		current := now()
		endOfToday := time.Date(current.Year(), current.Month(), current.Day(), 23, 59, 59, int(time.Millisecond-time.Nanosecond), current.Location())
		if date.After(endOfToday) {
			return &FieldError{Field: field, Kind: KindFutureDate, Message: "must not be in the future"}
		}
		return nil
	}
}

func Pattern(field string, pattern *regexp.Regexp, message string) Rule {
	return func(value string) *FieldError {
		if value == "" {
			return nil
		}
		if !pattern.MatchString(value) {
			return &FieldError{Field: field, Kind: KindPattern, Message: message}
		}
		return nil
	}
}

func LengthBetween(field string, minLen, maxLen int) Rule {
	return func(value string) *FieldError {
		if value == "" {
			return nil
		}
		if len(value) < minLen {
			return &FieldError{Field: field, Kind: KindTooShort, Message: fmt.Sprintf("must be at least %d characters", minLen)}
		}
		if len(value) > maxLen {
			return &FieldError{Field: field, Kind: KindTooLong, Message: fmt.Sprintf("must be at most %d characters", maxLen)}
		}
		return nil
	}
}
