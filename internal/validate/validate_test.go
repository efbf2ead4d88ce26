package validate

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
}

func TestFirst_FirstFailingRuleWins(t *testing.T) {
	fieldErr := First("", Required("amount"), PositiveAmount("amount"))

	assert.NotNil(t, fieldErr)
	assert.Equal(t, KindRequired, fieldErr.Kind)
	assert.Equal(t, "amount", fieldErr.Field)
}

func TestFirst_AllRulesPass(t *testing.T) {
	fieldErr := First("12.50", Required("amount"), PositiveAmount("amount"), MaxDecimals("amount", 2))

	assert.Nil(t, fieldErr)
}

func TestRequired(t *testing.T) {
	assert.NotNil(t, Required("name")(""))
	assert.Nil(t, Required("name")("x"))
}

func TestPositiveAmount(t *testing.T) {
	rule := PositiveAmount("amount")

	assert.Nil(t, rule(""), "empty values skip non-required rules")
	assert.Nil(t, rule("0.01"))

	fieldErr := rule("abc")
	assert.NotNil(t, fieldErr)
	assert.Equal(t, KindNotANumber, fieldErr.Kind)

	fieldErr = rule("0")
	assert.NotNil(t, fieldErr)
	assert.Equal(t, KindNotPositive, fieldErr.Kind)

	fieldErr = rule("-5.00")
	assert.NotNil(t, fieldErr)
	assert.Equal(t, KindNotPositive, fieldErr.Kind)
}

func TestMaxAmount(t *testing.T) {
	rule := MaxAmount("fareAmount", decimal.RequireFromString("999999.99"))

	assert.Nil(t, rule("999999.99"))

	fieldErr := rule("1000000.00")
	assert.NotNil(t, fieldErr)
	assert.Equal(t, KindAmountTooLarge, fieldErr.Kind)
}

func TestMaxDecimals(t *testing.T) {
	rule := MaxDecimals("amount", 2)

	assert.Nil(t, rule("10"))
	assert.Nil(t, rule("10.5"))
	assert.Nil(t, rule("10.55"))

	fieldErr := rule("10.555")
	assert.NotNil(t, fieldErr)
	assert.Equal(t, KindTooManyDecimals, fieldErr.Kind)
}

func TestNotFutureDate(t *testing.T) {
	rule := NotFutureDate("serviceDate", fixedNow)

	assert.Nil(t, rule("2026-03-15"), "the whole of today is allowed")
	assert.Nil(t, rule("2026-03-14"))

	fieldErr := rule("2026-03-16")
	assert.NotNil(t, fieldErr)
	assert.Equal(t, KindFutureDate, fieldErr.Kind)

	fieldErr = rule("15/03/2026")
	assert.NotNil(t, fieldErr)
	assert.Equal(t, KindInvalidDate, fieldErr.Kind)
}

func TestPattern(t *testing.T) {
	rule := Pattern("rideId", regexp.MustCompile(`^[A-Z0-9-]+$`), "bad format")

	assert.Nil(t, rule("RIDE-2026-001"))

	fieldErr := rule("ride_001")
	assert.NotNil(t, fieldErr)
	assert.Equal(t, KindPattern, fieldErr.Kind)
	assert.Equal(t, "rideId: bad format", fieldErr.Error())
}

func TestLengthBetween(t *testing.T) {
	rule := LengthBetween("description", 5, 10)

	assert.Nil(t, rule("hello"))

	fieldErr := rule("hi")
	assert.NotNil(t, fieldErr)
	assert.Equal(t, KindTooShort, fieldErr.Kind)

	fieldErr = rule("hello world!")
	assert.NotNil(t, fieldErr)
	assert.Equal(t, KindTooLong, fieldErr.Kind)
}
