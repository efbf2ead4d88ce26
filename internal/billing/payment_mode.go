package billing

import (
	"errors"
	"fmt"
)

// PaymentMode is how a payment was tendered. The wire representation is
// pinned to these string tags; an earlier contract revision briefly used the
// integer codes 1/2/3, which ParsePaymentMode still accepts on input for
// compatibility with stored values. Output is always the string tag.
type PaymentMode string

const (
	PaymentModeCash         PaymentMode = "Cash"
	PaymentModeCard         PaymentMode = "Card"
	PaymentModeBankTransfer PaymentMode = "BankTransfer"
)

var ErrUnknownPaymentMode = errors.New("unknown payment mode")

func ParsePaymentMode(s string) (PaymentMode, error) {
	switch s {
	case string(PaymentModeCash), "1":
		return PaymentModeCash, nil
	case string(PaymentModeCard), "2":
		return PaymentModeCard, nil
	case string(PaymentModeBankTransfer), "3":
		return PaymentModeBankTransfer, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPaymentMode, s)
}
