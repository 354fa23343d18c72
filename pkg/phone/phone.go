// Package phone normalizes and validates Iranian mobile numbers.
package phone

import (
	"errors"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "IR"

var (
	ErrInvalidNumber = errors.New("phone: invalid mobile number")
	ErrNotMobile     = errors.New("phone: number is not a mobile line")
)

// Normalize parses raw as an Iranian number and returns it in E.164 form
// (e.g. "+989121234567"). Accepts local ("0912...") and international input.
func Normalize(raw string) (string, error) {
	num, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		return "", ErrInvalidNumber
	}

	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidNumber
	}

	switch phonenumbers.GetNumberType(num) {
	case phonenumbers.MOBILE, phonenumbers.FIXED_LINE_OR_MOBILE:
	default:
		return "", ErrNotMobile
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// IsValid reports whether raw parses as a valid Iranian mobile number.
func IsValid(raw string) bool {
	_, err := Normalize(raw)
	return err == nil
}

// Local converts an E.164 Iranian number to the local "09..." form used
// by the SMS provider.
func Local(e164 string) (string, error) {
	num, err := phonenumbers.Parse(e164, defaultRegion)
	if err != nil {
		return "", ErrInvalidNumber
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidNumber
	}
	return phonenumbers.Format(num, phonenumbers.NATIONAL), nil
}
