package validators

import (
	"github.com/go-playground/validator/v10"
)

// IsGeometryToken reports whether token is an xrandr geometry of the form
// WIDTHxHEIGHT+X+Y with signed offsets, e.g. "1920x1080+0+0" or
// "1280x800-1280+0". Plain mode tokens such as "1920x1080" do not qualify.
func IsGeometryToken(token string) bool {
	rest, ok := consumeDigits(token)
	if !ok {
		return false
	}
	if len(rest) == 0 || rest[0] != 'x' {
		return false
	}
	rest, ok = consumeDigits(rest[1:])
	if !ok {
		return false
	}
	rest, ok = consumeSignedNumber(rest)
	if !ok {
		return false
	}
	rest, ok = consumeSignedNumber(rest)
	if !ok {
		return false
	}
	return len(rest) == 0
}

// GeometryValidation validates geometry fields on display models. Empty values
// are excused through the omitempty tag on the caller side.
func GeometryValidation(fl validator.FieldLevel) bool {
	return IsGeometryToken(fl.Field().String())
}

// consumeDigits strips one or more leading ASCII digits and returns the rest.
func consumeDigits(s string) (string, bool) {
	if len(s) == 0 || !isDigit(s[0]) {
		return s, false
	}
	i := 1
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[i:], true
}

// consumeSignedNumber strips a sign followed by one or more digits.
func consumeSignedNumber(s string) (string, bool) {
	if len(s) == 0 || (s[0] != '+' && s[0] != '-') {
		return s, false
	}
	return consumeDigits(s[1:])
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
