package utils

import "errors"

// ErrEmptyValue indicates that a required string value was empty.
var ErrEmptyValue = errors.New("value must not be empty")

// CheckNonEmptyStrings verifies that none of the provided values is an empty string.
func CheckNonEmptyStrings(values ...string) error {
	for _, value := range values {
		if value == "" {
			return ErrEmptyValue
		}
	}
	return nil
}
