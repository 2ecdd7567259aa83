package numberutils

import (
	"fmt"
	"strconv"
)

// ToUintWithError converts the given string of digits to a uint.
// Signs, blanks and values that overflow uint are rejected.
func ToUintWithError(str string) (uint, error) {
	if str == "" || !IsDigits(str) {
		return 0, fmt.Errorf("%q is not a number", str)
	}
	value, err := strconv.ParseUint(str, 10, strconv.IntSize)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}

// IsUint checks if the given string can be converted to a uint.
func IsUint(str string) bool {
	_, err := ToUintWithError(str)
	return err == nil
}
