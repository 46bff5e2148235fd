package utils

import "strings"

func IsValidValueOfConstant(value string, constantValues []string) bool {
	for _, r := range constantValues {
		if r == value {
			return true
		}
	}
	return false
}

// IsValidPhone accepts Belgian/Dutch style numbers: 9 to 13 digits, optionally prefixed with +.
func IsValidPhone(phone string) bool {
	phone = NormalizePhone(phone)
	phone = strings.TrimPrefix(phone, "+")
	if len(phone) < 9 || len(phone) > 13 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
