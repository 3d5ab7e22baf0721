// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex  = regexp.MustCompile(`^[0-9]{10}$`)
	serialRegex = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	digitsOnly  = regexp.MustCompile(`[^0-9]`)
)

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePhone expects a bare 10-digit local number.
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ValidateTcNo checks an 11-digit Turkish national identity number,
// including its two checksum digits.
func ValidateTcNo(tcNo string) bool {
	tcNo = digitsOnly.ReplaceAllString(tcNo, "")
	if len(tcNo) != 11 || tcNo[0] == '0' {
		return false
	}

	oddSum, evenSum, total := 0, 0, 0
	for i := 0; i < 9; i++ {
		digit := int(tcNo[i] - '0')
		if i%2 == 0 {
			oddSum += digit
		} else {
			evenSum += digit
		}
		total += digit
	}

	digit10 := (oddSum*7 - evenSum) % 10
	if digit10 < 0 {
		digit10 += 10
	}
	digit11 := (total + digit10) % 10

	return int(tcNo[9]-'0') == digit10 && int(tcNo[10]-'0') == digit11
}

// ValidateSerialNumber accepts alphanumeric serials of at least 5 characters.
func ValidateSerialNumber(serial string) bool {
	return len(serial) >= 5 && serialRegex.MatchString(serial)
}

func ValidateRequired(value string) bool {
	return strings.TrimSpace(value) != ""
}
