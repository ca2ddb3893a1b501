package utils

import (
	"regexp"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidatePhone(phone string) bool {
	matched, _ := regexp.MatchString(`^\+?\d{8,15}$`, phone)
	return matched
}

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}
