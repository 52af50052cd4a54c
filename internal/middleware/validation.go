package middleware

import (
	"errors"
	"time"
	"unicode/utf8"
)

// ValidateSearchTerm validates a free-text search term.
func ValidateSearchTerm(term string) error {
	if len(term) > 256 {
		return errors.New("search term exceeds maximum length")
	}
	if !utf8.ValidString(term) {
		return errors.New("search term must be valid UTF-8")
	}
	return nil
}

// ValidateDate validates a YYYY-MM-DD filter bound. Empty is allowed.
func ValidateDate(date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errors.New("date must be formatted YYYY-MM-DD")
	}
	return nil
}

// ValidateCompany validates a company filter value.
func ValidateCompany(company string) error {
	if len(company) > 128 {
		return errors.New("company exceeds maximum length")
	}
	if !utf8.ValidString(company) {
		return errors.New("company must be valid UTF-8")
	}
	return nil
}

// ValidateUsername validates a login username.
func ValidateUsername(username string) error {
	if username == "" {
		return errors.New("username cannot be empty")
	}
	if len(username) > 64 {
		return errors.New("username exceeds maximum length")
	}
	return nil
}
