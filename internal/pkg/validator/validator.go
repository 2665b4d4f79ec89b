package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Cedula validation (Panamanian national ID), e.g. "8-123-4567", "PE-12-345",
// "E-8-123456", "N-23-1234".
var cedulaRegex = regexp.MustCompile(`^(PE|E|N|\d{1,2}(AV|PI)?)-\d{1,4}-\d{1,6}$`)

func IsValidCedula(cedula string) bool {
	return cedulaRegex.MatchString(strings.ToUpper(strings.TrimSpace(cedula)))
}

// Period validation: "YYYY-MM" or "YYYY-MM-DD" (the day form marks the
// biweekly split, 15th or last day of month).
var periodRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])(-(0[1-9]|[12]\d|3[01]))?$`)

func IsValidPeriod(period string) bool {
	return periodRegex.MatchString(period)
}

// Year-month validation: strictly "YYYY-MM".
var yearMonthRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

func IsValidYearMonth(period string) bool {
	return yearMonthRegex.MatchString(period)
}

// AreValidMonths reports whether all entries are calendar months 1-12.
// An empty list is valid and means "every month".
func AreValidMonths(months []int) bool {
	for _, m := range months {
		if m < 1 || m > 12 {
			return false
		}
	}
	return true
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// UUIDv7 regex: version 7 (the 15th character must be '7'), all lowercase hex digits.
var uuidv7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUIDv7 validation
func IsValidUUID(uuid string) bool {
	return uuidv7Regex.MatchString(strings.ToLower(uuid))
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// Itoa converts an integer to a string.
func Itoa(i int) string {
	return strconv.Itoa(i)
}
