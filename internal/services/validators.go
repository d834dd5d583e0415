package services

import (
	"regexp"
	"strings"
	"unicode"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var spaces = regexp.MustCompile(`\s+`)

// NormalizeNationalID strips the dot and comma separators people type in
// national ids.
func NormalizeNationalID(raw string) string {
	return strings.NewReplacer(".", "", ",", "", " ", "").Replace(strings.TrimSpace(raw))
}

// ValidNationalID accepts 7 or 8 digits once separators are removed.
func ValidNationalID(raw string) bool {
	id := NormalizeNationalID(raw)
	return len(id) >= 7 && len(id) <= 8 && digitsOnly(id)
}

// FormatNationalID renders a national id with thousands dots (12.345.678).
func FormatNationalID(raw string) string {
	id := NormalizeNationalID(raw)
	switch len(id) {
	case 7:
		return id[:1] + "." + id[1:4] + "." + id[4:]
	case 8:
		return id[:2] + "." + id[2:5] + "." + id[5:]
	}
	return id
}

// ValidEmail is true for an empty value; email is optional.
func ValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	return email == "" || emailPattern.MatchString(email)
}

// ValidPhone is true for an empty value or 10 to 13 digits after removing
// spaces, dashes and parentheses.
func ValidPhone(phone string) bool {
	phone = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(phone))
	if phone == "" {
		return true
	}
	return len(phone) >= 10 && len(phone) <= 13 && digitsOnly(phone)
}

// cleanText trims and collapses runs of whitespace.
func cleanText(s string) string {
	return spaces.ReplaceAllString(strings.TrimSpace(s), " ")
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
