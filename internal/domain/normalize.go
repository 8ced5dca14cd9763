package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CollapseSpaces trims text and compresses runs of whitespace into one space.
func CollapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeCity canonicalises a city name to title case ("  karachi " -> "Karachi").
func NormalizeCity(city string) string {
	city = CollapseSpaces(city)
	if city == "" {
		return ""
	}
	return cases.Title(language.English).String(city)
}
