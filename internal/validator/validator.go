// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	isinRegex      = regexp.MustCompile(`^[A-Z]{2}\d{10}$`)
	shortCodeRegex = regexp.MustCompile(`^[A-Z]{2}\d{4}$`)
)

// umoaCountries contains the ISIN prefixes of the UMOA member states.
var umoaCountries = map[string]bool{
	"BF": true, "BJ": true, "CI": true, "GW": true,
	"ML": true, "NE": true, "SN": true, "TG": true,
}

// NormalizeIdentifier upper-cases identifier and strips whitespace.
func NormalizeIdentifier(identifier string) string {
	return strings.ToUpper(strings.Join(strings.Fields(identifier), ""))
}

// IsISIN reports whether s is a full ISIN (two letters and ten digits).
func IsISIN(s string) bool {
	return isinRegex.MatchString(s)
}

// IsShortCode reports whether s is a shorthand code (two letters and the
// last four digits of the ISIN).
func IsShortCode(s string) bool {
	return shortCodeRegex.MatchString(s)
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("isin", validateISIN)
	_ = v.RegisterValidation("security_identifier", validateSecurityIdentifier)
	_ = v.RegisterValidation("security_type", validateSecurityType)
	_ = v.RegisterValidation("periodicity", validatePeriodicity)
	_ = v.RegisterValidation("country_code", validateCountryCode)
	_ = v.RegisterValidation("security_status", validateSecurityStatus)
}

func validateISIN(fl validator.FieldLevel) bool {
	return IsISIN(fl.Field().String())
}

func validateSecurityIdentifier(fl validator.FieldLevel) bool {
	id := NormalizeIdentifier(fl.Field().String())
	return IsISIN(id) || IsShortCode(id)
}

func validateSecurityType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "OAT", "BAT":
		return true
	}
	return false
}

func validatePeriodicity(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "A", "S", "T", "M":
		return true
	}
	return false
}

func validateCountryCode(fl validator.FieldLevel) bool {
	return umoaCountries[strings.ToUpper(fl.Field().String())]
}

func validateSecurityStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "active", "matured", "redeemed":
		return true
	}
	return false
}
