package models

import "sort"

// Countries maps the UMOA member state codes used as ISIN prefixes to their
// names.
var Countries = map[string]string{
	"BF": "Burkina Faso",
	"BJ": "Bénin",
	"CI": "Côte d'Ivoire",
	"GW": "Guinée-Bissau",
	"ML": "Mali",
	"NE": "Niger",
	"SN": "Sénégal",
	"TG": "Togo",
}

// CountryName returns the member state name for code, or code itself when
// it is unknown.
func CountryName(code string) string {
	if name, ok := Countries[code]; ok {
		return name
	}
	return code
}

// IsCountryCode reports whether code is a UMOA member state.
func IsCountryCode(code string) bool {
	_, ok := Countries[code]
	return ok
}

// CountryCodes returns the member state codes in alphabetical order.
func CountryCodes() []string {
	codes := make([]string, 0, len(Countries))
	for code := range Countries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
