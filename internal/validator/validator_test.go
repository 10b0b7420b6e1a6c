package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type sample struct {
	ISIN       string `validate:"omitempty,isin"`
	Identifier string `validate:"omitempty,security_identifier"`
	Type       string `validate:"omitempty,security_type"`
	Period     string `validate:"periodicity"`
	Country    string `validate:"omitempty,country_code"`
	Status     string `validate:"omitempty,security_status"`
}

func TestCustomValidators(t *testing.T) {
	v := validator.New()
	RegisterOn(v)

	tests := []struct {
		name  string
		in    sample
		valid bool
	}{
		{"full_isin", sample{ISIN: "SN0000002171"}, true},
		{"short_isin", sample{ISIN: "SN2171"}, false},
		{"lowercase_isin", sample{ISIN: "sn0000002171"}, false},
		{"identifier_full", sample{Identifier: "CI0000001234"}, true},
		{"identifier_short", sample{Identifier: "ci 1234"}, true},
		{"identifier_bad", sample{Identifier: "C11234"}, false},
		{"type_oat", sample{Type: "OAT"}, true},
		{"type_unknown", sample{Type: "SUKUK"}, false},
		{"periodicity_semiannual", sample{Period: "S"}, true},
		{"periodicity_unknown", sample{Period: "X"}, false},
		{"country_umoa", sample{Country: "TG"}, true},
		{"country_outside_umoa", sample{Country: "FR"}, false},
		{"status_matured", sample{Status: "matured"}, true},
		{"status_unknown", sample{Status: "deleted"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestNormalizeIdentifier(t *testing.T) {
	if got := NormalizeIdentifier(" sn 2171 "); got != "SN2171" {
		t.Errorf("expected SN2171, got %q", got)
	}
}
