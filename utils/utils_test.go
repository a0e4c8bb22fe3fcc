package utils

import (
	"database/sql"
	"testing"
	"time"
)

func TestFormatNullString(t *testing.T) {
	if formatted := FormatNullString(sql.NullString{String: "BRA", Valid: true}); formatted != "BRA" {
		t.Errorf("expected BRA, got %q", formatted)
	}
	if formatted := FormatNullString(sql.NullString{}); formatted != "" {
		t.Errorf("expected empty string for NULL, got %q", formatted)
	}
}

func TestFormatNullStringPointer(t *testing.T) {
	pointer := FormatNullStringPointer(sql.NullString{String: "BRA", Valid: true})
	if pointer == nil || *pointer != "BRA" {
		t.Errorf("expected pointer to BRA, got %v", pointer)
	}
	if FormatNullStringPointer(sql.NullString{}) != nil {
		t.Error("expected nil for NULL")
	}
	//Empty strings behave like NULL
	if FormatNullStringPointer(sql.NullString{String: "", Valid: true}) != nil {
		t.Error("expected nil for an empty string")
	}
}

func TestFormatNullIntPointer(t *testing.T) {
	pointer := FormatNullIntPointer(sql.NullInt64{Int64: 3, Valid: true})
	if pointer == nil || *pointer != 3 {
		t.Errorf("expected pointer to 3, got %v", pointer)
	}
	if FormatNullIntPointer(sql.NullInt64{}) != nil {
		t.Error("expected nil for NULL")
	}
}

func TestFormatNullFloat(t *testing.T) {
	if formatted := FormatNullFloat(sql.NullFloat64{Float64: 700.5, Valid: true}); formatted != 700.5 {
		t.Errorf("expected 700.5, got %v", formatted)
	}
	if formatted := FormatNullFloat(sql.NullFloat64{}); formatted != 0.0 {
		t.Errorf("expected 0.0 for NULL, got %v", formatted)
	}
}

func TestFormatNullDatePointer(t *testing.T) {
	date := time.Date(1984, time.March, 17, 13, 45, 0, 0, time.UTC)
	pointer := FormatNullDatePointer(sql.NullTime{Time: date, Valid: true})
	if pointer == nil || *pointer != "1984-03-17" {
		t.Errorf("expected 1984-03-17, got %v", pointer)
	}
	if FormatNullDatePointer(sql.NullTime{}) != nil {
		t.Error("expected nil for NULL")
	}
}

func TestDateOnlyPointer(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected *string
	}{
		{name: "timestamp", value: "1984-03-17 00:00:00", expected: stringPointer("1984-03-17")},
		{name: "date only", value: "1984-03-17", expected: stringPointer("1984-03-17")},
		{name: "empty", value: "", expected: nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			pointer := DateOnlyPointer(test.value)
			if test.expected == nil {
				if pointer != nil {
					t.Errorf("expected nil, got %q", *pointer)
				}
				return
			}
			if pointer == nil || *pointer != *test.expected {
				t.Errorf("expected %q, got %v", *test.expected, pointer)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2020-12-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if date.Year() != 2020 || date.Month() != time.December || date.Day() != 31 {
		t.Errorf("unexpected date: %v", date)
	}

	_, err = ParseDate("31/12/2020")
	if err == nil {
		t.Error("expected an error for a wrong layout")
	}
}

func stringPointer(value string) *string {
	return &value
}
