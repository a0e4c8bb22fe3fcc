package utils

import (
	"database/sql"
	"strings"
	"time"

	"energyindicators-migration/config"
)

//FormatNullString returns the string value or "" for NULL
func FormatNullString(nullString sql.NullString) string {
	if nullString.Valid {
		return nullString.String
	}
	return ""
}

//FormatNullStringPointer returns a pointer to the string value or nil for NULL and empty strings
func FormatNullStringPointer(nullString sql.NullString) *string {
	if nullString.Valid && nullString.String != "" {
		return &nullString.String
	}
	return nil
}

//FormatNullIntPointer returns a pointer to the int value or nil for NULL
func FormatNullIntPointer(nullInt sql.NullInt64) *int {
	if nullInt.Valid {
		value := int(nullInt.Int64)
		return &value
	}
	return nil
}

//FormatNullFloat returns the float value or 0.0 for NULL
func FormatNullFloat(nullFloat sql.NullFloat64) float64 {
	if nullFloat.Valid {
		return nullFloat.Float64
	}
	return 0.0
}

//FormatNullDatePointer reduces a nullable timestamp to a date-only string, or nil for NULL
func FormatNullDatePointer(nullTime sql.NullTime) *string {
	if nullTime.Valid {
		dateFormatted := nullTime.Time.Format(config.GetCSVDateLayout())
		return &dateFormatted
	}
	return nil
}

//DateOnlyPointer cuts the time portion off a timestamp string from an extract, or nil when empty.
//Extracts store timestamps as "2006-01-02 15:04:05".
func DateOnlyPointer(value string) *string {
	if value == "" {
		return nil
	}
	dateOnly := strings.SplitN(value, " ", 2)[0]
	return &dateOnly
}

//ParseDate parses a date-only string using the extract layout
func ParseDate(value string) (time.Time, error) {
	return time.Parse(config.GetCSVDateLayout(), value)
}
