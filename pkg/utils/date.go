package utils

import (
	"strings"
	"time"
)

// DateTimeLayout é o formato de data/hora usado pelo Pipedrive (sempre em UTC)
const DateTimeLayout = "2006-01-02 15:04:05"

var dateTimeLayouts = []string{
	DateTimeLayout,
	time.RFC3339,
	time.DateOnly,
}

// ParseDateTime converte um timestamp do CRM. Valores nulos, vazios ou inválidos resultam em nil.
func ParseDateTime(value *string) *time.Time {
	if value == nil {
		return nil
	}

	s := strings.TrimSpace(*value)
	if s == "" {
		return nil
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return &t
		}
	}

	return nil
}

// FormatDateTime faz o caminho inverso de ParseDateTime
func FormatDateTime(t *time.Time) *string {
	if t == nil {
		return nil
	}

	s := t.UTC().Format(DateTimeLayout)
	return &s
}
