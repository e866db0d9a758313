package services

import (
	"fmt"
	"route-roster-service/internal/domain"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale holds the calendar names used to label rosters and reports.
type Locale struct {
	Tag      language.Tag
	months   [12]string
	weekdays [7]string
}

var locales = map[string]Locale{
	"es": {
		Tag: language.LatinAmericanSpanish,
		months: [12]string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		weekdays: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	},
	"en": {
		Tag: language.AmericanEnglish,
		months: [12]string{
			"january", "february", "march", "april", "may", "june",
			"july", "august", "september", "october", "november", "december",
		},
		weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	},
}

// LookupLocale returns the locale for a language code ("es", "en").
func LookupLocale(code string) (Locale, error) {
	l, ok := locales[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return Locale{}, fmt.Errorf("unsupported locale %q", code)
	}
	return l, nil
}

// MonthLabel returns e.g. "Julio 2025".
func (l Locale) MonthLabel(year int, month time.Month) string {
	raw := fmt.Sprintf("%s %d", l.months[month-1], year)
	return cases.Title(l.Tag).String(raw)
}

// DayLabel returns the abbreviated weekday and day of month, e.g. "vie 25".
func (l Locale) DayLabel(d domain.Date) string {
	return fmt.Sprintf("%s %d", l.weekdays[d.Weekday()], d.D)
}

// Money formats an amount with the locale's digit grouping.
func (l Locale) Money(v float64) string {
	return message.NewPrinter(l.Tag).Sprintf("$%.2f", v)
}
