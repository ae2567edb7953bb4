// Package i18n holds the translation catalogs and locale-aware number
// formatting.
package i18n

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Locale identifies a translation catalog.
type Locale string

const (
	Arabic  Locale = "ar"
	English Locale = "en"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = Arabic

// Locales lists the supported locales in display order.
var Locales = []Locale{Arabic, English}

// Direction is the reading direction of a locale.
type Direction string

const (
	RTL Direction = "rtl"
	LTR Direction = "ltr"
)

// ParseLocale validates s as a supported locale.
func ParseLocale(s string) (Locale, error) {
	switch l := Locale(strings.ToLower(strings.TrimSpace(s))); l {
	case Arabic, English:
		return l, nil
	default:
		return "", fmt.Errorf("unsupported locale %q", s)
	}
}

// Direction returns RTL for Arabic and LTR otherwise.
func (l Locale) Direction() Direction {
	if l == Arabic {
		return RTL
	}
	return LTR
}

// Name is the locale's own name for itself.
func (l Locale) Name() string {
	switch l {
	case Arabic:
		return "العربية"
	case English:
		return "English"
	}
	return string(l)
}

// T returns the translation of key in l. Keys missing from l fall back to
// English, then to the key itself.
func (l Locale) T(key string) string {
	if s, ok := catalogs[l][key]; ok {
		return s
	}
	if s, ok := catalogs[English][key]; ok {
		return s
	}
	return key
}

// Tf translates key and formats the result with args.
func (l Locale) Tf(key string, args ...any) string {
	return fmt.Sprintf(l.T(key), args...)
}

// DefaultCurrency is the ISO code amounts are shown in.
const DefaultCurrency = "EGP"

var arabicDigits = strings.NewReplacer(
	"0", "٠", "1", "١", "2", "٢", "3", "٣", "4", "٤",
	"5", "٥", "6", "٦", "7", "٧", "8", "٨", "9", "٩",
	",", "٬", ".", "٫",
)

// FormatNumber groups thousands with the locale's separators.
func (l Locale) FormatNumber(v int64) string {
	s := humanize.Comma(v)
	if l == Arabic {
		return arabicDigits.Replace(s)
	}
	return s
}

// FormatCurrency renders v as an amount of currency with two decimals.
func (l Locale) FormatCurrency(currency string, v float64) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	s := humanize.FormatFloat("#,###.##", v)
	if l == Arabic {
		return arabicDigits.Replace(s) + " " + currencySymbol(currency)
	}
	return currency + " " + s
}

// FormatDecimal renders v with two decimals and no currency.
func (l Locale) FormatDecimal(v float64) string {
	s := humanize.FormatFloat("#,###.##", v)
	if l == Arabic {
		return arabicDigits.Replace(s)
	}
	return s
}

func currencySymbol(code string) string {
	switch code {
	case "EGP":
		return "ج.م."
	case "AED":
		return "د.إ."
	case "SAR":
		return "ر.س."
	}
	return code
}
