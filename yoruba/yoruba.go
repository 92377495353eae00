// Package yoruba converts numbers into Yoruba text.
//
// Yoruba counts in base twenty below a thousand, naming numbers additively
// ("mọ́kànlélógún", 20 + 1) or subtractively ("ẹẹ́ẹ́dógún", 20 − 5) around
// irregular anchor words, and switches to borrowed decimal scale words
// (ẹgbẹ̀rún, mílíọ̀nù, …) from a thousand upward. The package provides:
//
//   - Convert for any numeric value with functional options: cardinal,
//     decimal, calendar-year and currency phrasing.
//   - ConvertInt, ConvertYear and ConvertCurrency as plain shortcuts.
//
// Convert accepts all int/uint widths, float32/64, numeric strings (period
// or comma decimal separator), *big.Int, *big.Float and decimal.Decimal.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Named scale words stop at kuintilíọ̀nù (1000^6). Larger magnitudes
//     degrade to an inline "àìlóǹkà" marker, or fail under WithStrictScale.
//   - Word choice varies by context only for 1 and 2, as attested; no
//     further morphological agreement is attempted.
//   - Very large generated phrases favor regularity over dialectal variants
//     (exact tabled forms carry the attested irregulars).
package yoruba

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidInput reports a value that cannot be normalized to a number.
	ErrInvalidInput = errors.New("yoruba: invalid numeric input")

	// ErrUnsupportedMagnitude reports a value past the largest named scale
	// word under WithStrictScale.
	ErrUnsupportedMagnitude = errors.New("yoruba: magnitude beyond supported scale")
)

// Convert returns the Yoruba text for value under the given options.
// Zero returns "òdo". Negative values are prefixed with "òdì" (configurable)
// except in year format, where an era suffix is appended instead.
func Convert(value any, opts ...Option) (string, error) {
	return convertValue(value, applyOptions(opts))
}

// ConvertInt returns the Yoruba cardinal text for n with default options.
// Every int64 is within the named scales, so no error is possible.
func ConvertInt(n int64) string {
	words, _ := convertValue(n, DefaultOptions())
	return words
}

// ConvertYear returns the Yoruba text for calendar year y.
// Negative years gain the era suffix: ConvertYear(-45) ends in "ṣáájú Kristi".
func ConvertYear(y int64) string {
	o := DefaultOptions()
	o.Format = FormatYear
	words, _ := convertValue(y, o)
	return words
}

// ConvertCurrency returns the Yoruba text for the amount in the given
// currency, truncating the fraction to two sub-unit digits.
func ConvertCurrency(amount decimal.Decimal, info CurrencyInfo) (string, error) {
	return Convert(amount, WithCurrencyFormat(info))
}
