// Top-level formatting: sign, zero, decimal, currency and year assembly.
package yoruba

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vemines/num2text/internal/yotext"
)

const growFraction = 128 // estimated bytes for a decimal conversion

// convertValue normalizes value and dispatches on the configured format.
func convertValue(value any, o Options) (string, error) {
	d, class := normalize(value)
	switch class {
	case numNaN, numBad:
		if o.Fallback != "" {
			return o.Fallback, nil
		}
		return "", fmt.Errorf("%w: cannot convert %T", ErrInvalidInput, value)
	case numPosInf:
		return finish(wordInfinity, o), nil
	case numNegInf:
		return finish(wordNegInfinity, o), nil
	}

	var (
		words string
		err   error
	)
	switch o.Format {
	case FormatYear:
		words, err = formatYear(d, o)
	case FormatCurrency:
		words, err = formatCurrency(d, o)
	default:
		words, err = formatCardinal(d, o)
	}
	if err != nil {
		return "", err
	}
	return finish(words, o), nil
}

func finish(words string, o Options) string {
	if o.ASCII {
		return yotext.Fold(words)
	}
	return words
}

// formatCardinal spells a plain number: integer part, then each fractional
// digit individually after the separator word. Trailing fraction zeros are
// trimmed. The NegYearDec forms of 1 and 2 apply to negative values and to
// values with a fractional remainder.
func formatCardinal(d decimal.Decimal, o Options) (string, error) {
	neg := d.IsNegative()
	abs := d.Abs()
	frac := fracDigits(abs)

	ctx := ctxStandalone
	if neg || frac != "" {
		ctx = ctxNegYearDec
	}

	words, err := spellInteger(abs.BigInt(), ctx, o.StrictScale)
	if err != nil {
		return "", err
	}

	if frac != "" {
		sep := wordPoint
		if o.Style == DecimalComma {
			sep = wordComma
		}
		var b strings.Builder
		b.Grow(growFraction)
		b.WriteString(words)
		b.WriteByte(' ')
		b.WriteString(sep)
		for _, ch := range frac {
			b.WriteByte(' ')
			b.WriteString(digits[ch-'0'])
		}
		words = b.String()
	}

	if neg {
		words = o.NegativePrefix + " " + words
	}
	return words, nil
}

// fracDigits returns the fractional digits of d with trailing zeros trimmed,
// or "" when the fractional remainder is zero. A non-zero remainder never
// trims to nothing; the guard keeps a single zero digit if it ever would.
func fracDigits(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return ""
	}
	s := d.String()
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return ""
	}
	fd := strings.TrimRight(s[i+1:], "0")
	if fd == "" {
		fd = "0"
	}
	return fd
}

// formatYear spells a calendar year: truncated to an integer, absolute value
// in NegYearDec context, era suffix for negative years. Hand-fixed historical
// phrasings win over the general algorithm.
func formatYear(d decimal.Decimal, o Options) (string, error) {
	y := d.Truncate(0)
	neg := y.IsNegative()
	abs := y.Abs().BigInt()

	var words string
	if abs.IsInt64() {
		words = yearOverrides[abs.Int64()]
	}
	if words == "" {
		w, err := spellInteger(abs, ctxNegYearDec, o.StrictScale)
		if err != nil {
			return "", err
		}
		words = w
	}

	if neg {
		words += " " + wordEraSuffix
	}
	return words, nil
}

// formatCurrency splits the amount into an integer main unit and a two-digit
// sub-unit (truncated, or rounded under o.Round), spells each with its unit
// name and joins them with the configured separator. The unit name precedes
// the number exactly when the quantity is 1 or 2.
func formatCurrency(d decimal.Decimal, o Options) (string, error) {
	amt := d
	if o.Round {
		amt = amt.Round(2)
	}
	neg := amt.IsNegative()
	abs := amt.Abs()

	main := abs.BigInt()
	sub := abs.Sub(decimal.NewFromBigInt(main, 0)).Shift(2).Truncate(0).IntPart()

	info := o.Currency
	sep := info.Separator
	if sep == "" {
		sep = "àti"
	}

	var parts []string
	if main.Sign() > 0 {
		w, err := unitPhrase(main, unitName(main.Cmp(bigOne) == 0, info.MainSingular, info.MainPlural), o.StrictScale)
		if err != nil {
			return "", err
		}
		parts = append(parts, w)
	}
	if sub > 0 && info.SubSingular != "" {
		w, err := unitPhrase(big.NewInt(sub), unitName(sub == 1, info.SubSingular, info.SubPlural), o.StrictScale)
		if err != nil {
			return "", err
		}
		parts = append(parts, w)
	}

	if len(parts) == 0 {
		// Exact zero, or a fraction with no sub-unit configured.
		return wordZero + " " + unitName(false, info.MainSingular, info.MainPlural), nil
	}

	words := strings.Join(parts, " "+sep+" ")
	if neg {
		words = o.NegativePrefix + " " + words
	}
	return words, nil
}

// unitPhrase orders a quantity and its unit name: the unit precedes the
// number for quantities 1 and 2, and follows it otherwise.
func unitPhrase(n *big.Int, name string, strict bool) (string, error) {
	if n.IsInt64() {
		if v := n.Int64(); v == 1 || v == 2 {
			return name + " " + smallForm(int(v), ctxModifier), nil
		}
	}
	words, err := spellInteger(n, ctxModifier, strict)
	if err != nil {
		return "", err
	}
	return words + " " + name, nil
}

// unitName picks the singular form for a quantity of one, otherwise the
// plural when configured.
func unitName(singularQty bool, singular, plural string) string {
	if singularQty || plural == "" {
		return singular
	}
	return plural
}
