// Tests for currency phrasing.
package yoruba

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestConvertCurrencyNaira(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		amount string
		want   string
	}{
		{"zero", "0", "òdo náírà"},
		// Unit precedes the number for quantities 1 and 2.
		{"one", "1.00", "náírà kan"},
		{"two", "2", "náírà méjì"},
		{"five follows the number", "5", "aárùn-ún náírà"},
		{"twenty-one", "21", "mọ́kànlélógún náírà"},
		{"one and five kobo", "1.05", "náírà kan àti aárùn-ún kọ́bọ̀"},
		{"sub-unit only", "0.50", "àádọ́ta kọ́bọ̀"},
		{"one kobo", "0.01", "kọ́bọ̀ kan"},
		{"two kobo", "21.02", "mọ́kànlélógún náírà àti kọ́bọ̀ méjì"},
		{"truncated sub-unit", "1.999", "náírà kan àti ọgọ́rùn-ún ó dín kan kọ́bọ̀"},
		{"negative", "-5.25", "òdì aárùn-ún náírà àti mẹ́ẹ̀ẹ́dọ́gbọ̀n kọ́bọ̀"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ConvertCurrency(mustDecimal(t, tt.amount), DefaultCurrency())
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestConvertCurrencyRounding(t *testing.T) {
	t.Parallel()

	// Default is truncation; WithRounding rounds to two sub-unit digits
	// before the split.
	got, err := Convert("1.999", WithCurrencyFormat(DefaultCurrency()), WithRounding())
	require.NoError(t, err)
	require.Equal(t, "náírà méjì", got)

	got, err = Convert("0.005", WithCurrencyFormat(DefaultCurrency()), WithRounding())
	require.NoError(t, err)
	require.Equal(t, "kọ́bọ̀ kan", got)
}

func TestConvertCurrencyCustomUnits(t *testing.T) {
	t.Parallel()

	dollar := CurrencyInfo{
		MainSingular: "dọ́là",
		MainPlural:   "àwọn dọ́là",
		SubSingular:  "sẹ́ǹtì",
		Separator:    "pẹ̀lú",
	}

	got, err := ConvertCurrency(mustDecimal(t, "1"), dollar)
	require.NoError(t, err)
	require.Equal(t, "dọ́là kan", got)

	got, err = ConvertCurrency(mustDecimal(t, "2.50"), dollar)
	require.NoError(t, err)
	require.Equal(t, "àwọn dọ́là méjì pẹ̀lú àádọ́ta sẹ́ǹtì", got)

	got, err = ConvertCurrency(mustDecimal(t, "0"), dollar)
	require.NoError(t, err)
	require.Equal(t, "òdo àwọn dọ́là", got)
}

func TestConvertCurrencyNoSubUnit(t *testing.T) {
	t.Parallel()

	bare := CurrencyInfo{MainSingular: "owó"}

	// With no sub-unit configured the fraction is dropped entirely.
	got, err := ConvertCurrency(mustDecimal(t, "3.75"), bare)
	require.NoError(t, err)
	require.Equal(t, "ẹẹ́ta owó", got)

	// A pure fraction then degrades to the zero phrase.
	got, err = ConvertCurrency(mustDecimal(t, "0.75"), bare)
	require.NoError(t, err)
	require.Equal(t, "òdo owó", got)
}
