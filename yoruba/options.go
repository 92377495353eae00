// Conversion options and currency metadata.
package yoruba

// Format selects the phrasing mode of a conversion.
type Format int

const (
	// FormatCardinal spells a plain cardinal number, with fractional digits
	// read individually after a separator word.
	FormatCardinal Format = iota

	// FormatYear spells a calendar year; negative years gain an era suffix.
	FormatYear

	// FormatCurrency spells a monetary amount with main and sub units.
	FormatCurrency
)

// DecimalStyle selects the separator word spoken before fractional digits.
type DecimalStyle int

const (
	// DecimalPoint reads the separator as "àmì".
	DecimalPoint DecimalStyle = iota

	// DecimalComma reads the separator as "kọ́mà".
	DecimalComma
)

// CurrencyInfo names the units of a currency. Plural fields may be empty,
// in which case the singular form is used for every quantity. SubSingular
// empty disables the sub-unit phrase entirely. Separator joins the main and
// sub phrases; empty means the default "àti".
type CurrencyInfo struct {
	MainSingular string
	MainPlural   string
	SubSingular  string
	SubPlural    string
	Separator    string
}

// DefaultCurrency returns the Nigerian naira and kobo.
func DefaultCurrency() CurrencyInfo {
	return CurrencyInfo{
		MainSingular: "náírà",
		SubSingular:  "kọ́bọ̀",
		Separator:    "àti",
	}
}

// Options configures Convert. The zero value is not meaningful; start from
// DefaultOptions or pass Option values to Convert.
type Options struct {
	// Format selects cardinal, year or currency phrasing.
	Format Format

	// NegativePrefix is spoken before negative values outside year mode.
	NegativePrefix string

	// Style selects the decimal separator word in cardinal mode.
	Style DecimalStyle

	// Round rounds currency amounts to two sub-unit digits before the
	// main/sub split; otherwise the fraction is truncated.
	Round bool

	// Currency names the units for FormatCurrency.
	Currency CurrencyInfo

	// Fallback, when non-empty, is returned instead of an error for input
	// that cannot be normalized to a number.
	Fallback string

	// StrictScale rejects magnitudes past the largest named scale word with
	// ErrUnsupportedMagnitude instead of degrading to an inline marker.
	StrictScale bool

	// ASCII folds diacritics out of the result (ẹ→e, ọ→o, tone marks
	// dropped) for environments without full glyph support.
	ASCII bool
}

// DefaultOptions returns the options used when none are supplied: cardinal
// format, "òdì" negative prefix, point separator, naira currency.
func DefaultOptions() Options {
	return Options{
		NegativePrefix: wordNegative,
		Currency:       DefaultCurrency(),
	}
}

// Option mutates Options before a conversion.
type Option func(*Options)

// WithFormat sets the phrasing mode.
func WithFormat(f Format) Option {
	return func(o *Options) { o.Format = f }
}

// WithYearFormat is shorthand for WithFormat(FormatYear).
func WithYearFormat() Option {
	return func(o *Options) { o.Format = FormatYear }
}

// WithCurrencyFormat selects currency phrasing with the given units.
func WithCurrencyFormat(info CurrencyInfo) Option {
	return func(o *Options) {
		o.Format = FormatCurrency
		o.Currency = info
	}
}

// WithNegativePrefix replaces the default "òdì" prefix.
func WithNegativePrefix(prefix string) Option {
	return func(o *Options) { o.NegativePrefix = prefix }
}

// WithDecimalComma reads the decimal separator as "kọ́mà".
func WithDecimalComma() Option {
	return func(o *Options) { o.Style = DecimalComma }
}

// WithRounding rounds currency amounts to two sub-unit digits.
func WithRounding() Option {
	return func(o *Options) { o.Round = true }
}

// WithFallback returns fallback instead of an error for unparseable input.
func WithFallback(fallback string) Option {
	return func(o *Options) { o.Fallback = fallback }
}

// WithStrictScale turns over-scale degradation into ErrUnsupportedMagnitude.
func WithStrictScale() Option {
	return func(o *Options) { o.StrictScale = true }
}

// WithASCIIOutput folds diacritics out of the result.
func WithASCIIOutput() Option {
	return func(o *Options) { o.ASCII = true }
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
