// Command num2text converts numbers to Yoruba text.
//
// Each argument is converted independently and printed on its own line:
//
//	num2text 456 3.14
//	num2text --year -- -45 1960
//	num2text --currency --round 21.02
//
// Without arguments it reads one number per line from stdin:
//
//	seq 1 20 | num2text
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vemines/num2text/yoruba"
)

var (
	yearMode     bool
	currencyMode bool
	round        bool
	comma        bool
	ascii        bool
	strictScale  bool
	prefix       string
	fallback     string
	mainUnit     string
	subUnit      string
	verbose      bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "num2text [numbers...]",
	Short: "Convert numbers to Yoruba text",
	Long: `num2text spells numbers in Yoruba: cardinal numbers with decimal
fractions, calendar years, and currency amounts.

Values below a thousand follow the vigesimal system (additive and
subtractive phrasing around base-20 anchors); larger values use borrowed
scale words (ẹgbẹ̀rún, mílíọ̀nù, ...).

With no arguments, numbers are read one per line from standard input.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runConvert,
}

func buildOptions() []yoruba.Option {
	var opts []yoruba.Option

	switch {
	case yearMode:
		opts = append(opts, yoruba.WithYearFormat())
	case currencyMode:
		info := yoruba.DefaultCurrency()
		if mainUnit != "" {
			info.MainSingular = mainUnit
			info.MainPlural = ""
		}
		if subUnit != "" {
			info.SubSingular = subUnit
			info.SubPlural = ""
		}
		opts = append(opts, yoruba.WithCurrencyFormat(info))
	}

	if round {
		opts = append(opts, yoruba.WithRounding())
	}
	if comma {
		opts = append(opts, yoruba.WithDecimalComma())
	}
	if ascii {
		opts = append(opts, yoruba.WithASCIIOutput())
	}
	if strictScale {
		opts = append(opts, yoruba.WithStrictScale())
	}
	if prefix != "" {
		opts = append(opts, yoruba.WithNegativePrefix(prefix))
	}
	if fallback != "" {
		opts = append(opts, yoruba.WithFallback(fallback))
	}
	return opts
}

func runConvert(cmd *cobra.Command, args []string) error {
	opts := buildOptions()

	if len(args) == 0 {
		return convertLines(cmd, opts)
	}
	for _, arg := range args {
		if err := convertOne(cmd, arg, opts); err != nil {
			return err
		}
	}
	return nil
}

// convertLines reads one number per line from stdin, skipping blank lines.
func convertLines(cmd *cobra.Command, opts []yoruba.Option) error {
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := convertOne(cmd, line, opts); err != nil {
			return err
		}
	}
	return sc.Err()
}

func convertOne(cmd *cobra.Command, arg string, opts []yoruba.Option) error {
	start := time.Now()
	words, err := yoruba.Convert(arg, opts...)
	if err != nil {
		return fmt.Errorf("converting %q: %w", arg, err)
	}
	logger.Debug("converted",
		zap.String("input", arg),
		zap.Duration("took", time.Since(start)))
	fmt.Fprintln(cmd.OutOrStdout(), words)
	return nil
}

func init() {
	rootCmd.Flags().BoolVar(&yearMode, "year", false, "spell as a calendar year")
	rootCmd.Flags().BoolVar(&currencyMode, "currency", false, "spell as a currency amount")
	rootCmd.Flags().BoolVar(&round, "round", false, "round currency amounts to two sub-unit digits")
	rootCmd.Flags().BoolVar(&comma, "comma", false, "read the decimal separator as kọ́mà")
	rootCmd.Flags().BoolVar(&ascii, "ascii", false, "fold diacritics out of the output")
	rootCmd.Flags().BoolVar(&strictScale, "strict-scale", false, "fail on magnitudes past the largest named scale")
	rootCmd.Flags().StringVar(&prefix, "prefix", "", "negative prefix (default òdì)")
	rootCmd.Flags().StringVar(&fallback, "fallback", "", "output for unparseable input instead of an error")
	rootCmd.Flags().StringVar(&mainUnit, "main-unit", "", "main currency unit name (default náírà)")
	rootCmd.Flags().StringVar(&subUnit, "sub-unit", "", "sub currency unit name (default kọ́bọ̀)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
