// Input normalization: heterogeneous numeric values to decimal.Decimal.
package yoruba

import (
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// numClass classifies a normalization result. Non-finite floats are kept
// distinct from invalid input: they map to fixed phrases rather than the
// fallback string.
type numClass int

const (
	numOK numClass = iota
	numNaN
	numPosInf
	numNegInf
	numBad
)

// normalize converts any supported numeric representation to a
// decimal.Decimal: all int/uint widths, float32/64, numeric strings with a
// period or comma separator, *big.Int, *big.Float and decimal.Decimal
// itself.
func normalize(value any) (decimal.Decimal, numClass) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, numOK
	case *decimal.Decimal:
		if v == nil {
			return decimal.Decimal{}, numBad
		}
		return *v, numOK
	case int:
		return decimal.NewFromInt(int64(v)), numOK
	case int8:
		return decimal.NewFromInt(int64(v)), numOK
	case int16:
		return decimal.NewFromInt(int64(v)), numOK
	case int32:
		return decimal.NewFromInt(int64(v)), numOK
	case int64:
		return decimal.NewFromInt(v), numOK
	case uint:
		return decimal.NewFromUint64(uint64(v)), numOK
	case uint8:
		return decimal.NewFromUint64(uint64(v)), numOK
	case uint16:
		return decimal.NewFromUint64(uint64(v)), numOK
	case uint32:
		return decimal.NewFromUint64(uint64(v)), numOK
	case uint64:
		return decimal.NewFromUint64(v), numOK
	case float32:
		return normalizeFloat(float64(v))
	case float64:
		return normalizeFloat(v)
	case *big.Int:
		if v == nil {
			return decimal.Decimal{}, numBad
		}
		return decimal.NewFromBigInt(v, 0), numOK
	case *big.Float:
		return normalizeBigFloat(v)
	case string:
		return normalizeString(v)
	default:
		return decimal.Decimal{}, numBad
	}
}

func normalizeFloat(f float64) (decimal.Decimal, numClass) {
	switch {
	case math.IsNaN(f):
		return decimal.Decimal{}, numNaN
	case math.IsInf(f, 1):
		return decimal.Decimal{}, numPosInf
	case math.IsInf(f, -1):
		return decimal.Decimal{}, numNegInf
	}
	return decimal.NewFromFloat(f), numOK
}

func normalizeBigFloat(f *big.Float) (decimal.Decimal, numClass) {
	if f == nil {
		return decimal.Decimal{}, numBad
	}
	if f.IsInf() {
		if f.Sign() < 0 {
			return decimal.Decimal{}, numNegInf
		}
		return decimal.Decimal{}, numPosInf
	}
	d, err := decimal.NewFromString(f.Text('f', -1))
	if err != nil {
		return decimal.Decimal{}, numBad
	}
	return d, numOK
}

// normalizeString accepts an optional sign and either a period or a single
// comma as the decimal separator.
func normalizeString(s string) (decimal.Decimal, numClass) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, numBad
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, numBad
	}
	return d, numOK
}
