// Scale chunking: Yoruba text for integers of 1000 and above.
package yoruba

import (
	"fmt"
	"math/big"
	"strings"
)

const growLarge = 96 // estimated bytes for a chunked conversion

var (
	bigOne  = big.NewInt(1)
	big1000 = big.NewInt(1000)
	big2000 = big.NewInt(2000)

	// maxScaleIndex is the highest base-1000 group with a named scale word.
	maxScaleIndex = len(scaleWords) - 1
)

// spellInteger converts a non-negative integer of any size to Yoruba text.
// Values below 1000 go through the band engine with ctx; larger values are
// chunked by spellLarge, which fixes its own contexts.
func spellInteger(n *big.Int, ctx numeralContext, strict bool) (string, error) {
	if n.Cmp(big1000) < 0 {
		return spellBand(int(n.Int64()), ctx), nil
	}
	return spellLarge(n, strict)
}

// spellLarge converts n ≥ 1000 to Yoruba text.
//
// The 1000–1999 band keeps its additive vigesimal shape ("ẹgbẹ̀rún ó lé …").
// Exact powers of 1000 collapse to the bare thousand word or
// "<scale word> kan". Everything else is split into base-1000 groups,
// most significant first, each group spelled by the band engine and tagged
// with its scale word; zero groups are skipped and groups are joined with
// ", ". Past the last named scale the excess is spelled, tagged with the
// highest scale word and marked with wordBeyondScale — or rejected with
// ErrUnsupportedMagnitude when strict is set.
func spellLarge(n *big.Int, strict bool) (string, error) {
	if n.Cmp(big2000) < 0 {
		return spellThousandBand(int(n.Int64())), nil
	}

	if w, ok := exactPower(n); ok {
		return w, nil
	}

	totalGroups := (len(n.String()) - 1) / 3

	var b strings.Builder
	b.Grow(growLarge)

	rem := new(big.Int).Set(n)

	if totalGroups > maxScaleIndex {
		if strict {
			return "", fmt.Errorf("%w: %d base-1000 groups, %d named scales",
				ErrUnsupportedMagnitude, totalGroups+1, maxScaleIndex+1)
		}
		excess := new(big.Int)
		r := new(big.Int)
		excess.QuoRem(rem, pow1000(maxScaleIndex+1), r)
		rem.Set(r)

		w, err := spellInteger(excess, ctxStandalone, false)
		if err != nil {
			return "", err
		}
		b.WriteString(w)
		b.WriteByte(' ')
		b.WriteString(scaleWords[maxScaleIndex])
		b.WriteByte(' ')
		b.WriteString(wordBeyondScale)

		totalGroups = maxScaleIndex
	}

	group := new(big.Int)
	scratch := new(big.Int)
	for idx := totalGroups; idx >= 0; idx-- {
		group.QuoRem(rem, pow1000(idx), scratch)
		rem.Set(scratch)
		v := int(group.Int64())
		if v == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		writeGroup(&b, v, idx)
	}

	return b.String(), nil
}

// spellThousandBand handles 1000–1999: the exact thousand stands bare, the
// remainder is added with the modifier form for exactly 1 ("ẹgbẹ̀rún ó lé
// kan") and the standalone band form otherwise.
func spellThousandBand(n int) string {
	r := n - 1000
	if r == 0 {
		return scaleWords[1]
	}
	ctx := ctxStandalone
	if r == 1 {
		ctx = ctxModifier
	}
	return scaleWords[1] + " " + wordPlus + " " + spellBand(r, ctx)
}

// writeGroup appends one non-zero base-1000 group with its scale word.
// A bare 1 collapses into the scale word at the thousands position and
// becomes "<scale word> kan" above it; a full 999 group uses the tabled
// one-less-than-a-thousand form.
func writeGroup(b *strings.Builder, v, idx int) {
	switch {
	case v == 1 && idx == 1:
		b.WriteString(scaleWords[1])
	case v == 1 && idx >= 2:
		b.WriteString(scaleWords[idx])
		b.WriteByte(' ')
		b.WriteString(modifier[1])
	default:
		if v == 999 {
			b.WriteString(compoundSub[999])
		} else {
			b.WriteString(spellBand(v, ctxStandalone))
		}
		if idx > 0 {
			b.WriteByte(' ')
			b.WriteString(scaleWords[idx])
		}
	}
}

// exactPower reports the collapsed form of n when n is exactly 1000^k for a
// named scale index k.
func exactPower(n *big.Int) (string, bool) {
	q := new(big.Int).Set(n)
	r := new(big.Int)
	idx := 0
	for q.Cmp(bigOne) > 0 {
		q.QuoRem(q, big1000, r)
		if r.Sign() != 0 {
			return "", false
		}
		idx++
	}
	if idx > maxScaleIndex {
		return "", false
	}
	if idx == 1 {
		return scaleWords[1], true
	}
	return scaleWords[idx] + " " + modifier[1], true
}

// pow1000 returns 1000^idx.
func pow1000(idx int) *big.Int {
	return new(big.Int).Exp(big1000, big.NewInt(int64(idx)), nil)
}
