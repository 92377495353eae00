// Band decomposition: Yoruba text for a single 0–999 band.
package yoruba

import "strconv"

// numeralContext selects which lexical variant of 1 and 2 to emit.
// It changes the spelling of no other value.
type numeralContext int

const (
	// ctxStandalone is a bare cardinal number.
	ctxStandalone numeralContext = iota

	// ctxModifier qualifies a noun: a currency unit or a scale word.
	ctxModifier

	// ctxNegYearDec covers negative numbers, calendar years and
	// post-decimal positions.
	ctxNegYearDec
)

// spellBand converts n in [0, 999] to Yoruba text.
//
// Resolution order: context forms of 1 and 2, exact table hits (standalone,
// compound additions, compound subtractions), generated tens, generated
// hundreds. An exact tabled form always wins over a generated construction;
// the tables carry the historically attested irregular phrasings.
//
// The map lookups also resolve the exact hundred-bases above 999 (1000,
// 2000, …) that the hundreds rule reaches for, e.g. "ẹgbẹ̀rún ó dín márùn-ún"
// for 995.
func spellBand(n int, ctx numeralContext) string {
	if n == 0 {
		return wordZero
	}
	if n == 1 || n == 2 {
		return smallForm(n, ctx)
	}
	if w, ok := standalone[n]; ok {
		return w
	}
	if w, ok := compoundAdd[n]; ok {
		return w
	}
	if w, ok := compoundSub[n]; ok {
		return w
	}
	if n >= 21 && n <= 99 {
		if w := spellTens(n); w != "" {
			return w
		}
	}
	if n >= 101 && n <= 999 {
		if w := spellHundreds(n); w != "" {
			return w
		}
	}
	// Unreachable while the tables cover 0–999; digits leaking into output
	// signal a lexicon gap, and tests assert this branch never fires.
	return strconv.Itoa(n)
}

// smallForm returns the context-dependent form of 1 or 2.
func smallForm(n int, ctx numeralContext) string {
	switch ctx {
	case ctxModifier:
		return modifier[n]
	case ctxNegYearDec:
		return smallNegYearDec[n]
	default:
		return standalone[n]
	}
}

// spellTens generates a phrase for 21–99: additive onto the tens base for
// final digits 1–4, subtractive from the next tens base for 5–9. Returns ""
// when the needed base has no lexicon entry.
func spellTens(n int) string {
	t := n / 10 * 10
	d := n % 10

	if d == 0 {
		return standalone[t]
	}
	if d <= 4 {
		base, ok := standalone[t]
		if !ok {
			return ""
		}
		return base + " " + wordPlus + " " + modifier[d]
	}

	next := t + 10
	diff := next - n // always in [1, 5] here
	base, ok := standalone[next]
	if !ok {
		return ""
	}
	return base + " " + wordMinus + " " + modifier[diff]
}

// spellHundreds generates a phrase for 101–999 by anchoring to the largest
// irregular hundred-base at or below n. Values within ten of the next
// multiple of 100 are expressed subtractively from it; everything else is
// the base word plus the spelled remainder.
func spellHundreds(n int) string {
	if w, ok := hundredLiterals[n]; ok {
		return w
	}

	var b int
	for _, hb := range hundredBases {
		if hb <= n {
			b = hb
			break
		}
	}
	if b == 0 {
		return ""
	}
	if n == b {
		return standalone[b]
	}

	next := (n/100 + 1) * 100
	if diff := next - n; diff <= 10 {
		if m, ok := modifier[diff]; ok {
			return spellBand(next, ctxStandalone) + " " + wordMinus + " " + m
		}
	}

	return standalone[b] + " " + wordPlus + " " + spellBand(n-b, ctxStandalone)
}
