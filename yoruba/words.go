// Word tables for Yoruba number-to-text conversion.
package yoruba

const (
	// Connectors for generated additive and subtractive phrases:
	// "ogún ó lé kan" (20 exceeded by 1), "ogójì ó dín mẹ́rin" (40 less 4).
	wordPlus  = "ó lé"
	wordMinus = "ó dín"

	wordZero     = "òdo"
	wordNegative = "òdì"
	wordPoint    = "àmì"
	wordComma    = "kọ́mà"

	wordInfinity    = "àìlópin"
	wordNegInfinity = "òdì àìlópin"

	// Marker appended for the portion of a number past the largest named
	// scale ("innumerable"). See spellLarge.
	wordBeyondScale = "àìlóǹkà"

	// Era suffix for negative calendar years.
	wordEraSuffix = "ṣáájú Kristi"
)

// standalone maps values with their own lexical form: 0–20, the tens,
// and the irregular hundred-bases of the vigesimal system.
// 500, 700 and 900 have no standalone word; they are built from two bases
// (see hundredLiterals) or tabled as subtractions (see compoundSub).
// Entries above 1000 record the attested forms; converted output spells
// those magnitudes with scale words instead.
var standalone = map[int]string{
	0:  "òdo",
	1:  "oókan",
	2:  "eéjì",
	3:  "ẹẹ́ta",
	4:  "ẹẹ́rin",
	5:  "aárùn-ún",
	6:  "ẹẹ́fà",
	7:  "eéje",
	8:  "ẹẹ́jọ",
	9:  "ẹẹ́sàn-án",
	10: "ẹẹ́wàá",
	11: "ọọ́kànlá",
	12: "eéjìlá",
	13: "ẹẹ́tàlá",
	14: "ẹẹ́rìnlá",
	15: "ẹẹ́ẹ́dógún",
	16: "ẹẹ́rìndínlógún",
	17: "ẹẹ́tàdínlógún",
	18: "eéjìdínlógún",
	19: "oókàndínlógún",
	20: "ogún",

	30: "ọgbọ̀n",
	40: "ogójì",
	50: "àádọ́ta",
	60: "ọgọ́ta",
	70: "àádọ́rin",
	80: "ọgọ́rin",
	90: "àádọ́rùn-ún",

	100:    "ọgọ́rùn-ún",
	200:    "igba",
	300:    "ọ̀ọ́dúnrún",
	400:    "irinwó",
	600:    "ẹgbẹ̀ta",
	800:    "ẹgbẹ̀rin",
	1000:   "ẹgbẹ̀rún",
	2000:   "ẹgbàá",
	10000:  "ẹgbàárùn-ún",
	20000:  "ọ̀kẹ́ kan",
	100000: "ọ̀kẹ́ márùn-ún",
}

// modifier maps 1–10 to the form used when the number qualifies a noun
// (a currency unit, a scale word) or appears inside a generated compound.
var modifier = map[int]string{
	1:  "kan",
	2:  "méjì",
	3:  "mẹ́ta",
	4:  "mẹ́rin",
	5:  "márùn-ún",
	6:  "mẹ́fà",
	7:  "méje",
	8:  "mẹ́jọ",
	9:  "mẹ́sàn-án",
	10: "mẹ́wàá",
}

// smallNegYearDec holds the forms of 1 and 2 used for negative numbers,
// calendar years and post-decimal positions. Only 1 and 2 vary by context.
var smallNegYearDec = map[int]string{
	1: "ọ̀kan",
	2: "èjì",
}

// digits is indexed by a single post-decimal digit.
var digits = [10]string{
	"òdo",
	"ọ̀kan",
	"èjì",
	"ẹ̀ta",
	"ẹ̀rin",
	"àrún",
	"ẹ̀fà",
	"èje",
	"ẹ̀jọ",
	"ẹ̀sán",
}

// compoundAdd holds attested fused additive forms (base + 1..4).
// These override the generated "<base> ó lé <unit>" phrase.
var compoundAdd = map[int]string{
	21: "mọ́kànlélógún",
	22: "méjìlélógún",
	23: "mẹ́tàlélógún",
	24: "mẹ́rìnlélógún",
	31: "mọ́kànlélọ́gbọ̀n",
	32: "méjìlélọ́gbọ̀n",
	33: "mẹ́tàlélọ́gbọ̀n",
	34: "mẹ́rìnlélọ́gbọ̀n",
}

// compoundSub holds attested fused subtractive forms (base − 1..5), plus the
// irregular 900 (1000 − 100) and the one-less-than-a-thousand form used for a
// full 999 group in scale chunking.
var compoundSub = map[int]string{
	15: "ẹẹ́ẹ́dógún",
	16: "ẹẹ́rìndínlógún",
	17: "ẹẹ́tàdínlógún",
	18: "eéjìdínlógún",
	19: "oókàndínlógún",
	25: "mẹ́ẹ̀ẹ́dọ́gbọ̀n",
	26: "mẹ́rìndínlọ́gbọ̀n",
	27: "mẹ́tàdínlọ́gbọ̀n",
	28: "méjìdínlọ́gbọ̀n",
	29: "mọ́kàndínlọ́gbọ̀n",

	900: "ẹ̀ẹ́dẹ́gbẹ̀rún",
	999: "oókàndínlẹ́gbẹ̀rún",
}

// hundredBases lists the anchor bases for 101–999, largest first.
// 300 is excluded: it is a standalone word, not an anchor.
var hundredBases = [5]int{800, 600, 400, 200, 100}

// hundredLiterals holds exact phrasings for hundreds that are neither an
// anchor base nor generated: 300 stands alone, 500/700/900 are additions of
// two irregular bases. The 900 entry overlaps with compoundSub[900]; the
// exact-table resolver wins when spelling 900 through spellBand.
var hundredLiterals = map[int]string{
	300: "ọ̀ọ́dúnrún",
	500: "irinwó ó lé ọgọ́rùn-ún",
	700: "ẹgbẹ̀ta ó lé ọgọ́rùn-ún",
	900: "ẹgbẹ̀rin ó lé ọgọ́rùn-ún",
}

// scaleWords is indexed by base-1000 group position. Index 0 is empty: the
// least-significant group carries no scale word. Beyond the last entry the
// converter degrades with wordBeyondScale.
var scaleWords = []string{
	"",
	"ẹgbẹ̀rún",
	"mílíọ̀nù",
	"bilíọ̀nù",
	"tirilíọ̀nù",
	"kuadirilíọ̀nù",
	"kuintilíọ̀nù",
}

// yearOverrides holds hand-fixed phrasings for historical years expressed the
// traditional way, subtractively from ẹgbàá (2000). They apply in year mode
// only and win over the general algorithm.
var yearOverrides = map[int64]string{
	1900: "ẹgbàá ó dín ọgọ́rùn-ún",
	1960: "ẹgbàá ó dín ogójì",
}
