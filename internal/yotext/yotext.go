// Package yotext provides diacritic handling for Yoruba text.
//
// Yoruba writes three letters with an underdot (ẹ, ọ, ṣ) and marks tone with
// acute and grave accents, composed either as precomposed code points (á, ò)
// or as combining marks over underdot letters (ẹ́ = ẹ + U+0301).
//
// Fold reduces a string to plain ASCII letters; StripTones removes tone
// marks but keeps the underdots. Neither is full Unicode normalization —
// only the pairs Yoruba orthography uses. For general NFC/NFD work,
// preprocess with golang.org/x/text/unicode/norm externally.
//
// All functions are safe for concurrent use.
package yotext

import "strings"

// base maps precomposed tonal vowels and syllabic nasals to their bare
// letter, and underdot letters to their ASCII base.
var base = map[rune]rune{
	'á': 'a', 'à': 'a',
	'é': 'e', 'è': 'e',
	'í': 'i', 'ì': 'i',
	'ó': 'o', 'ò': 'o',
	'ú': 'u', 'ù': 'u',
	'ń': 'n', 'ǹ': 'n',
	'Á': 'A', 'À': 'A',
	'É': 'E', 'È': 'E',
	'Í': 'I', 'Ì': 'I',
	'Ó': 'O', 'Ò': 'O',
	'Ú': 'U', 'Ù': 'U',
	'ẹ': 'e', // ẹ
	'ọ': 'o', // ọ
	'ṣ': 's', // ṣ
	'Ẹ': 'E', // Ẹ
	'Ọ': 'O', // Ọ
	'Ṣ': 'S', // Ṣ
}

// toneless maps precomposed tonal vowels to their bare letter, leaving
// underdot letters alone.
var toneless = map[rune]rune{
	'á': 'a', 'à': 'a',
	'é': 'e', 'è': 'e',
	'í': 'i', 'ì': 'i',
	'ó': 'o', 'ò': 'o',
	'ú': 'u', 'ù': 'u',
	'ń': 'n', 'ǹ': 'n',
	'Á': 'A', 'À': 'A',
	'É': 'E', 'È': 'E',
	'Í': 'I', 'Ì': 'I',
	'Ó': 'O', 'Ò': 'O',
	'Ú': 'U', 'Ù': 'U',
}

// combining reports whether r is a combining mark in the block Yoruba
// orthography draws from (U+0300–U+036F).
func combining(r rune) bool {
	return r >= 0x0300 && r <= 0x036F
}

// plain reports whether s contains no diacritics, so callers can skip
// allocation on already-plain text.
func plain(s string) bool {
	for _, r := range s {
		if r >= 0x80 {
			return false
		}
	}
	return true
}

// Fold returns s with all diacritics removed: tone marks dropped, underdot
// letters replaced by their ASCII base.
func Fold(s string) string {
	if plain(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if combining(r) {
			continue
		}
		if m, ok := base[r]; ok {
			r = m
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StripTones returns s with tone marks removed but underdot letters kept:
// "ọgọ́rùn-ún" becomes "ọgọrun-un".
func StripTones(s string) string {
	if plain(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if combining(r) {
			continue
		}
		if m, ok := toneless[r]; ok {
			r = m
		}
		b.WriteRune(r)
	}
	return b.String()
}
