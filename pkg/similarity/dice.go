// Package similarity scores how close two strings are.
package similarity

import (
	"strings"
	"unicode"
)

// Compare returns the Sørensen–Dice coefficient of the character bigrams of a and b.
//
// Whitespace is removed before comparing and the comparison is case-sensitive.
// The score is symmetric and lies in [0, 1]: equal strings score 1, and a string
// shorter than two runes scores 0 against anything it does not equal.
func Compare(a, b string) float64 {
	left := []rune(stripSpace(a))
	right := []rune(stripSpace(b))

	if string(left) == string(right) {
		return 1
	}
	if len(left) < 2 || len(right) < 2 {
		return 0
	}

	counts := make(map[[2]rune]int, len(left)-1)
	for i := 0; i < len(left)-1; i++ {
		counts[[2]rune{left[i], left[i+1]}]++
	}

	shared := 0
	for i := 0; i < len(right)-1; i++ {
		gram := [2]rune{right[i], right[i+1]}
		if counts[gram] > 0 {
			counts[gram]--
			shared++
		}
	}

	return 2 * float64(shared) / float64(len(left)+len(right)-2)
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
