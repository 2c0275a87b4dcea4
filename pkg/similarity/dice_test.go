package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareIdentical(t *testing.T) {
	for _, s := range []string{"Hyperion", "a", "Giant's Sword", "ÄÖü"} {
		assert.Equal(t, 1.0, Compare(s, s), "self similarity of %q", s)
	}
}

func TestCompareIgnoresWhitespace(t *testing.T) {
	assert.Equal(t, 1.0, Compare("Hyperion", "Hyperion "))
	assert.Equal(t, 1.0, Compare("Giant's Sword", "Giant'sSword"))
	assert.Equal(t, 1.0, Compare("", "   "))
}

func TestCompareEmptyAgainstNonEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Compare("", "Hyperion"))
	assert.Equal(t, 0.0, Compare("Hyperion", ""))
	assert.Equal(t, 0.0, Compare("a", "ab"))
}

func TestCompareKnownScores(t *testing.T) {
	// ab bc cd de ef vs ab bc cd dx xy: 3 shared of 10 bigrams.
	assert.Equal(t, 0.6, Compare("abcdef", "abcdxy"))
	assert.Equal(t, 0.0, Compare("abc", "xyz"))
	// case-sensitive: Hy and hy differ, the other six bigrams match.
	assert.InDelta(t, 12.0/14.0, Compare("Hyperion", "hyperion"), 1e-12)
}

func TestCompareRepeatedBigramsCountedOnce(t *testing.T) {
	// "aaaa" has aa x3, "aa" has aa x1: one shared bigram of four.
	assert.Equal(t, 0.5, Compare("aaaa", "aa"))
}

func TestCompareSymmetricAndBounded(t *testing.T) {
	words := []string{"", "a", "Hyperion", "Hyperion ", "Giant's Sword", "Aspect of the End", "aaaa", "abcdxy", "Hype"}
	for _, a := range words {
		for _, b := range words {
			ab := Compare(a, b)
			assert.Equal(t, ab, Compare(b, a), "symmetry for %q/%q", a, b)
			assert.GreaterOrEqual(t, ab, 0.0)
			assert.LessOrEqual(t, ab, 1.0)
		}
	}
}
