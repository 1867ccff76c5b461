package knowledge

import (
	"strings"
)

// matchThreshold is the minimum confidence a best match must exceed
// (strictly) before its content is returned instead of a fallback.
const matchThreshold = 0.3

// keySubstringBonus rewards a topic key that appears verbatim inside
// the query, even when word splitting loses the phrase.
const keySubstringBonus = 0.5

// BestMatch finds the single best matching key for a free-text query.
//
// Every candidate key is scored by word overlap: the fraction of query
// words that appear as a substring of any key word, plus a flat bonus
// when the whole key is contained in the query. Keys are compared in
// the order given; a later key must score strictly higher to replace
// an earlier one, so ties keep the first key seen.
//
// Returns ("", 0) when keys is empty or no key scores above zero. A
// blank query has no words, so every key scores zero and no match is
// ever reported.
func BestMatch(query string, keys []string) (string, float64) {
	queryLower := strings.ToLower(query)
	queryWords := wordSet(queryLower)

	bestKey := ""
	bestScore := 0.0

	for _, key := range keys {
		keyLower := strings.ToLower(key)
		keyWords := wordSet(keyLower)

		matches := 0
		for word := range queryWords {
			for keyWord := range keyWords {
				if strings.Contains(keyWord, word) {
					matches++
					break
				}
			}
		}

		score := 0.0
		if len(queryWords) > 0 {
			score = float64(matches) / float64(len(queryWords))
		}

		if keyLower != "" && strings.Contains(queryLower, keyLower) {
			score += keySubstringBonus
		}

		if score > bestScore {
			bestScore = score
			bestKey = key
		}
	}

	return bestKey, bestScore
}

func wordSet(s string) map[string]struct{} {
	words := strings.Fields(s)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
