// Package suggest offers fuzzy "did you mean" suggestions for
// unrecognized commands and topics.
package suggest

import "github.com/sahilm/fuzzy"

// Commands returns the closest known command names to an unrecognized
// input, best match first, at most n results.
func Commands(input string, available []string, n int) []string {
	return closest(input, available, n)
}

// Topics returns the closest known topic keys to a query that found
// no confident knowledge-base match.
func Topics(input string, available []string, n int) []string {
	return closest(input, available, n)
}

func closest(input string, candidates []string, n int) []string {
	if input == "" || len(candidates) == 0 || n <= 0 {
		return nil
	}

	matches := fuzzy.Find(input, candidates)
	if len(matches) > n {
		matches = matches[:n]
	}

	results := make([]string, 0, len(matches))
	for _, m := range matches {
		results = append(results, m.Str)
	}
	return results
}
