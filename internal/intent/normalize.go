package intent

import "strings"

// stopwords are filler words stripped from the front of an extracted
// topic so it lines up with knowledge-base keys.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "to": {}, "for": {},
	"with": {}, "about": {}, "on": {}, "in": {}, "at": {},
	"by": {}, "from": {}, "of": {}, "and": {}, "or": {},
}

// NormalizeTopic removes leading stopwords from a topic phrase.
// Only the front of the phrase is cleaned; interior words stay. If
// cleaning would remove everything, the input is returned unchanged so
// content is never discarded.
func NormalizeTopic(topic string) string {
	words := strings.Fields(topic)
	for len(words) > 0 {
		if _, ok := stopwords[strings.ToLower(words[0])]; !ok {
			break
		}
		words = words[1:]
	}

	cleaned := strings.Join(words, " ")
	if cleaned == "" {
		return topic
	}
	return cleaned
}
