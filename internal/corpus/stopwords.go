// Package corpus provides the stopword lists used by the similarity pipeline.
package corpus

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"
)

//go:embed english.txt
var englishWords string

var (
	englishOnce sync.Once
	englishSet  map[string]struct{}
)

// Stopwords returns the stopword set for the given language code.
// Lookups against the returned set should use lowercased tokens.
func Stopwords(lang string) (map[string]struct{}, error) {
	switch strings.ToLower(lang) {
	case "en", "english":
		englishOnce.Do(func() {
			englishSet = parseWordList(englishWords)
		})
		return englishSet, nil
	default:
		return nil, fmt.Errorf("no stopword list available for language %q", lang)
	}
}

func parseWordList(data string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, line := range strings.Split(data, "\n") {
		word := strings.TrimSpace(line)
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		set[strings.ToLower(word)] = struct{}{}
	}
	return set
}
