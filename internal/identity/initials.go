package identity

import (
	"strings"
	"unicode"
)

// productionStopWords are dropped before abbreviating a production company name.
var productionStopWords = map[string]struct{}{
	"le": {}, "la": {}, "les": {}, "l": {}, "un": {}, "une": {},
	"de": {}, "du": {}, "des": {}, "d": {}, "et": {},
	"the": {}, "a": {}, "an": {}, "of": {}, "and": {},
	"production": {}, "productions": {}, "prod": {}, "prods": {},
	"studio": {}, "studios": {}, "film": {}, "films": {},
}

// ProductionInitials abbreviates a production company name to 2-3 letters.
//
//	one word     -> first three letters        ("ABC Productions" -> "ABC")
//	two words    -> two letters + one letter   ("Sahara Lumière"  -> "SAL")
//	three or more-> first letter of each of the first three
//
// Results shorter than two letters are left-padded with X.
func ProductionInitials(name string) string {
	words := productionWords(name)

	var initials string
	switch len(words) {
	case 0:
	case 1:
		initials = firstN(words[0], 3)
	case 2:
		initials = firstN(words[0], 2) + firstN(words[1], 1)
	default:
		initials = firstN(words[0], 1) + firstN(words[1], 1) + firstN(words[2], 1)
	}

	for len(initials) < 2 {
		initials = string(padding) + initials
	}
	return firstN(initials, 3)
}

// productionWords splits a name into upper-case letter-only words, minus stop words.
func productionWords(name string) []string {
	fields := strings.FieldsFunc(stripAccents(name), func(r rune) bool {
		return !isASCIIAlnum(r)
	})

	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, stop := productionStopWords[strings.ToLower(f)]; stop {
			continue
		}
		letters := strings.Map(func(r rune) rune {
			if !isASCIILetter(r) {
				return -1
			}
			return unicode.ToUpper(r)
		}, f)
		if letters != "" {
			words = append(words, letters)
		}
	}
	return words
}

func firstN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
