// Package stringutils holds utility methods for working with strings.
package stringutils

import "strings"

// irregularPlurals holds nouns whose plural form does not follow suffix rules.
var irregularPlurals = map[string]string{
	"child":  "children",
	"foot":   "feet",
	"goose":  "geese",
	"man":    "men",
	"mouse":  "mice",
	"person": "people",
	"tooth":  "teeth",
	"woman":  "women",
}

// Pluralize returns singular when count is 1, plural form of singular otherwise.
// Plural form follows basic english suffix rules (s, es, ies) with a table of
// common irregulars.
func Pluralize(count int, singular string) string {
	if count == 1 {
		return singular
	}

	return pluralOf(singular)
}

// PluralizeWith returns singular when count is 1, provided plural otherwise.
func PluralizeWith(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}

	return plural
}

func pluralOf(word string) string {
	if word == "" {
		return word
	}

	if plural, ok := irregularPlurals[strings.ToLower(word)]; ok {
		return plural
	}

	switch {
	case strings.HasSuffix(word, "s"), strings.HasSuffix(word, "x"),
		strings.HasSuffix(word, "z"), strings.HasSuffix(word, "ch"),
		strings.HasSuffix(word, "sh"):
		return word + "es"
	case strings.HasSuffix(word, "y") && !hasVowelBeforeY(word):
		return word[:len(word)-1] + "ies"
	}

	return word + "s"
}

func hasVowelBeforeY(word string) bool {
	if len(word) < 2 {
		return false
	}

	return strings.ContainsRune("aeiou", rune(word[len(word)-2]))
}
