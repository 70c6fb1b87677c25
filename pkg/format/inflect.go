package format

import (
	"regexp"
	"strings"
	"unicode"
)

var digitWords = [...]string{
	"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine",
}

// spellDigits replaces every digit with its English word padded by spaces,
// so "S3" reads "S three ". Used only to pick an article.
func spellDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteString(" " + digitWords[r-'0'] + " ")
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

var (
	// Words whose leading vowel letter is pronounced as a consonant.
	consonantSound = regexp.MustCompile(`(?i)^(?:eu|ewe|onc?e\b|uni(?:[^nmd]|mo)|u[oa]|ufo\b|u[bcfghjkqrst][aeiou])`)
	// Words with a silent leading h.
	silentH = regexp.MustCompile(`(?i)^(?:hour|honest|hono|heir)`)
	// Upper-case abbreviations are read letter by letter.
	abbreviation = regexp.MustCompile(`^[A-Z][A-Z0-9]+$`)
)

// Letters whose spoken name starts with a vowel sound.
const vowelSoundLetters = "AEFHILMNORSX"

// Article returns "a" or "an" for the given word.
func Article(word string) string {
	word = strings.TrimLeftFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if word == "" {
		return "a"
	}

	if len(word) == 1 || abbreviation.MatchString(word) {
		if strings.ContainsRune(vowelSoundLetters, unicode.ToUpper(rune(word[0]))) {
			return "an"
		}
		return "a"
	}

	switch {
	case silentH.MatchString(word):
		return "an"
	case consonantSound.MatchString(word):
		return "a"
	case strings.ContainsRune("aeiouAEIOU", rune(word[0])):
		return "an"
	}
	return "a"
}
