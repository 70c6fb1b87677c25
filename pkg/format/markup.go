package format

import (
	"unicode/utf8"

	md "github.com/nao1215/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Link formats a Markdown link, or returns the bare text when url is empty.
func Link(text, url string) string {
	if url == "" {
		return text
	}
	return md.Link(text, url)
}

// italic wraps text in single asterisks.
func italic(text string) string {
	return md.Italic(text)
}

// bold wraps text in double asterisks.
func bold(text string) string {
	return md.Bold(text)
}

// strikethrough wraps text in double tildes.
func strikethrough(text string) string {
	return md.Strikethrough(text)
}

// capitalize title-cases a single word such as a rank name.
// A Caser holds state, so one is created per call.
func capitalize(word string) string {
	return cases.Title(language.English).String(word)
}

// runeLen counts characters the way display limits do.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
