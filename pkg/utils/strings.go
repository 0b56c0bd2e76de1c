package utils

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// non-greedy, so nested/adjacent tags fall in one pass each
var tagRe = regexp.MustCompile(`<[^<]+?>`)

var titleCaser = cases.Title(language.English)

// StripTags removes every well-formed tag-like substring. Idempotent on
// already-stripped text.
func StripTags(s string) string {
	return strings.TrimSpace(tagRe.ReplaceAllString(s, ""))
}

// TitleWords title-cases each word ("learning module" -> "Learning Module").
func TitleWords(s string) string {
	return titleCaser.String(s)
}

// DropClock trims a time-of-day suffix from a date string:
// "2020-05-01 23:59:00" -> "2020-05-01".
func DropClock(s string) string {
	return strings.SplitN(s, " ", 2)[0]
}
