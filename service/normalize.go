package service

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	quoteRe      = regexp.MustCompile("[“”„]")
	apostropheRe = regexp.MustCompile("[‘’‚]")
)

// NormalizeText collapses whitespace and canonicalizes quote glyphs.
// Idempotent: NormalizeText(NormalizeText(s)) == NormalizeText(s).
func NormalizeText(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = quoteRe.ReplaceAllString(text, `"`)
	text = apostropheRe.ReplaceAllString(text, "'")
	return strings.TrimSpace(text)
}
