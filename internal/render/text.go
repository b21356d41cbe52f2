package render

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const (
	ellipsis    = "…"
	punctuation = ",.;:!? "
)

var (
	breaksRegex         = regexp.MustCompile(`(?i)<br\s*/?>|</p>|</div>|</li>`)
	multipleSpacesRegex = regexp.MustCompile(`\s+`)
)

// plainText converts an HTML fragment to a single line of text
func plainText(html string) string {
	if html == "" {
		return ""
	}

	// Keep paragraphs and line breaks apart once the tags are gone
	html = breaksRegex.ReplaceAllStringFunc(html, func(tag string) string {
		return tag + " "
	})

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))

	if err != nil {
		return ""
	}

	text := multipleSpacesRegex.ReplaceAllString(doc.Text(), " ")

	return strings.TrimSpace(text)
}

// truncate shortens text to at most limit runes, cutting at a word boundary
// and ending it with an ellipsis
func truncate(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}

	lastWordEnd := 0
	currentCount := 0

	for i, r := range text {
		currentCount++

		if unicode.IsSpace(r) {
			lastWordEnd = i
		}

		// Leave room for the ellipsis
		if currentCount >= limit {
			var truncated string

			if lastWordEnd > 0 {
				truncated = text[:lastWordEnd]
			} else {
				truncated = text[:i]
			}

			return strings.TrimRight(truncated, punctuation) + ellipsis
		}
	}

	return text
}
