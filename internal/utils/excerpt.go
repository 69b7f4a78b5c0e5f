package utils

import (
	"strings"

	"golang.org/x/net/html"
)

const DefaultExcerptLength = 160

// PlainText returns the visible text of an HTML fragment with whitespace collapsed.
// Script and style bodies are dropped.
func PlainText(content string) string {
	z := html.NewTokenizer(strings.NewReader(content))
	var b strings.Builder
	skip := 0
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF or a malformed fragment; either way return what was read
			return strings.Join(strings.Fields(b.String()), " ")
		case html.StartTagToken:
			name, _ := z.TagName()
			if isSkippedTag(string(name)) {
				skip++
			}
			b.WriteByte(' ')
		case html.EndTagToken:
			name, _ := z.TagName()
			if isSkippedTag(string(name)) && skip > 0 {
				skip--
			}
			b.WriteByte(' ')
		case html.SelfClosingTagToken:
			b.WriteByte(' ')
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

func isSkippedTag(name string) bool {
	return name == "script" || name == "style"
}

// GenerateExcerpt builds a short plain-text preview of HTML content, cut on a word
// boundary. "..." is appended only when the text was truncated.
func GenerateExcerpt(content string, maxRunes int) string {
	if maxRunes <= 0 {
		maxRunes = DefaultExcerptLength
	}
	text := PlainText(content)
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	cut := string(runes[:maxRunes])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "..."
}
