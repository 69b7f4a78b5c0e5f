package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	in := `<h1>Title</h1><p>First <strong>bold</strong> line.</p><script>alert(1)</script><p>Second</p>`
	assert.Equal(t, "Title First bold line. Second", PlainText(in))
}

func TestGenerateExcerpt_Short(t *testing.T) {
	assert.Equal(t, "Just a note", GenerateExcerpt("<p>Just a note</p>", 50))
}

func TestGenerateExcerpt_TruncatesOnWordBoundary(t *testing.T) {
	content := "<p>" + strings.Repeat("word ", 60) + "</p>"
	got := GenerateExcerpt(content, 23)
	assert.Equal(t, "word word word word...", got)
}
