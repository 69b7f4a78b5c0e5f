package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation stripped", "What's New in Go 1.22?", "whats-new-in-go-122"},
		{"whitespace collapsed", "  Midnight \t  Muse\n Notes ", "midnight-muse-notes"},
		{"edge hyphens trimmed", "--Dark Mode--", "dark-mode"},
		{"existing hyphens kept", "state-of-the art", "state-of-the-art"},
		{"non ascii dropped", "Café Crème", "caf-crme"},
		{"only symbols", "!!!", ""},
		{"nbsp separates words", "a\u00a0b", "a-b"},
		{"unicode spaces collapsed", "Late\u2003\u00a0Night", "late-night"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GenerateSlug(tc.title))
		})
	}
}

func TestGenerateSlug_CollidingTitles(t *testing.T) {
	assert.Equal(t, GenerateSlug("Night Owls"), GenerateSlug("night owls!"))
}
