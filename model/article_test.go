package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "empty content", content: "", want: 1},
		{name: "single word", content: "hello", want: 1},
		{name: "exactly one minute", content: words(200), want: 1},
		{name: "just over one minute", content: words(201), want: 2},
		{name: "several minutes", content: words(1000), want: 5},
		{name: "whitespace only", content: "   \n\t  ", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadingTime(tt.content))
		})
	}
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}
