package chat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vendasim/internal/chat"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "paragraph mode",
			raw:  "A\n\nB\n\nC",
			want: []string{"A", "B", "C"},
		},
		{
			name: "line mode when no blank lines",
			raw:  "A\nB\nC",
			want: []string{"A", "B", "C"},
		},
		{
			name: "blank run with inner whitespace",
			raw:  "Primeiro parágrafo.\n  \t\n\nSegundo parágrafo.",
			want: []string{"Primeiro parágrafo.", "Segundo parágrafo."},
		},
		{
			name: "paragraphs keep internal single newlines",
			raw:  "Linha um\nLinha dois\n\nOutro bloco",
			want: []string{"Linha um\nLinha dois", "Outro bloco"},
		},
		{
			name: "windows line endings",
			raw:  "A\r\n\r\nB",
			want: []string{"A", "B"},
		},
		{
			name: "chunks are trimmed",
			raw:  "  oi  \n\n  tudo bem?  ",
			want: []string{"oi", "tudo bem?"},
		},
		{
			name: "whitespace only yields a single empty chunk",
			raw:  "   ",
			want: []string{""},
		},
		{
			name: "single line",
			raw:  "apenas uma frase",
			want: []string{"apenas uma frase"},
		},
		{
			name: "empty input",
			raw:  "",
			want: []string{""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chat.Split(tt.raw))
		})
	}
}
