package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases and trims", input: "  Onix LT  ", want: "onix lt"},
		{name: "strips accents", input: "Até Sedã", want: "ate seda"},
		{name: "empty input", input: "", want: ""},
		{name: "only whitespace", input: "   ", want: ""},
		{name: "cedilla", input: "caminhão", want: "caminhao"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.input))
		})
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "collapses spaces", input: "HB 20 S", want: "hb20s"},
		{name: "collapses hyphens", input: "T-Cross", want: "tcross"},
		{name: "already collapsed", input: "onix", want: "onix"},
		{name: "mixed separators", input: " Onix - Plus ", want: "onixplus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeKey(tt.input))
		})
	}
}

func TestTitleWords(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "onix plus", want: "Onix Plus"},
		{input: "t-cross", want: "T-Cross"},
		{input: "hb20s", want: "Hb20s"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleWords(tt.input))
		})
	}
}
