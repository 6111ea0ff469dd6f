package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain json", in: `{"isValid":true}`, want: `{"isValid":true}`},
		{name: "json fence", in: "```json\n{\"isValid\":true}\n```", want: `{"isValid":true}`},
		{name: "bare fence", in: "  ```\n{}\n```  ", want: `{}`},
		{name: "empty", in: "   ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFences(tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate([]byte("abc"), 3))
	assert.Equal(t, "ab...", Truncate([]byte("abc"), 2))
}
