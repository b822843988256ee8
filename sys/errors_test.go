package sys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeForText(t *testing.T) {
	tests := map[string]int{
		"Out of memory":                   ENoMem,
		"Error reading from datastream":   EFRead,
		"Error writing to datastream":     EFWrite,
		"Error seeking in datastream":     EFSeek,
		"That operation is not supported": Unsupported,
		"Unknown SDL error":               NoErrorCode,
		"Couldn't set video mode":         NoErrorCode,
		"":                                NoErrorCode,
	}
	for text, want := range tests {
		assert.Equal(t, want, CodeForText(text), "%q", text)
	}
}
