package extractor

import (
	"strings"
	"testing"
)

func TestIsReadableText(t *testing.T) {
	tests := []struct {
		name     string
		pages    []string
		expected bool
	}{
		{
			name: "ledger page text",
			pages: []string{
				"General Ledger [Detail]\n1-2210 Cash Account\nBeginning Balance: $1000.00\nTotal: $0.00 $0.00 $0.00 $1000.00",
			},
			expected: true,
		},
		{
			name:     "too short",
			pages:    []string{"Account"},
			expected: false,
		},
		{
			name:     "no ledger vocabulary",
			pages:    []string{strings.Repeat("lorem ipsum dolor sit amet ", 10)},
			expected: false,
		},
		{
			name:     "mis-decoded font garbage",
			pages:    []string{strings.Repeat("þÿƒˆéè", 40)},
			expected: false,
		},
		{
			name:     "empty",
			pages:    nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isReadableText(tt.pages); got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTextQuality(t *testing.T) {
	if q := textQuality([]string{"Beginning Balance: $1000.00"}); q < 0.99 {
		t.Errorf("clean text quality: got %f, want ~1.0", q)
	}
	if q := textQuality([]string{strings.Repeat("þÿ", 50)}); q > 0.1 {
		t.Errorf("garbage text quality: got %f, want ~0.0", q)
	}
	if q := textQuality(nil); q != 0 {
		t.Errorf("empty input quality: got %f, want 0", q)
	}
}

func TestExtractTextMissingFile(t *testing.T) {
	if _, err := ExtractText("/does/not/exist.pdf"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
