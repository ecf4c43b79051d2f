package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want string
	}{
		{"zero", 0, "0"},
		{"below threshold", 999, "999"},
		{"exactly one thousand", 1000, "1.0K"},
		{"thousands rounded", 1250, "1.2K"},
		{"high thousands", 999_499, "999.5K"},
		{"millions", 1_500_000, "1.5M"},
		{"exactly one million", 1_000_000, "1.0M"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCount(tt.n))
		})
	}
}
