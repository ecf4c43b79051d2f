package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeForDisplay(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Attention Is All You Need", "Attention Is All You Need"},
		{"angle brackets stay literal", "<img src=x onerror=alert(1)>", "<img src=x onerror=alert(1)>"},
		{"csi color sequence stripped", "\x1b[31mred\x1b[0m", "red"},
		{"cursor movement stripped", "a\x1b[2Jb", "ab"},
		{"osc title sequence stripped", "\x1b]0;evil\x07title", "title"},
		{"bare escape pair consumed", "\x1bMhello", "hello"},
		{"newlines and tabs collapse", "line1\nline2\tend", "line1 line2 end"},
		{"control bytes dropped", "a\x00b\x08c", "abc"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EscapeForDisplay(tt.in)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "\x1b")
		})
	}
}

func TestEscapeForDisplayNeverEmitsControl(t *testing.T) {
	got := EscapeForDisplay("\x1b[31m\x1b]8;;http://x\x07\x01\x02\x7f")
	for _, r := range got {
		assert.False(t, r < 0x20 || r == 0x7f, "control rune %q leaked", r)
	}
}

func TestFallback(t *testing.T) {
	assert.Equal(t, "Unknown", Fallback("", "Unknown"))
	assert.Equal(t, "Unknown", Fallback("   ", "Unknown"))
	assert.Equal(t, "torvalds", Fallback("torvalds", "Unknown"))
}

func TestTruncateEnd(t *testing.T) {
	assert.Equal(t, "", TruncateEnd("hello", 0))
	assert.Equal(t, "…", TruncateEnd("hello", 1))
	assert.Equal(t, "hell…", TruncateEnd("hello world", 5))
	assert.Equal(t, "hello", TruncateEnd("hello", 5))
	// Rune safety.
	assert.Equal(t, "héll…", TruncateEnd("héllo world", 5))
}

func TestTruncateMiddle(t *testing.T) {
	assert.Equal(t, "hello", TruncateMiddle("hello", 10))
	got := TruncateMiddle("https://github.com/owner/repository", 20)
	assert.LessOrEqual(t, len([]rune(got)), 20)
	assert.True(t, strings.Contains(got, "…"))
	assert.True(t, strings.HasPrefix(got, "https://"))
}
