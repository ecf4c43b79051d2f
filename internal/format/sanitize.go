package format

import "strings"

// EscapeForDisplay neutralizes untrusted text before it reaches the
// terminal. ANSI escape sequences (CSI and OSC) and other non-printing
// control runes are removed so the result always renders as literal
// characters; newlines and tabs collapse to single spaces.
func EscapeForDisplay(text string) string {
	const (
		stateText = iota
		stateEsc
		stateCSI
		stateOSC
	)

	var b strings.Builder
	b.Grow(len(text))
	state := stateText

	for _, r := range text {
		switch state {
		case stateEsc:
			switch r {
			case '[':
				state = stateCSI
			case ']':
				state = stateOSC
			default:
				// Two-rune sequence; the second rune is consumed.
				state = stateText
			}
			continue
		case stateCSI:
			// CSI sequences terminate on a final byte in @-~.
			if r >= 0x40 && r <= 0x7e {
				state = stateText
			}
			continue
		case stateOSC:
			// OSC sequences terminate on BEL (ST starts with ESC and
			// is caught by the 0x1b case below on re-entry).
			if r == 0x07 {
				state = stateText
			} else if r == 0x1b {
				state = stateEsc
			}
			continue
		}

		switch {
		case r == 0x1b:
			state = stateEsc
		case r == '\n' || r == '\r' || r == '\t':
			b.WriteRune(' ')
		case r < 0x20 || r == 0x7f:
			// Other control runes are dropped outright.
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Fallback returns def when s is empty or whitespace-only, otherwise s.
// Used by the renderer for fields like author ("Unknown") and language
// ("Various").
func Fallback(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
