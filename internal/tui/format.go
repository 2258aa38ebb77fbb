package tui

import (
	"fmt"
	"strings"
	"time"
)

// formatMMSS renders a duration as MM:SS, truncating sub-second remainder.
func formatMMSS(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// bigHeight is the number of rows in the block-glyph font.
const bigHeight = 5

// bigDigitFont maps '0'-'9' to 5-row block glyphs.
var bigDigitFont = [10][bigHeight]string{
	{"█████", "█   █", "█   █", "█   █", "█████"}, // 0
	{"  █  ", " ██  ", "  █  ", "  █  ", "█████"}, // 1
	{"█████", "    █", "█████", "█    ", "█████"}, // 2
	{"█████", "    █", "█████", "    █", "█████"}, // 3
	{"█   █", "█   █", "█████", "    █", "    █"}, // 4
	{"█████", "█    ", "█████", "    █", "█████"}, // 5
	{"█████", "█    ", "█████", "█   █", "█████"}, // 6
	{"█████", "    █", "   █ ", "  █  ", "  █  "}, // 7
	{"█████", "█   █", "█████", "█   █", "█████"}, // 8
	{"█████", "█   █", "█████", "    █", "█████"}, // 9
}

var bigColon = [bigHeight]string{"  ", "██", "  ", "██", "  "}

// bigGlyph returns the block glyph rows for a single MM:SS character.
func bigGlyph(ch rune) [bigHeight]string {
	switch {
	case ch >= '0' && ch <= '9':
		return bigDigitFont[ch-'0']
	case ch == ':':
		return bigColon
	default:
		return [bigHeight]string{}
	}
}

// bigTimeLines renders an MM:SS string as block-glyph rows.
func bigTimeLines(text string) []string {
	chars := []rune(text)

	lines := make([]string, 0, bigHeight)
	for row := 0; row < bigHeight; row++ {
		var sb strings.Builder
		for i, ch := range chars {
			g := bigGlyph(ch)
			sb.WriteString(g[row])
			if i+1 < len(chars) {
				sb.WriteByte(' ')
			}
		}
		lines = append(lines, sb.String())
	}

	return lines
}
