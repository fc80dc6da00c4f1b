package console

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dekarrin/rosed"
)

// Wrap breaks every line of text longer than width at word boundaries.
// Lines that already fit, such as table rows, are left untouched. A width
// of zero or less disables wrapping. Color codes take no width: a colored
// line breaks where its plain text would.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		plain := StripANSI(line)
		if len(plain) <= width {
			continue
		}
		wrapped := rosed.Edit(plain).Wrap(width).String()
		if plain != line {
			wrapped = reapplyANSI(line, wrapped)
		}
		lines[i] = wrapped
	}
	return strings.Join(lines, "\n")
}

// ansiSpan is either one escape sequence or one visible rune of a line.
type ansiSpan struct {
	escape string
	r      rune
}

func splitANSI(s string) []ansiSpan {
	var spans []ansiSpan
	for i := 0; i < len(s); {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			if j := strings.IndexByte(s[i+2:], 'm'); j >= 0 {
				end := i + 2 + j + 1
				spans = append(spans, ansiSpan{escape: s[i:end]})
				i = end
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		spans = append(spans, ansiSpan{r: r})
		i += size
	}
	return spans
}

// reapplyANSI walks wrapped, the wrapped plain text of colored, and puts
// each of colored's escape sequences back before the rune it preceded.
// Whitespace the wrapper collapsed or turned into a line break is skipped.
func reapplyANSI(colored, wrapped string) string {
	spans := splitANSI(colored)
	var b strings.Builder
	next := 0
	flushEscapes := func() {
		for next < len(spans) && spans[next].escape != "" {
			b.WriteString(spans[next].escape)
			next++
		}
	}
	for _, w := range wrapped {
		for {
			flushEscapes()
			if next >= len(spans) || spans[next].r == w || !unicode.IsSpace(spans[next].r) || w == ' ' {
				break
			}
			next++
		}
		if next < len(spans) && spans[next].r == w {
			next++
		}
		b.WriteRune(w)
	}
	for ; next < len(spans); next++ {
		b.WriteString(spans[next].escape)
	}
	return b.String()
}
