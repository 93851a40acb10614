// Package propresenter renders lyric lines as plain text blocks ready for
// slide-show import: a fixed number of lines per block, blank lines
// between blocks.
package propresenter

import "strings"

// DefaultLinesPerSlide is the block size used when none is configured.
const DefaultLinesPerSlide = 2

// Formatter splits lyric lines into import blocks.
type Formatter struct {
	linesPerSlide int
}

// New returns a formatter producing blocks of DefaultLinesPerSlide lines.
func New() *Formatter {
	return &Formatter{linesPerSlide: DefaultLinesPerSlide}
}

// WithLinesPerSlide sets the block size. Values below one are clamped to
// one.
func (f *Formatter) WithLinesPerSlide(n int) *Formatter {
	if n < 1 {
		n = 1
	}
	f.linesPerSlide = n
	return f
}

// Format renders the lines as newline-joined blocks separated by blank
// lines. The final block may be short.
func (f *Formatter) Format(lines []string) string {
	var blocks []string
	for start := 0; start < len(lines); start += f.linesPerSlide {
		end := start + f.linesPerSlide
		if end > len(lines) {
			end = len(lines)
		}
		blocks = append(blocks, strings.Join(lines[start:end], "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

// FormatWithTitle prepends the title as its own block when present.
func (f *Formatter) FormatWithTitle(title string, lines []string) string {
	body := f.Format(lines)
	if title == "" {
		return body
	}
	if body == "" {
		return title
	}
	return title + "\n\n" + body
}

// FormatWithNewline is FormatWithTitle with a trailing newline, convenient
// for writing files.
func (f *Formatter) FormatWithNewline(title string, lines []string) string {
	out := f.FormatWithTitle(title, lines)
	if out == "" {
		return out
	}
	return out + "\n"
}
