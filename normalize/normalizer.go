// Package normalize turns raw slide text into clean lyric lines and
// matches them against filename-derived song titles.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/bmcclure/verselift/model"
)

// punctuation is stripped outright. The straight apostrophe is absent on
// purpose; it belongs to the apostrophe class below.
const punctuation = ".,;:?!\"“”„‚«»‹›()[]{}<>—–-/\\|@#$%^&*_+=~"

// apostrophes are kept, folded to a straight apostrophe, but only between
// letters. "don't" keeps its mark; a leading quote in "'hello" does not.
const apostrophes = "'’‘`"

var (
	spacesRe = regexp.MustCompile(`[ \t]+`)
	suffixRe = regexp.MustCompile(`(?i)\s*[-_]?\s*(lyrics?|slides?|slideshow|presentation|pptx?|worship|song)\s*$`)
)

// Normalizer cleans presentation text for lyric re-import. The zero value
// is not usable; construct with New.
type Normalizer struct {
	preserveLineBreaks bool
	punct              map[rune]bool
	apostrophe         map[rune]bool
}

// New returns a normalizer that flattens line breaks within a run into
// spaces.
func New() *Normalizer {
	n := &Normalizer{
		punct:      make(map[rune]bool, len(punctuation)),
		apostrophe: make(map[rune]bool, 4),
	}
	for _, r := range punctuation {
		n.punct[r] = true
	}
	for _, r := range apostrophes {
		n.apostrophe[r] = true
	}
	return n
}

// WithPreserveLineBreaks keeps newlines within a run intact instead of
// flattening them to spaces.
func (n *Normalizer) WithPreserveLineBreaks() *Normalizer {
	n.preserveLineBreaks = true
	return n
}

// Line normalizes a single run of text: punctuation is removed,
// apostrophes survive only between letters, and whitespace runs collapse
// to single spaces. Normalization is idempotent.
func (n *Normalizer) Line(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	for i, r := range runes {
		switch {
		case n.apostrophe[r]:
			if i > 0 && i < len(runes)-1 &&
				unicode.IsLetter(runes[i-1]) && unicode.IsLetter(runes[i+1]) {
				b.WriteRune('\'')
			}
		case n.punct[r]:
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	if n.preserveLineBreaks {
		lines := strings.Split(cleaned, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimSpace(spacesRe.ReplaceAllString(line, " "))
		}
		return strings.Join(lines, "\n")
	}
	cleaned = strings.ReplaceAll(cleaned, "\n", " ")
	return strings.TrimSpace(spacesRe.ReplaceAllString(cleaned, " "))
}

// Lines normalizes a run and splits it into non-empty lines. With line
// breaks flattened this yields at most one line per run.
func (n *Normalizer) Lines(text string) []string {
	var out []string
	for _, line := range strings.Split(n.Line(text), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Document normalizes every run of every slide into a flat lyric-line
// list, in slide order then run order.
func (n *Normalizer) Document(doc *model.Document) []string {
	var out []string
	for _, slide := range doc.Slides {
		for _, run := range slide.Lines {
			out = append(out, n.Lines(run.Text)...)
		}
	}
	return out
}
