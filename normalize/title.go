package normalize

import (
	"strings"
	"unicode"

	"github.com/bmcclure/verselift/model"
)

// songNameFromFilename derives the probable song name from a source file
// name: the extension and common trailing qualifiers ("lyrics", "slides",
// "worship" and the like) are stripped, then the rest is reduced to
// comparison form.
func (n *Normalizer) songNameFromFilename(filename string) string {
	name := filename
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[:i]
	}
	name = suffixRe.ReplaceAllString(name, "")
	return normalizeForComparison(name)
}

// normalizeForComparison reduces text to lowercase letters, digits and
// single spaces so visually different spellings of the same title compare
// equal. Punctuation drops out entirely, so "It's Well" and "Its Well"
// reduce to the same form.
func normalizeForComparison(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// similarity scores two comparison-form strings in [0, 1]. Equal strings
// score 1; containment scores by length ratio; otherwise word sets are
// compared with Jaccard overlap, so reordered titles still score 1.
func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	shorter, longer := a, b
	if len([]rune(shorter)) > len([]rune(longer)) {
		shorter, longer = longer, shorter
	}
	if strings.Contains(longer, shorter) {
		return float64(len([]rune(shorter))) / float64(len([]rune(longer)))
	}

	aWords := map[string]bool{}
	for _, w := range strings.Fields(a) {
		aWords[w] = true
	}
	bWords := map[string]bool{}
	for _, w := range strings.Fields(b) {
		bWords[w] = true
	}
	both := 0
	for w := range aWords {
		if bWords[w] {
			both++
		}
	}
	union := len(aWords) + len(bWords) - both
	if union == 0 {
		return 0
	}
	return float64(both) / float64(union)
}

// titleThreshold is the minimum similarity for a first-slide line to be
// taken as the song title.
const titleThreshold = 0.7

// isLikelyTitle reports whether a normalized line plausibly is the song
// title for the given filename-derived song name.
func isLikelyTitle(line, songName string) bool {
	cmp := normalizeForComparison(line)
	length := len([]rune(cmp))
	if length < 2 || length > 60 {
		return false
	}
	return similarity(cmp, songName) >= titleThreshold
}

// DocumentWithTitle normalizes a document and additionally looks for the
// song title on the first slide, guided by the source filename. When a
// line matches, it is returned separately and excluded from the lyric
// lines; otherwise title is "" and all lines are returned.
func (n *Normalizer) DocumentWithTitle(doc *model.Document) (title string, lines []string) {
	songName := n.songNameFromFilename(doc.Filename)

	titleSlide := -1
	titleRun := -1
	if songName != "" && len(doc.Slides) > 0 {
		first := doc.Slides[0]
		for i, run := range first.Lines {
			if isLikelyTitle(run.Text, songName) {
				title = n.Line(run.Text)
				titleSlide, titleRun = 0, i
				break
			}
		}
	}

	for si, slide := range doc.Slides {
		for ri, run := range slide.Lines {
			if si == titleSlide && ri == titleRun {
				continue
			}
			lines = append(lines, n.Lines(run.Text)...)
		}
	}
	return title, lines
}
