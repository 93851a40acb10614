package ppt

import (
	"bytes"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	xunicode "golang.org/x/text/encoding/unicode"
)

// textPurpose classifies what a run of text is for, as declared by the
// text-header record preceding it.
type textPurpose uint32

const (
	purposeTitle textPurpose = iota
	purposeBody
	purposeNotes
	purposeUnused
	purposeOther
	purposeCenterBody
	purposeCenterTitle
	purposeHalfBody
	purposeQuarterBody
)

// maxTextPurpose is the highest purpose code this parser understands.
const maxTextPurpose = uint32(purposeQuarterBody)

// purposeFromCode maps a header code to a purpose. Codes outside the known
// range are treated as Other; they were already tallied during validation.
func purposeFromCode(code uint32) textPurpose {
	if code > maxTextPurpose {
		return purposeOther
	}
	return textPurpose(code)
}

func (p textPurpose) isTitle() bool {
	return p == purposeTitle || p == purposeCenterTitle
}

// isSlideContent reports whether runs of this purpose belong on a slide.
// Only notes and unused placeholders are excluded; Other frequently carries
// the main content in older files.
func (p textPurpose) isSlideContent() bool {
	return p != purposeNotes && p != purposeUnused
}

// decodeUnicodeRun decodes a UTF-16LE text run, truncating at the first
// null code unit. Returns "" for odd-length or undecodable runs.
func decodeUnicodeRun(body []byte) string {
	if len(body) == 0 || len(body)%2 != 0 {
		return ""
	}
	for i := 0; i+1 < len(body); i += 2 {
		if body[i] == 0 && body[i+1] == 0 {
			body = body[:i]
			break
		}
	}
	if len(body) == 0 {
		return ""
	}
	decoded, err := xunicode.UTF16(xunicode.LittleEndian, xunicode.IgnoreBOM).NewDecoder().Bytes(body)
	if err != nil {
		return ""
	}
	return string(decoded)
}

// decodeByteRun decodes an 8-bit Windows-1252 text run, truncating at the
// first null byte. The code page leaves 0x81, 0x8D, 0x8F, 0x90 and 0x9D
// undefined; those decode into the C1 control range, which is stripped so
// unmapped bytes drop out of the text instead of surviving as junk.
func decodeByteRun(body []byte) string {
	if i := bytes.IndexByte(body, 0); i >= 0 {
		body = body[:i]
	}
	if len(body) == 0 {
		return ""
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(body)
	if err != nil {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if (r >= 0x80 && r <= 0x9F) || r == unicode.ReplacementChar {
			return -1
		}
		return r
	}, string(decoded))
}

// templatePlaceholders are master-template strings that never belong in
// extracted content. Matched case-insensitively as substrings.
var templatePlaceholders = []string{
	"click to edit",
	"edit master",
	"master title",
	"master text",
	"second level",
	"third level",
	"fourth level",
	"fifth level",
}

// isSlideText applies the content filter: the run must be non-empty, carry
// a content purpose, contain no template placeholder, and not be a lone
// non-alphanumeric character (bullet glyphs).
func isSlideText(text string, purpose textPurpose) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if !purpose.isSlideContent() {
		return false
	}

	lower := strings.ToLower(trimmed)
	for _, placeholder := range templatePlaceholders {
		if strings.Contains(lower, placeholder) {
			return false
		}
	}

	runes := []rune(trimmed)
	if len(runes) == 1 && !unicode.IsLetter(runes[0]) && !unicode.IsDigit(runes[0]) {
		return false
	}

	return true
}
