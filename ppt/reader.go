// Package ppt parses legacy binary PowerPoint presentations.
//
// The legacy format stores content as a tree of self-describing records
// inside a compound-file container. Parsing runs in two passes over the
// same traversal: a pre-flight validation pass that accepts or rejects the
// stream, then an extraction pass that collects text runs and groups them
// into slides.
package ppt

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/richardlehane/mscfb"

	"github.com/bmcclure/verselift/model"
)

const (
	// documentStream is the container stream holding the record tree.
	documentStream = "PowerPoint Document"
	// userStream is present in well-formed files; its absence is only a
	// warning.
	userStream = "Current User"
)

var (
	// ErrContainer indicates compound-file level corruption.
	ErrContainer = errors.New("compound-file container error")

	// ErrUnsupported indicates a readable file in a format this parser
	// does not handle (wrong Office format, pre-97 version, image-only).
	ErrUnsupported = errors.New("unsupported presentation format")

	// ErrCorrupted indicates a truncated or damaged file.
	ErrCorrupted = errors.New("corrupted presentation file")
)

// Parse decodes a legacy binary presentation into a Document. filename is
// recorded on the Document and used only for reporting. A file that
// validates but yields no text produces an empty Document plus a warning,
// not an error.
func Parse(data []byte, filename string) (*model.Document, []model.Warning, error) {
	stream, warnings, err := openDocumentStream(data)
	if err != nil {
		return nil, nil, err
	}

	validation, err := Validate(stream)
	if err != nil {
		return nil, nil, err
	}
	for code := range validation.UnsupportedTextPurposes {
		warnings = append(warnings, model.Warning{
			Code:    "unknown-text-purpose",
			Message: fmt.Sprintf("text purpose code %d is not supported; some text may be skipped", code),
		})
	}
	slog.Debug("ppt stream validated",
		"file", filename,
		"stream_size", validation.StreamSize,
		"has_document", validation.HasDocument,
		"has_slides", validation.HasSlides,
		"text_records", validation.TextRecordCount,
		"malformed", validation.MalformedRecords)

	doc := model.NewDocument(filename, model.FormatPPT)
	for _, slide := range assembleSlides(collectEntries(stream)) {
		doc.AddSlide(slide)
	}

	if len(doc.Slides) == 0 {
		warnings = append(warnings, model.Warning{
			Code:    "no-text",
			Message: "no text content extracted; the file may contain only images or use an unsupported text storage",
		})
		slog.Warn("no text content extracted", "file", filename)
	}

	return doc, warnings, nil
}

// openDocumentStream opens the compound-file container and reads the main
// content stream fully into memory.
func openDocumentStream(data []byte) ([]byte, []model.Warning, error) {
	container, err := mscfb.New(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrContainer, err)
	}

	var stream []byte
	var found, hasUser bool
	for {
		entry, err := container.Next()
		if err != nil {
			break
		}
		switch entry.Name {
		case documentStream:
			b, err := io.ReadAll(entry)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: reading %q stream: %v", ErrContainer, documentStream, err)
			}
			stream, found = b, true
		case userStream:
			hasUser = true
		}
	}

	if !found {
		return nil, nil, fmt.Errorf(
			"%w: missing %q stream; this may not be a presentation or may be a different Office format",
			ErrUnsupported, documentStream)
	}

	var warnings []model.Warning
	if !hasUser {
		warnings = append(warnings, model.Warning{
			Code:    "missing-stream",
			Message: fmt.Sprintf("missing %q stream; the file may be an older format variant", userStream),
		})
	}
	return stream, warnings, nil
}

// cursor is the traversal state for the extraction pass: the declared
// purpose of upcoming text and the running persistence-marker count. Both
// advance in document order as the walker visits records.
type cursor struct {
	purpose textPurpose
	persist int
}

// collectEntries is the extraction pass: the same traversal as validation,
// but productive. Every text run that decodes and survives content
// filtering is collected with the hints later used for slide grouping.
func collectEntries(stream []byte) []textEntry {
	var entries []textEntry
	cur := cursor{purpose: purposeBody}

	walkRecords(stream, func(rec record) bool {
		switch rec.typ {
		case rtSlidePersist:
			cur.persist++
		case rtTextHeader:
			if len(rec.body) >= 4 {
				cur.purpose = purposeFromCode(binary.LittleEndian.Uint32(rec.body))
			}
		case rtTextChars:
			if text := decodeUnicodeRun(rec.body); isSlideText(text, cur.purpose) {
				entries = append(entries, textEntry{
					text:    text,
					purpose: cur.purpose,
					offset:  rec.offset,
					persist: cur.persist,
				})
			}
		case rtTextBytes:
			if text := decodeByteRun(rec.body); isSlideText(text, cur.purpose) {
				entries = append(entries, textEntry{
					text:    text,
					purpose: cur.purpose,
					offset:  rec.offset,
					persist: cur.persist,
				})
			}
		case rtCString:
			// Metadata strings; actual content always arrives in text runs.
		}
		return true
	})

	return entries
}
