package ppt

import (
	"encoding/binary"
	"fmt"
)

// Validation is the tally collected by the pre-flight pass over the
// document stream, used to accept or reject a file before the extraction
// pass runs.
type Validation struct {
	// StreamSize is the length of the document stream in bytes.
	StreamSize int

	// HasDocument reports whether a document marker was found.
	HasDocument bool

	// HasSlides reports whether any slide markers were found.
	HasSlides bool

	// HasTextHeaders reports whether any text-header records were found.
	HasTextHeaders bool

	// HasTextContent reports whether any text-run records were found.
	HasTextContent bool

	// TextRecordCount is the number of text-run records found.
	TextRecordCount int

	// MalformedRecords is the number of records whose declared body
	// overran their enclosing scope.
	MalformedRecords int

	// UnsupportedTextPurposes holds purpose codes outside the known range
	// seen in text headers. Non-fatal; some text may be misclassified.
	UnsupportedTextPurposes map[uint32]struct{}
}

// Validate scans the document stream and rejects files this parser cannot
// handle: truncated streams, streams with no document marker (pre-97 or
// corrupted), streams with no text storage at all, and streams with an
// excessive number of malformed records.
func Validate(data []byte) (*Validation, error) {
	v := &Validation{
		StreamSize:              len(data),
		UnsupportedTextPurposes: make(map[uint32]struct{}),
	}

	if len(data) < minStreamSize {
		return nil, fmt.Errorf(
			"%w: document stream too small (%d bytes, minimum %d); the file may be truncated",
			ErrCorrupted, len(data), minStreamSize)
	}

	v.MalformedRecords = walkRecords(data, func(rec record) bool {
		switch rec.typ {
		case rtDocument:
			v.HasDocument = true
		case rtSlide:
			v.HasSlides = true
		case rtTextHeader:
			v.HasTextHeaders = true
			if len(rec.body) >= 4 {
				if purpose := binary.LittleEndian.Uint32(rec.body); purpose > maxTextPurpose {
					v.UnsupportedTextPurposes[purpose] = struct{}{}
				}
			}
		case rtTextChars, rtTextBytes:
			v.HasTextContent = true
			v.TextRecordCount++
		}
		return true
	})

	if !v.HasDocument {
		return nil, fmt.Errorf(
			"%w: no document record found; the file may use a pre-97 format or be corrupted",
			ErrUnsupported)
	}
	if !v.HasTextContent && !v.HasTextHeaders {
		return nil, fmt.Errorf(
			"%w: no text records found; the presentation may contain only images or use an unsupported text storage",
			ErrUnsupported)
	}
	if v.MalformedRecords > maxMalformed {
		return nil, fmt.Errorf(
			"%w: too many malformed records (%d); the file may be corrupted",
			ErrCorrupted, v.MalformedRecords)
	}

	return v, nil
}
