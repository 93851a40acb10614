// Package pptx extracts slide text from modern zip/XML presentations.
//
// The archive's relationship manifest drives discovery: slide parts are
// found and ordered from ppt/_rels/presentation.xml.rels rather than by
// globbing the archive, so presentation order is honored even when part
// names do not follow the usual slideN.xml convention.
package pptx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"

	"github.com/bmcclure/verselift/model"
)

var (
	// ErrArchive indicates the data is not a readable zip archive or a
	// required part is missing from it.
	ErrArchive = errors.New("pptx: unreadable archive")

	// ErrManifest indicates the presentation relationship manifest is
	// missing or unparseable.
	ErrManifest = errors.New("pptx: bad relationship manifest")
)

// Parse extracts a document from the raw bytes of a zip/XML presentation.
// Warnings report recoverable oddities such as malformed slide markup;
// the returned error is nil whenever a document could be produced.
func Parse(data []byte, filename string) (*model.Document, []model.Warning, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrArchive, err)
	}

	rels, err := readArchiveFile(r, presentationRels)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrManifest, presentationRels, err)
	}
	slidePaths, err := slideOrder(rels)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrManifest, err)
	}

	var warnings []model.Warning
	doc := model.NewDocument(filename, model.FormatPPTX)
	for i, slidePath := range slidePaths {
		slide, slideWarnings, err := parseSlide(r, slidePath, i+1)
		if err != nil {
			return nil, warnings, err
		}
		warnings = append(warnings, slideWarnings...)
		doc.AddSlide(slide)
	}

	if len(doc.Slides) == 0 {
		warnings = append(warnings, model.Warning{
			Code:    "no-slides",
			Message: "presentation contains no slide parts",
		})
		slog.Warn("no slide parts found", "filename", filename)
	}
	return doc, warnings, nil
}

// parseSlide reads one slide part, orders its shapes by position, and
// attaches speaker notes when the slide's own manifest references them.
func parseSlide(r *zip.Reader, slidePath string, number int) (*model.Slide, []model.Warning, error) {
	part, err := readArchiveFile(r, slidePath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrArchive, slidePath, err)
	}

	var warnings []model.Warning
	shapes, ok := collectShapes(part)
	if !ok {
		warnings = append(warnings, model.Warning{
			Code:    "bad-xml",
			Message: fmt.Sprintf("%s: markup is malformed, kept partial text", slidePath),
		})
	}

	slide := model.NewSlide(number)
	for _, s := range shapes {
		if s.hasPos {
			slide.AddLineAt(s.text, s.x, s.y)
		} else {
			slide.AddLine(s.text)
		}
	}
	slide.SortByPosition()
	slide.Notes = slideNotes(r, slidePath)
	return slide, warnings, nil
}

// slideNotes returns the text of a slide's notes part, or "" when the
// slide has no notes or they cannot be read.
func slideNotes(r *zip.Reader, slidePath string) string {
	relsPath := path.Join(path.Dir(slidePath), "_rels", path.Base(slidePath)+".rels")
	rels, err := readArchiveFile(r, relsPath)
	if err != nil {
		return ""
	}
	target := notesTarget(rels, slidePath)
	if target == "" {
		return ""
	}
	part, err := readArchiveFile(r, target)
	if err != nil {
		return ""
	}
	shapes, _ := collectShapes(part)
	var lines []string
	for _, s := range shapes {
		lines = append(lines, s.text)
	}
	return joinNonEmpty(lines)
}

func joinNonEmpty(lines []string) string {
	var buf bytes.Buffer
	for _, line := range lines {
		if line == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(line)
	}
	return buf.String()
}

func readArchiveFile(r *zip.Reader, name string) ([]byte, error) {
	f, err := r.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
