package verselift

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmcclure/verselift/format"
	"github.com/bmcclure/verselift/model"
	"github.com/bmcclure/verselift/normalize"
	"github.com/bmcclure/verselift/ppt"
	"github.com/bmcclure/verselift/pptx"
	"github.com/bmcclure/verselift/propresenter"
)

const defaultLinesPerSlide = propresenter.DefaultLinesPerSlide

// Extractor provides a fluent interface for pulling lyric lines out of a
// presentation. Each configuration method returns a new Extractor, so a
// configured chain is safe to reuse.
type Extractor struct {
	filename string
	data     []byte
	haveData bool

	linesPerSlide     int
	flattenLineBreaks bool
}

func (e *Extractor) clone() *Extractor {
	c := *e
	return &c
}

// LinesPerSlide sets the output block size for ProPresenter. Values below
// one are clamped to one.
func (e *Extractor) LinesPerSlide(n int) *Extractor {
	c := e.clone()
	if n < 1 {
		n = 1
	}
	c.linesPerSlide = n
	return c
}

// FlattenLineBreaks folds line breaks inside one text shape into spaces.
// By default each break starts a new lyric line.
func (e *Extractor) FlattenLineBreaks() *Extractor {
	c := e.clone()
	c.flattenLineBreaks = true
	return c
}

func (e *Extractor) load() ([]byte, error) {
	if e.haveData {
		return e.data, nil
	}
	data, err := os.ReadFile(e.filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", e.filename, err)
	}
	return data, nil
}

// Document parses the presentation into its structural form: slides with
// raw, unnormalized text runs. Most callers want Lines or ProPresenter
// instead.
func (e *Extractor) Document() (*model.Document, []Warning, error) {
	data, err := e.load()
	if err != nil {
		return nil, nil, err
	}

	name := filepath.Base(e.filename)
	f, err := format.Detect(data, name)
	if err != nil {
		return nil, nil, err
	}
	switch f {
	case model.FormatPPT:
		return ppt.Parse(data, name)
	default:
		return pptx.Parse(data, name)
	}
}

func (e *Extractor) normalizer() *normalize.Normalizer {
	n := normalize.New()
	if !e.flattenLineBreaks {
		n = n.WithPreserveLineBreaks()
	}
	return n
}

// Lines parses the presentation and returns its normalized lyric lines in
// slide order.
func (e *Extractor) Lines() ([]string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return nil, warnings, err
	}
	return e.normalizer().Document(doc), warnings, nil
}

// LinesWithTitle is Lines plus song-title detection: when a first-slide
// line matches the filename-derived song name, it is returned separately
// and excluded from the lyric lines. Title is "" when nothing matches.
func (e *Extractor) LinesWithTitle() (string, []string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return "", nil, warnings, err
	}
	title, lines := e.normalizer().DocumentWithTitle(doc)
	return title, lines, warnings, nil
}

// ProPresenter renders the lyric lines as import-ready text blocks, the
// detected title leading when there is one.
func (e *Extractor) ProPresenter() (string, []Warning, error) {
	title, lines, warnings, err := e.LinesWithTitle()
	if err != nil {
		return "", warnings, err
	}
	f := propresenter.New().WithLinesPerSlide(e.linesPerSlide)
	return f.FormatWithTitle(title, lines), warnings, nil
}

// Notes returns per-slide speaker notes, one entry per slide that has
// them. Only the zip/XML container carries retrievable notes.
func (e *Extractor) Notes() ([]string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return nil, warnings, err
	}
	var notes []string
	for _, slide := range doc.Slides {
		if slide.Notes != "" {
			notes = append(notes, slide.Notes)
		}
	}
	return notes, warnings, nil
}
