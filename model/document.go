package model

import (
	"sort"
	"strings"
)

// Format identifies the container format of a source presentation.
type Format int

const (
	// FormatUnknown indicates an unrecognized format.
	FormatUnknown Format = iota
	// FormatPPT is the legacy compound-file binary container.
	FormatPPT
	// FormatPPTX is the modern zip/XML container.
	FormatPPTX
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatPPT:
		return "PPT"
	case FormatPPTX:
		return "PPTX"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatPPT:
		return ".ppt"
	case FormatPPTX:
		return ".pptx"
	default:
		return ""
	}
}

// Document is an entire presentation with its extracted content.
type Document struct {
	// Filename is the source file name, without path.
	Filename string

	// Format is the detected format of the source file.
	Format Format

	// Slides holds the slides in presentation order.
	Slides []*Slide
}

// NewDocument creates an empty document for the given source file.
func NewDocument(filename string, format Format) *Document {
	return &Document{Filename: filename, Format: format}
}

// AddSlide appends a slide to the document.
func (d *Document) AddSlide(s *Slide) {
	d.Slides = append(d.Slides, s)
}

// AllLines returns the raw text of every run on every slide, flattened in
// slide order then run order.
func (d *Document) AllLines() []string {
	var lines []string
	for _, s := range d.Slides {
		for _, run := range s.Lines {
			lines = append(lines, run.Text)
		}
	}
	return lines
}

// Slide is a single extracted slide.
type Slide struct {
	// Number is the 1-based slide number, matching presentation order.
	Number int

	// Lines holds the text runs in reading order where position is known,
	// discovery order otherwise.
	Lines []TextRun

	// Notes holds the speaker notes for this slide, if any.
	Notes string
}

// NewSlide creates an empty slide with the given 1-based number.
func NewSlide(number int) *Slide {
	return &Slide{Number: number}
}

// AddLine appends a text run without position information.
func (s *Slide) AddLine(text string) {
	s.Lines = append(s.Lines, TextRun{Text: text})
}

// AddLineAt appends a text run with its container-defined position.
func (s *Slide) AddLineAt(text string, x, y float64) {
	s.Lines = append(s.Lines, TextRun{Text: text, X: x, Y: y, HasPosition: true})
}

// SortByPosition orders the slide's runs top-to-bottom then left-to-right.
// Runs without position information keep their discovery order, as do ties;
// the sort is stable.
func (s *Slide) SortByPosition() {
	sort.SliceStable(s.Lines, func(i, j int) bool {
		a, b := s.Lines[i], s.Lines[j]
		if !a.HasPosition || !b.HasPosition {
			return false
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
}

// NonEmptyLines returns the text of runs that contain more than whitespace.
func (s *Slide) NonEmptyLines() []string {
	var lines []string
	for _, run := range s.Lines {
		if strings.TrimSpace(run.Text) != "" {
			lines = append(lines, run.Text)
		}
	}
	return lines
}

// TextRun is text from a single shape or text record. X and Y, when
// present, are in arbitrary container-defined units and are only meaningful
// for ordering runs within one slide.
type TextRun struct {
	Text        string
	X, Y        float64
	HasPosition bool
}
