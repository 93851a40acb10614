// Package verselift provides a fluent API for extracting song lyrics from
// presentation files, in both the legacy binary container and the modern
// zip/XML container.
//
// Basic usage:
//
//	text, warnings, err := verselift.Open("amazing-grace.ppt").ProPresenter()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", verselift.FormatWarnings(warnings))
//	}
//
// With options:
//
//	text, _, err := verselift.Open("hymn.pptx").
//	    LinesPerSlide(4).
//	    ProPresenter()
//
// For advanced use cases, the lower-level ppt and pptx packages are also
// available.
package verselift

// Open prepares an extractor for the given presentation file. The file is
// not read until a terminal operation runs; I/O and parse errors surface
// there.
//
// Example:
//
//	lines, warnings, err := verselift.Open("hymn.pptx").Lines()
func Open(filename string) *Extractor {
	return &Extractor{
		filename:      filename,
		linesPerSlide: defaultLinesPerSlide,
	}
}

// FromBytes prepares an extractor for already-loaded file data. The
// filename is still required: it drives format detection when the magic
// number is ambiguous, and title matching.
//
// Example:
//
//	doc, warnings, err := verselift.FromBytes(data, "hymn.pptx").Document()
func FromBytes(data []byte, filename string) *Extractor {
	return &Extractor{
		filename:      filename,
		data:          data,
		haveData:      true,
		linesPerSlide: defaultLinesPerSlide,
	}
}

// Must wraps a call returning (T, error) and panics on error. It is
// intended for scripts and tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustLines wraps a terminal call returning (value, warnings, error),
// panics on error and discards warnings.
//
// Example:
//
//	lines := verselift.MustLines(verselift.Open("hymn.pptx").Lines())
func MustLines[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
