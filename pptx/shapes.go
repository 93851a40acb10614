package pptx

import (
	"bytes"
	"encoding/xml"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// shape is the text gathered from one drawing shape, with its frame
// offset when the markup declared one.
type shape struct {
	text   string
	x, y   float64
	hasPos bool
}

// collectShapes streams a slide (or notes) part and gathers the text of
// each shape. Paragraphs within a shape are joined with newlines; runs
// within a paragraph concatenate. Element names are matched without regard
// to namespace prefix, which tolerates the prefix variation seen across
// producers.
//
// A malformed document is not fatal: on a token error the shapes gathered
// so far are returned along with ok=false.
func collectShapes(part []byte) (shapes []shape, ok bool) {
	dec := xml.NewDecoder(bytes.NewReader(part))

	var (
		current    shape
		inShape    bool
		inTextBody bool
		inPara     bool
		inText     bool
		para       strings.Builder
		paras      []string
	)

	flushPara := func() {
		if inPara {
			paras = append(paras, para.String())
			para.Reset()
			inPara = false
		}
	}
	flushShape := func() {
		if !inShape {
			return
		}
		flushPara()
		current.text = strings.TrimSpace(strings.Join(paras, "\n"))
		if current.text != "" {
			shapes = append(shapes, current)
		}
		current = shape{}
		paras = nil
		inShape = false
		inTextBody = false
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Warn("slide markup truncated", "error", err)
			flushShape()
			return shapes, false
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "sp", "pic":
				flushShape()
				inShape = true
			case "off":
				if inShape && !current.hasPos {
					x, xerr := strconv.ParseFloat(attr(t, "x"), 64)
					y, yerr := strconv.ParseFloat(attr(t, "y"), 64)
					if xerr == nil && yerr == nil {
						current.x, current.y = x, y
						current.hasPos = true
					}
				}
			case "txBody":
				if inShape {
					inTextBody = true
				}
			case "p":
				if inTextBody {
					flushPara()
					inPara = true
				}
			case "t":
				if inPara {
					inText = true
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "sp", "pic":
				flushShape()
			case "txBody":
				flushPara()
				inTextBody = false
			case "p":
				flushPara()
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				para.Write(t)
			}
		}
	}
	flushShape()
	return shapes, true
}

func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
