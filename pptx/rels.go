package pptx

import (
	"encoding/xml"
	"fmt"
	"path"
	"sort"
	"strings"
)

const presentationRels = "ppt/_rels/presentation.xml.rels"

type relationshipsXML struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Relationships []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// isSlideRelationship reports whether a relationship points at a slide
// part. Layout and master relationships also contain "slide" in their type
// URI and must not match.
func isSlideRelationship(relType string) bool {
	if strings.Contains(relType, "slideLayout") || strings.Contains(relType, "slideMaster") {
		return false
	}
	return strings.Contains(relType, "/slide")
}

// trailingNumber extracts the digits at the end of s (ignoring an
// extension), so "rId12" and "slides/slide3.xml" both yield a hint. The
// second return is false when s ends with no digits.
func trailingNumber(s string) (int, bool) {
	if i := strings.LastIndex(s, "."); i >= 0 {
		s = s[:i]
	}
	end := len(s)
	start := end
	for start > 0 && s[start-1] >= '0' && s[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0, false
	}
	n := 0
	for _, c := range s[start:end] {
		n = n*10 + int(c-'0')
	}
	return n, true
}

// resolveTarget turns a relationship target, which is relative to the
// presentation part, into a full archive path.
func resolveTarget(target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join("ppt", target)
}

type slideRef struct {
	path   string
	hint   int
	hinted bool
}

// slideOrder reads the presentation relationship manifest and returns
// slide part paths in presentation order. Slides whose relationship ID or
// target carries a trailing number are ordered by that number and come
// first; the rest follow, ordered by path.
func slideOrder(rels []byte) ([]string, error) {
	var manifest relationshipsXML
	if err := xml.Unmarshal(rels, &manifest); err != nil {
		return nil, fmt.Errorf("parsing relationship manifest: %w", err)
	}

	var refs []slideRef
	for _, rel := range manifest.Relationships {
		if !isSlideRelationship(rel.Type) {
			continue
		}
		ref := slideRef{path: resolveTarget(rel.Target)}
		if n, ok := trailingNumber(rel.ID); ok {
			ref.hint, ref.hinted = n, true
		} else if n, ok := trailingNumber(rel.Target); ok {
			ref.hint, ref.hinted = n, true
		}
		refs = append(refs, ref)
	}

	sort.SliceStable(refs, func(i, j int) bool {
		a, b := refs[i], refs[j]
		if a.hinted != b.hinted {
			return a.hinted
		}
		if a.hinted && a.hint != b.hint {
			return a.hint < b.hint
		}
		return a.path < b.path
	})

	paths := make([]string, len(refs))
	for i, ref := range refs {
		paths[i] = ref.path
	}
	return paths, nil
}

// notesTarget finds the notes-slide part referenced by a slide's own
// relationship manifest, or "" when the slide has none.
func notesTarget(rels []byte, slidePath string) string {
	var manifest relationshipsXML
	if err := xml.Unmarshal(rels, &manifest); err != nil {
		return ""
	}
	for _, rel := range manifest.Relationships {
		if !strings.Contains(rel.Type, "notesSlide") {
			continue
		}
		if strings.HasPrefix(rel.Target, "/") {
			return strings.TrimPrefix(rel.Target, "/")
		}
		// Targets are relative to the slide's directory, e.g.
		// "../notesSlides/notesSlide1.xml" from "ppt/slides".
		return path.Join(path.Dir(slidePath), rel.Target)
	}
	return ""
}
