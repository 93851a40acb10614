package ppt

import (
	"sort"

	"github.com/bmcclure/verselift/model"
)

// textEntry is one surviving text run together with the hints used to
// place it on a slide.
type textEntry struct {
	text    string
	purpose textPurpose
	offset  int // stream offset of the record, preserves discovery order
	persist int // persistence markers seen before this run
}

// splitter groups an ordered run of text entries into per-slide groups.
// Slide boundaries are reconstructed from weak structural signals, so the
// grouping is heuristic; concrete strategies are tried in order.
type splitter interface {
	split(entries []textEntry) [][]textEntry
}

// persistSplitter starts a new group whenever the persistence-marker count
// changes between consecutive entries.
type persistSplitter struct{}

func (persistSplitter) split(entries []textEntry) [][]textEntry {
	var groups [][]textEntry
	var current []textEntry
	last := 0
	for _, e := range entries {
		if e.persist != last && len(current) > 0 {
			groups = append(groups, current)
			current = nil
		}
		current = append(current, e)
		last = e.persist
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// titleSplitter starts a new group at every title-purpose entry after the
// first, a fallback for streams that carry no persistence markers.
type titleSplitter struct{}

func (titleSplitter) split(entries []textEntry) [][]textEntry {
	var groups [][]textEntry
	var current []textEntry
	for _, e := range entries {
		if e.purpose.isTitle() && len(current) > 0 {
			groups = append(groups, current)
			current = nil
		}
		current = append(current, e)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// assembleSlides turns the ordered entry list into slides. Persistence
// grouping is tried first; when it yields a single group with more than
// one entry, the same entries are re-split at titles instead. Within each
// slide, title entries lead in stream order and the rest follow in stream
// order.
func assembleSlides(entries []textEntry) []*model.Slide {
	if len(entries) == 0 {
		return nil
	}

	groups := persistSplitter{}.split(entries)
	if len(groups) == 1 && len(groups[0]) > 1 {
		groups = titleSplitter{}.split(entries)
	}

	var slides []*model.Slide
	for _, group := range groups {
		sorted := make([]textEntry, len(group))
		copy(sorted, group)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].offset < sorted[j].offset
		})

		slide := model.NewSlide(len(slides) + 1)
		for _, e := range sorted {
			if e.purpose.isTitle() {
				slide.AddLine(e.text)
			}
		}
		for _, e := range sorted {
			if !e.purpose.isTitle() {
				slide.AddLine(e.text)
			}
		}
		if len(slide.Lines) > 0 {
			slides = append(slides, slide)
		}
	}
	return slides
}
