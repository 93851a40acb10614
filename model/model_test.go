package model

import (
	"reflect"
	"testing"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatPPT, "PPT"},
		{FormatPPTX, "PPTX"},
		{FormatUnknown, "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormatExtension(t *testing.T) {
	if got := FormatPPT.Extension(); got != ".ppt" {
		t.Errorf("FormatPPT.Extension() = %q, want .ppt", got)
	}
	if got := FormatPPTX.Extension(); got != ".pptx" {
		t.Errorf("FormatPPTX.Extension() = %q, want .pptx", got)
	}
	if got := FormatUnknown.Extension(); got != "" {
		t.Errorf("FormatUnknown.Extension() = %q, want empty", got)
	}
}

func TestDocumentAllLines(t *testing.T) {
	doc := NewDocument("test.ppt", FormatPPT)

	s1 := NewSlide(1)
	s1.AddLine("Amazing Grace")
	s1.AddLine("Verse 1")
	s2 := NewSlide(2)
	s2.AddLine("How sweet the sound")
	doc.AddSlide(s1)
	doc.AddSlide(s2)

	want := []string{"Amazing Grace", "Verse 1", "How sweet the sound"}
	if got := doc.AllLines(); !reflect.DeepEqual(got, want) {
		t.Errorf("AllLines() = %v, want %v", got, want)
	}
}

func TestSortByPosition(t *testing.T) {
	s := NewSlide(1)
	s.AddLineAt("bottom", 10, 300)
	s.AddLineAt("top", 10, 100)
	s.AddLineAt("middle right", 200, 200)
	s.AddLineAt("middle left", 50, 200)

	s.SortByPosition()

	want := []string{"top", "middle left", "middle right", "bottom"}
	for i, run := range s.Lines {
		if run.Text != want[i] {
			t.Errorf("Lines[%d] = %q, want %q", i, run.Text, want[i])
		}
	}
}

func TestSortByPositionStableForTies(t *testing.T) {
	s := NewSlide(1)
	s.AddLineAt("first", 100, 50)
	s.AddLineAt("second", 100, 50)
	s.AddLineAt("third", 100, 50)

	s.SortByPosition()

	want := []string{"first", "second", "third"}
	for i, run := range s.Lines {
		if run.Text != want[i] {
			t.Errorf("Lines[%d] = %q, want %q", i, run.Text, want[i])
		}
	}
}

func TestSortByPositionKeepsUnpositionedInDiscoveryOrder(t *testing.T) {
	s := NewSlide(1)
	s.AddLine("no position a")
	s.AddLineAt("positioned", 0, 0)
	s.AddLine("no position b")

	s.SortByPosition()

	// Runs without positions never reorder relative to their neighbors.
	want := []string{"no position a", "positioned", "no position b"}
	for i, run := range s.Lines {
		if run.Text != want[i] {
			t.Errorf("Lines[%d] = %q, want %q", i, run.Text, want[i])
		}
	}
}

func TestNonEmptyLines(t *testing.T) {
	s := NewSlide(1)
	s.AddLine("keep me")
	s.AddLine("   ")
	s.AddLine("")
	s.AddLine("also keep")

	want := []string{"keep me", "also keep"}
	if got := s.NonEmptyLines(); !reflect.DeepEqual(got, want) {
		t.Errorf("NonEmptyLines() = %v, want %v", got, want)
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Code: "no-text", Message: "no text content extracted"}
	if got := w.String(); got != "no-text: no text content extracted" {
		t.Errorf("Warning.String() = %q", got)
	}
}
