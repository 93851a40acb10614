package normalize

import (
	"testing"

	"github.com/bmcclure/verselift/model"
)

func TestLine(t *testing.T) {
	n := New()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "Amazing grace", "Amazing grace"},
		{"punctuation removed", "Hello,   world!", "Hello world"},
		{"apostrophe kept between letters", "don't stop", "don't stop"},
		{"curly apostrophe folded", "don’t stop", "don't stop"},
		{"leading apostrophe dropped", "' hello", "hello"},
		{"leading elision dropped", "'Tis the season", "Tis the season"},
		{"trailing apostrophe dropped", "lovin'", "lovin"},
		{"em dash removed without space", "Hello—world", "Helloworld"},
		{"quotes removed", `"Amazing" grace`, "Amazing grace"},
		{"curly quotes removed", "“Amazing” grace", "Amazing grace"},
		{"tabs collapse", "a\t\tb", "a b"},
		{"crlf flattened", "line one\r\nline two", "line one line two"},
		{"bare cr flattened", "line one\rline two", "line one line two"},
		{"newline flattened", "line one\nline two", "line one line two"},
		{"whitespace trimmed", "  padded  ", "padded"},
		{"empty", "", ""},
		{"only punctuation", "?!...", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Line(tt.in)
			if got != tt.want {
				t.Errorf("Line(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := n.Line(got); again != got {
				t.Errorf("Line not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestLinePreserveLineBreaks(t *testing.T) {
	n := New().WithPreserveLineBreaks()
	got := n.Line("verse one,  \nverse two!")
	if got != "verse one\nverse two" {
		t.Errorf("Line() = %q", got)
	}
}

func TestLinePreservesBareCarriageReturnAsBreak(t *testing.T) {
	n := New().WithPreserveLineBreaks()
	if got := n.Line("verse one\rverse two"); got != "verse one\nverse two" {
		t.Errorf("Line() = %q", got)
	}
	lines := n.Lines("verse one\rverse two")
	if len(lines) != 2 || lines[0] != "verse one" || lines[1] != "verse two" {
		t.Errorf("Lines() = %v, want two lines", lines)
	}
}

func TestLines(t *testing.T) {
	n := New().WithPreserveLineBreaks()
	got := n.Lines("first\n\n  \nsecond")
	want := []string{"first", "second"}
	if len(got) != len(want) {
		t.Fatalf("Lines() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Lines()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSongNameFromFilename(t *testing.T) {
	n := New()
	tests := []struct {
		in   string
		want string
	}{
		{"Amazing Grace Lyrics.pptx", "amazing grace"},
		{"Amazing Grace.ppt", "amazing grace"},
		{"It's Well.pptx", "its well"},
		{"how great thou art_slides.pptx", "how great thou art"},
		{"10,000 Reasons - Worship.pptx", "10000 reasons"},
	}
	for _, tt := range tests {
		if got := n.songNameFromFilename(tt.in); got != tt.want {
			t.Errorf("songNameFromFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeForComparison(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"It's Well", "its well"},
		{"Amazing Grace!", "amazing grace"},
		{"10,000 Reasons", "10000 reasons"},
		{"  spaced\tout  ", "spaced out"},
		{"How-Great", "howgreat"},
	}
	for _, tt := range tests {
		if got := normalizeForComparison(tt.in); got != tt.want {
			t.Errorf("normalizeForComparison(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"amazing grace", "amazing grace", 1.0},
		{"amazing grace", "grace amazing", 1.0}, // same word set
		{"", "amazing grace", 0},
		{"amazing", "amazing grace", float64(len("amazing")) / float64(len("amazing grace"))},
		{"red car", "blue boat", 0},
	}
	for _, tt := range tests {
		if got := similarity(tt.a, tt.b); got != tt.want {
			t.Errorf("similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIsLikelyTitle(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		songName string
		want     bool
	}{
		{"exact match", "Amazing Grace", "amazing grace", true},
		{"punctuated match", "Amazing Grace!", "amazing grace", true},
		{"unrelated line", "how sweet the sound", "amazing grace", false},
		{"single rune too short", "A", "amazing grace", false},
		{"overlong line rejected",
			"Amazing Grace abcdefghij abcdefghij abcdefghij abcdefghij abcdefghij",
			"amazing grace", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isLikelyTitle(tt.line, tt.songName); got != tt.want {
				t.Errorf("isLikelyTitle(%q, %q) = %v", tt.line, tt.songName, got)
			}
		})
	}
}

func TestDocumentWithTitle(t *testing.T) {
	doc := model.NewDocument("Amazing Grace Lyrics.pptx", model.FormatPPTX)
	s1 := model.NewSlide(1)
	s1.AddLine("Amazing Grace")
	s1.AddLine("how sweet the sound")
	doc.AddSlide(s1)
	s2 := model.NewSlide(2)
	s2.AddLine("that saved a wretch like me")
	s2.AddLine("I once was lost")
	doc.AddSlide(s2)

	title, lines := New().DocumentWithTitle(doc)
	if title != "Amazing Grace" {
		t.Errorf("title = %q, want %q", title, "Amazing Grace")
	}
	want := []string{"how sweet the sound", "that saved a wretch like me", "I once was lost"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestDocumentWithTitleApostrophizedTitle(t *testing.T) {
	// The on-slide title carries an apostrophe the filename lacks; both
	// must reduce to the same comparison form for the match to hold.
	doc := model.NewDocument("Its Well.pptx", model.FormatPPTX)
	s1 := model.NewSlide(1)
	s1.AddLine("It's Well")
	s1.AddLine("with my soul")
	doc.AddSlide(s1)

	title, lines := New().DocumentWithTitle(doc)
	if title != "It's Well" {
		t.Errorf("title = %q, want %q", title, "It's Well")
	}
	if len(lines) != 1 || lines[0] != "with my soul" {
		t.Errorf("lines = %v", lines)
	}
}

func TestDocumentWithTitleNoMatch(t *testing.T) {
	doc := model.NewDocument("Amazing Grace.pptx", model.FormatPPTX)
	s1 := model.NewSlide(1)
	s1.AddLine("how sweet the sound")
	doc.AddSlide(s1)

	title, lines := New().DocumentWithTitle(doc)
	if title != "" {
		t.Errorf("title = %q, want empty", title)
	}
	if len(lines) != 1 || lines[0] != "how sweet the sound" {
		t.Errorf("lines = %v", lines)
	}
}

func TestDocumentWithTitleOnlyFirstSlide(t *testing.T) {
	// A matching line on a later slide is lyric content, not the title.
	doc := model.NewDocument("Amazing Grace.pptx", model.FormatPPTX)
	s1 := model.NewSlide(1)
	s1.AddLine("how sweet the sound")
	doc.AddSlide(s1)
	s2 := model.NewSlide(2)
	s2.AddLine("Amazing Grace")
	doc.AddSlide(s2)

	title, lines := New().DocumentWithTitle(doc)
	if title != "" {
		t.Errorf("title = %q, want empty", title)
	}
	if len(lines) != 2 {
		t.Errorf("lines = %v, want both kept", lines)
	}
}

func TestDocumentFlattens(t *testing.T) {
	doc := model.NewDocument("x.pptx", model.FormatPPTX)
	s := model.NewSlide(1)
	s.AddLine("first line,")
	s.AddLine("second  line!")
	doc.AddSlide(s)

	got := New().Document(doc)
	want := []string{"first line", "second line"}
	if len(got) != len(want) {
		t.Fatalf("Document() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Document()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
