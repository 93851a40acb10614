package propresenter

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name          string
		linesPerSlide int
		lines         []string
		want          string
	}{
		{"pairs", 2, []string{"a", "b", "c", "d"}, "a\nb\n\nc\nd"},
		{"short final block", 2, []string{"a", "b", "c"}, "a\nb\n\nc"},
		{"single per block", 1, []string{"a", "b"}, "a\n\nb"},
		{"all on one block", 4, []string{"a", "b", "c"}, "a\nb\nc"},
		{"empty", 2, nil, ""},
		{"clamped below one", 0, []string{"a", "b"}, "a\n\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New().WithLinesPerSlide(tt.linesPerSlide)
			if got := f.Format(tt.lines); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatWithTitle(t *testing.T) {
	f := New()
	if got := f.FormatWithTitle("Amazing Grace", []string{"a", "b"}); got != "Amazing Grace\n\na\nb" {
		t.Errorf("FormatWithTitle() = %q", got)
	}
	if got := f.FormatWithTitle("", []string{"a"}); got != "a" {
		t.Errorf("FormatWithTitle() without title = %q", got)
	}
	if got := f.FormatWithTitle("Amazing Grace", nil); got != "Amazing Grace" {
		t.Errorf("FormatWithTitle() without lines = %q", got)
	}
}

func TestFormatWithNewline(t *testing.T) {
	f := New()
	if got := f.FormatWithNewline("", []string{"a", "b"}); got != "a\nb\n" {
		t.Errorf("FormatWithNewline() = %q", got)
	}
	if got := f.FormatWithNewline("Title", []string{"a"}); got != "Title\n\na\n" {
		t.Errorf("FormatWithNewline() with title = %q", got)
	}
	if got := f.FormatWithNewline("", nil); got != "" {
		t.Errorf("FormatWithNewline() empty = %q", got)
	}
}
