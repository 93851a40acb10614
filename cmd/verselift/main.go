// Command verselift extracts song lyrics from presentation files and
// writes them as import-ready text blocks.
//
// Usage:
//
//	verselift [flags] file.ppt [file2.pptx ...]
//
// By default each input produces a .txt file next to it; -print writes to
// stdout instead, and -output redirects the files to a directory.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmcclure/verselift"
	"github.com/bmcclure/verselift/propresenter"
)

func main() {
	var (
		output  = flag.String("output", "", "directory for extracted .txt files (default: beside each input)")
		print   = flag.Bool("print", false, "write extracted text to stdout instead of files")
		lines   = flag.Int("lines", 2, "lyric lines per output block")
		notes   = flag.Bool("notes", false, "also print speaker notes to stdout")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: verselift [flags] file.ppt [file2.pptx ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	failed := false
	for _, input := range flag.Args() {
		if err := process(input, *output, *print, *lines, *notes); err != nil {
			fmt.Fprintf(os.Stderr, "verselift: %s: %v\n", input, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func process(input, outputDir string, print bool, linesPerSlide int, withNotes bool) error {
	ex := verselift.Open(input)

	title, lines, warnings, err := ex.LinesWithTitle()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn("extraction warning", "file", input, "code", w.Code, "detail", w.Message)
	}

	formatter := propresenter.New().WithLinesPerSlide(linesPerSlide)
	if print {
		fmt.Println(formatter.FormatWithTitle(title, lines))
	} else {
		dest, err := outputPath(input, outputDir)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dest, []byte(formatter.FormatWithNewline(title, lines)), 0o644); err != nil {
			return err
		}
		slog.Debug("wrote lyrics", "file", input, "dest", dest)
	}

	if withNotes {
		noteTexts, _, err := ex.Notes()
		if err != nil {
			return err
		}
		for i, n := range noteTexts {
			fmt.Printf("-- notes %d --\n%s\n", i+1, n)
		}
	}
	return nil
}

// outputPath derives the destination file: the input's stem with a .txt
// extension, beside the input or under dir when one was given.
func outputPath(input, dir string) (string, error) {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if dir == "" {
		return filepath.Join(filepath.Dir(input), stem+".txt"), nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return filepath.Join(dir, stem+".txt"), nil
}
