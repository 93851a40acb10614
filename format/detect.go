// Package format provides presentation file format detection.
package format

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmcclure/verselift/model"
)

// ErrUnknown indicates the input could not be classified from either its
// magic bytes or its filename extension.
var ErrUnknown = errors.New("unsupported or unrecognized file format")

var (
	// zipMagic is the local-file-header signature of a zip archive.
	zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}
	// cfbMagic is the compound-file binary signature.
	cfbMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// DetectFromMagic classifies a buffer by its leading bytes. Returns
// FormatUnknown if the buffer is too short or carries an unknown signature.
func DetectFromMagic(data []byte) model.Format {
	if bytes.HasPrefix(data, zipMagic) {
		return model.FormatPPTX
	}
	if bytes.HasPrefix(data, cfbMagic) {
		return model.FormatPPT
	}
	return model.FormatUnknown
}

// DetectFromExtension classifies a file by its extension, case-insensitively.
func DetectFromExtension(filename string) model.Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pptx":
		return model.FormatPPTX
	case ".ppt":
		return model.FormatPPT
	default:
		return model.FormatUnknown
	}
}

// Detect classifies an input buffer. Magic bytes always win; the filename
// extension is only consulted when the signature is inconclusive. Returns
// ErrUnknown when neither identifies the format.
func Detect(data []byte, filename string) (model.Format, error) {
	if f := DetectFromMagic(data); f != model.FormatUnknown {
		return f, nil
	}
	if f := DetectFromExtension(filename); f != model.FormatUnknown {
		return f, nil
	}
	return model.FormatUnknown, fmt.Errorf("%w: %q", ErrUnknown, filename)
}
