package verselift

import (
	"strings"

	"github.com/bmcclure/verselift/model"
)

// Warning is a recoverable oddity encountered while parsing. Terminal
// operations return the warnings accumulated alongside their value.
type Warning = model.Warning

// FormatWarnings renders warnings one per line for logging.
func FormatWarnings(warnings []Warning) string {
	var b strings.Builder
	for i, w := range warnings {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(w.String())
	}
	return b.String()
}
