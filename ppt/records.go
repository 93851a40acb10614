package ppt

// Record type codes carried in the document stream's record headers.
const (
	rtDocument     = 0x1388 // marks the document container
	rtSlide        = 0x03E8 // marks a slide container
	rtSlidePersist = 0x03F0 // slide persistence marker, hints slide boundaries
	rtTextHeader   = 0x0F9F // declares the purpose of the text that follows
	rtTextChars    = 0x0FA0 // UTF-16LE text run
	rtTextBytes    = 0x0FA8 // 8-bit code-page text run
	rtCString      = 0x0FBA // metadata string, never slide content
)

const (
	// headerSize is the fixed record header length: 2-byte LE
	// version+instance, 2-byte LE type code, 4-byte LE body length.
	headerSize = 8

	// minStreamSize is the smallest document stream a valid file carries.
	minStreamSize = 512

	// maxMalformed is the malformed-record ceiling; beyond it the file is
	// treated as corrupted.
	maxMalformed = 10

	// maxDepth caps container nesting. Scopes past the cap count as
	// malformed rather than being descended into.
	maxDepth = 64
)

// record is one decoded record header plus its body slice.
type record struct {
	verInstance uint16
	typ         uint16
	offset      int // byte offset of the header within the stream
	body        []byte
}

// isContainer reports whether the version nibble marks a container record
// whose body holds nested records rather than leaf data.
func (r record) isContainer() bool {
	return r.verInstance&0x000F == 0x000F
}
