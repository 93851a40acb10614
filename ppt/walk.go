package ppt

import "encoding/binary"

// walkRecords traverses the record tree in document order without
// recursion, using an explicit scope stack so adversarial nesting cannot
// exhaust the call stack. onRecord is invoked for every well-formed record;
// returning true descends into container bodies.
//
// A record whose declared body overruns its enclosing scope (or the stream)
// counts as malformed and aborts the remainder of that scope only. The
// total malformed count is returned for the caller to judge.
func walkRecords(data []byte, onRecord func(rec record) bool) int {
	type scope struct {
		pos, end int
	}

	stack := make([]scope, 1, 16)
	stack[0] = scope{0, len(data)}
	malformed := 0

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.pos+headerSize > top.end {
			stack = stack[:len(stack)-1]
			continue
		}

		verInstance := binary.LittleEndian.Uint16(data[top.pos:])
		typ := binary.LittleEndian.Uint16(data[top.pos+2:])
		length := int(binary.LittleEndian.Uint32(data[top.pos+4:]))

		bodyStart := top.pos + headerSize
		if length > len(data)-bodyStart || bodyStart+length > top.end {
			malformed++
			top.pos = top.end
			continue
		}
		bodyEnd := bodyStart + length

		rec := record{
			verInstance: verInstance,
			typ:         typ,
			offset:      top.pos,
			body:        data[bodyStart:bodyEnd],
		}
		descend := onRecord(rec)
		top.pos = bodyEnd

		if descend && rec.isContainer() {
			if len(stack) >= maxDepth {
				malformed++
				continue
			}
			stack = append(stack, scope{bodyStart, bodyEnd})
		}
	}

	return malformed
}
