package caf

import (
	"encoding/binary"
	"fmt"
)

// groupCount returns the number of 8-byte big-endian groups needed to
// hold a payload of the given length, including a zero-padded final
// partial group.
func groupCount(length int) int {
	return (length + 7) / 8
}

// octetGroup reads the i-th 8-byte big-endian group out of payload,
// zero-padding past the end of the slice.
func octetGroup(payload []byte, i int) uint64 {
	var b [8]byte
	start := i * 8
	end := start + 8
	if end > len(payload) {
		end = len(payload)
	}
	if start < end {
		copy(b[:], payload[start:end])
	}
	return binary.BigEndian.Uint64(b[:])
}

// octetWriter is the subset of *bytes.Buffer / strings.Builder that
// encodeOctetStream needs.
type octetWriter interface {
	WriteString(string) (int, error)
	WriteByte(byte) error
}

// encodeOctetStream writes payload as a run-length-encoded sequence of
// 8-byte big-endian groups. The very first byte written is always a
// newline: the format's own note is that this is the same newline the
// archive framing describes as following the "ROZMIAR <size>" line, it
// just happens to be produced here rather than by the caller. A zero-byte
// payload still produces exactly that one newline and nothing else.
func encodeOctetStream(w octetWriter, payload []byte) {
	n := groupCount(len(payload))

	var last uint64
	haveLast := false
	runLen := 0

	flush := func() {
		if runLen > 1 {
			w.WriteString(keywordRunLength)
			w.WriteString(EmitUint64(uint64(runLen)))
		}
		w.WriteByte('\n')
	}

	for i := 0; i < n; i++ {
		v := octetGroup(payload, i)
		if haveLast && v == last {
			runLen++
			continue
		}
		flush()
		w.WriteString(EmitUint64(v))
		last, haveLast, runLen = v, true, 1
	}
	flush()
}

// decodeOctetStream reads run-length-encoded octet groups from c until at
// least length bytes' worth of groups have been produced, then truncates
// to exactly length. It does not consume the leading newline that
// precedes the first group -- the caller (see reader.go) matches that
// newline itself as part of the "ROZMIAR <size>\n" line, mirroring the
// format's own framing description.
func decodeOctetStream(c *cursor, length int) ([]byte, error) {
	target := groupCount(length) * 8
	out := make([]byte, 0, target)

	for len(out) < target {
		v := ParseUint64(c)
		repeat := 1
		if c.consumeString(keywordRunLength) {
			repeat = int(ParseUint64(c))
		}
		if !c.consumeByte('\n') {
			return nil, &FramingError{Offset: c.offset(), Want: "newline after octet group"}
		}
		var group [8]byte
		binary.BigEndian.PutUint64(group[:], v)
		for i := 0; i < repeat; i++ {
			out = append(out, group[:]...)
		}
	}
	if len(out) != target {
		return nil, &FramingError{Offset: c.offset(), Want: fmt.Sprintf("exactly %d octet bytes, got %d", target, len(out))}
	}
	return out[:length], nil
}
