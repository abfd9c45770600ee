package caf

import (
	"bytes"
	"fmt"
	"io"
)

// Encode writes a as a complete CAF byte stream to w: header, index, then
// file payloads, in that order: a "CAF <version>" line, an "INDEKS <count>"
// line followed by one "KATALOG <name>" or "PLIK <name>" line per entry, a
// "ROZMIAR <size>" line plus octet stream per payload, and a final newline.
func Encode(w io.Writer, a *Archive) error {
	if a.FileCount() != len(a.Files) {
		return ErrCountMismatch
	}

	var buf bytes.Buffer

	buf.WriteString(keywordMagic)
	buf.WriteString(EmitByte(a.Version))
	buf.WriteByte('\n')

	buf.WriteString(keywordIndex)
	buf.WriteString(EmitUint64(uint64(len(a.Index))))
	buf.WriteByte('\n')
	for _, e := range a.Index {
		switch e.Kind {
		case KindDirectory:
			buf.WriteString(keywordDirectory)
		case KindFile:
			buf.WriteString(keywordFile)
		default:
			return fmt.Errorf("caf: encode: index entry %q has unknown kind %v", e.Name, e.Kind)
		}
		buf.WriteString(e.Name)
		buf.WriteByte('\n')
	}

	for _, payload := range a.Files {
		buf.WriteString(keywordSize)
		buf.WriteString(EmitUint64(uint64(len(payload))))
		encodeOctetStream(&buf, payload)
	}
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())
	return err
}
