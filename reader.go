package caf

import "io"

// Decode reads a complete CAF archive from r. The entire input is
// buffered before parsing begins: the Polish-numeral grammar requires
// unbounded lookahead, so the format is not incrementally parseable (see
// cursor.go).
func Decode(r io.Reader) (*Archive, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	c := newCursor(data)

	version, err := decodeHeader(c)
	if err != nil {
		return nil, err
	}

	index, err := decodeIndex(c)
	if err != nil {
		return nil, err
	}

	fileCount := 0
	for _, e := range index {
		if e.Kind == KindFile {
			fileCount++
		}
	}

	files := make([][]byte, 0, fileCount)
	for i := 0; i < fileCount; i++ {
		payload, err := decodeFile(c)
		if err != nil {
			return nil, err
		}
		files = append(files, payload)
	}

	// A final newline terminates the archive; expected, but not strictly
	// validated (per the format's own framing note).
	c.consumeByte('\n')

	return &Archive{Version: version, Index: index, Files: files}, nil
}

func decodeHeader(c *cursor) (uint8, error) {
	if !c.consumeString(keywordMagic) {
		if c.eof() {
			return 0, ErrMissingHeader
		}
		return 0, ErrInvalidHeader
	}
	version := ParseByte(c)
	if !c.consumeByte('\n') {
		return 0, &FramingError{Offset: c.offset(), Want: "newline after version"}
	}
	if version > SupportedVersion {
		return 0, ErrUnsupportedVersion
	}
	return version, nil
}

func decodeIndex(c *cursor) ([]IndexEntry, error) {
	if !c.consumeString(keywordIndex) {
		return nil, &FramingError{Offset: c.offset(), Want: "\"" + keywordIndex + "\""}
	}
	n := ParseUint64(c)
	if !c.consumeByte('\n') {
		return nil, &FramingError{Offset: c.offset(), Want: "newline after entry count"}
	}

	index := make([]IndexEntry, 0, n)
	for i := uint64(0); i < n; i++ {
		var kind EntryKind
		switch {
		case c.consumeString(keywordDirectory):
			kind = KindDirectory
		case c.consumeString(keywordFile):
			kind = KindFile
		default:
			return nil, &FramingError{Offset: c.offset(), Want: "\"" + keywordDirectory + "\" or \"" + keywordFile + "\""}
		}
		name, ok := c.readLine()
		if !ok {
			return nil, &FramingError{Offset: c.offset(), Want: "newline-terminated entry name"}
		}
		index = append(index, IndexEntry{Kind: kind, Name: name})
	}
	return index, nil
}

func decodeFile(c *cursor) ([]byte, error) {
	if !c.consumeString(keywordSize) {
		return nil, &FramingError{Offset: c.offset(), Want: "\"" + keywordSize + "\""}
	}
	size := ParseUint64(c)
	if !c.consumeByte('\n') {
		return nil, &FramingError{Offset: c.offset(), Want: "newline after payload size"}
	}
	payload, err := decodeOctetStream(c, int(size))
	if err != nil {
		return nil, err
	}
	return payload, nil
}
