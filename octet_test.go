package caf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeOctetStreamToString(payload []byte) string {
	var sb strings.Builder
	encodeOctetStream(&sb, payload)
	return sb.String()
}

func decodeOctetStreamFromString(t *testing.T, s string, length int) []byte {
	t.Helper()
	c := newCursor([]byte(s))
	require.True(t, c.consumeByte('\n'), "encoded octet stream must start with the sentinel newline")
	payload, err := decodeOctetStream(c, length)
	require.NoError(t, err)
	require.True(t, c.eof(), "decodeOctetStream should consume the whole stream")
	return payload
}

func TestOctetRoundTripEmpty(t *testing.T) {
	encoded := encodeOctetStreamToString(nil)
	assert.Equal(t, "\n", encoded)
	got := decodeOctetStreamFromString(t, encoded, 0)
	assert.Equal(t, []byte{}, got)
}

func TestOctetRoundTripPartialGroup(t *testing.T) {
	payload := []byte("Hello, world!") // 13 bytes: one full group, one partial
	encoded := encodeOctetStreamToString(payload)
	got := decodeOctetStreamFromString(t, encoded, len(payload))
	assert.True(t, bytes.Equal(payload, got))
}

func TestOctetRunLengthCollapse(t *testing.T) {
	payload := bytes.Repeat([]byte{0x00}, 64)
	encoded := encodeOctetStreamToString(payload)
	assert.Equal(t, "\nzero X osiem\n", encoded)

	got := decodeOctetStreamFromString(t, encoded, len(payload))
	assert.True(t, bytes.Equal(payload, got))
}

func TestOctetRoundTripArbitrary(t *testing.T) {
	payloads := [][]byte{
		{},
		{1},
		bytes.Repeat([]byte{0xAB}, 9),
		[]byte("the quick brown fox jumps over the lazy dog"),
		append(bytes.Repeat([]byte{0xFF}, 16), []byte{1, 2, 3}...),
	}
	for _, payload := range payloads {
		encoded := encodeOctetStreamToString(payload)
		got := decodeOctetStreamFromString(t, encoded, len(payload))
		assert.Truef(t, bytes.Equal(payload, got), "round trip of %x", payload)
	}
}
