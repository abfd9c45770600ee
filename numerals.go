package caf

import (
	"encoding/binary"
	"strings"
)

// Vocabulary tables for the Polish cardinal-number codec, as fixed by the
// format (EmitByte and ParseByte below implement the algorithm over them).
// These are data, not computed, because the irregularities (teens, the
// three irregular tens forms, the two hundreds words) don't reduce to a
// formula.

var onesWords = [9]string{
	"jeden", "dwa", "trzy", "cztery", "pięć", "sześć", "siedem", "osiem", "dziewięć",
}

var teensWords = [10]string{
	"dziesięć", "jedenaście", "dwanaście", "trzynaście", "czternaście",
	"piętnaście", "szesnaście", "siedemnaście", "osiemnaście", "dziewiętnaście",
}

type irregularTen struct {
	word  string
	value int
}

// irregularTens holds the three tens words (20, 30, 40) that aren't formed
// by the <ones><dziesiąt> pattern used for 50-90.
var irregularTens = [3]irregularTen{
	{"dwadzieścia", 20},
	{"trzydzieści", 30},
	{"czterdzieści", 40},
}

var hundredsWords = [2]string{"sto", "dwieście"}

// EmitByte spells out n (0-255) as a Polish cardinal numeral.
func EmitByte(n byte) string {
	if n == 0 {
		return "zero"
	}

	h := int(n) / 100
	rem := int(n) % 100
	t := rem / 10
	u := rem % 10

	var sb strings.Builder
	if h > 0 {
		sb.WriteString(hundredsWords[h-1])
	}
	if h > 0 && (t > 0 || u > 0) {
		sb.WriteByte(' ')
	}
	if rem >= 10 && rem <= 19 {
		sb.WriteString(teensWords[rem-10])
		return sb.String()
	}

	switch {
	case t >= 2 && t <= 4:
		sb.WriteString(irregularTens[t-2].word)
	case t >= 5:
		sb.WriteString(onesWords[t-1])
		sb.WriteString("dziesiąt")
	}
	if t >= 1 && u > 0 {
		sb.WriteByte(' ')
	}
	if u > 0 {
		sb.WriteString(onesWords[u-1])
	}
	return sb.String()
}

// ParseByte reads one byte-numeral from c, greedily, and returns its
// value. Per the format's own contract, this never fails in isolation: an
// unrecognized sequence yields 0 with the cursor left where it started.
// Malformation is instead caught by the surrounding grammar (a missing
// keyword or newline where one was expected).
func ParseByte(c *cursor) byte {
	if c.consumeString("zero") {
		return 0
	}

	total := 0
	switch {
	case c.consumeString(hundredsWords[1]): // "dwieście" before "sto": no shared prefix, order is free
		total = 200
	case c.consumeString(hundredsWords[0]):
		total = 100
	}

	if total > 0 {
		// The cursor must remember the position just before the space
		// following the hundreds word: if nothing smaller follows (e.g.
		// the hundreds word is itself the whole number, and the space
		// actually belongs to a " X " run-length marker or other
		// surrounding grammar), that space must remain unconsumed.
		beforeSpace := c.mark()
		if c.consumeByte(' ') {
			if rest, ok := parseUnderHundred(c); ok {
				return byte(total + rest)
			}
			c.reset(beforeSpace)
		}
		return byte(total)
	}

	if rest, ok := parseUnderHundred(c); ok {
		return byte(rest)
	}
	return 0
}

// parseUnderHundred parses a numeral in 1..99: a tens word optionally
// followed by a ones digit, a teen word, or a bare ones digit. ok is false
// if nothing matched, in which case the cursor is unchanged.
func parseUnderHundred(c *cursor) (int, bool) {
	start := c.mark()

	tensValue, matchedTens := 0, false
	for _, it := range irregularTens {
		if c.consumeString(it.word) {
			tensValue, matchedTens = it.value, true
			break
		}
	}
	if !matchedTens {
		for t := 9; t >= 5; t-- {
			save := c.mark()
			if c.consumeString(onesWords[t-1]) && c.consumeString("dziesiąt") {
				tensValue, matchedTens = t*10, true
				break
			}
			c.reset(save)
		}
	}
	if matchedTens {
		beforeSpace := c.mark()
		if c.consumeByte(' ') {
			if u, ok := parseOnesDigit(c); ok {
				return tensValue + u, true
			}
			c.reset(beforeSpace)
		}
		return tensValue, true
	}

	for i, w := range teensWords {
		if c.consumeString(w) {
			return 10 + i, true
		}
	}

	if u, ok := parseOnesDigit(c); ok {
		return u, true
	}

	c.reset(start)
	return 0, false
}

func parseOnesDigit(c *cursor) (int, bool) {
	for i, w := range onesWords {
		if c.consumeString(w) {
			return i + 1, true
		}
	}
	return 0, false
}

// EmitUint64 spells out n as a sequence of byte-numerals, most-significant
// byte first, separated by "<<", with leading zero bytes elided. Zero is
// spelled out as a single "zero".
func EmitUint64(n uint64) string {
	if n == 0 {
		return "zero"
	}
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], n)
	i := 0
	for b[i] == 0 {
		i++
	}
	parts := make([]string, 0, 8-i)
	for ; i < 8; i++ {
		parts = append(parts, EmitByte(b[i]))
	}
	return strings.Join(parts, "<<")
}

// ParseUint64 reads a composite integer from c: a byte-numeral, then zero
// or more "<<"-separated byte-numerals, each shifting the accumulated
// value left by 8 bits.
func ParseUint64(c *cursor) uint64 {
	result := uint64(ParseByte(c))
	for c.consumeString("<<") {
		result = (result << 8) | uint64(ParseByte(c))
	}
	return result
}
