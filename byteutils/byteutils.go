package byteutils

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// HasPrefixAt reports whether s[i:] starts with prefix. i is a byte offset.
func HasPrefixAt(s string, prefix string, i int) bool {
	if i < 0 || i > len(s) {
		return false
	}
	return strings.HasPrefix(s[i:], prefix)
}

// CharWidthAt returns the byte width of the character starting at s[i],
// at least 1 so callers always make progress on invalid utf8.
func CharWidthAt(s string, i int) int {
	_, size := utf8.DecodeRuneInString(s[i:])
	if size < 1 {
		return 1
	}
	return size
}

func SeekPreviousWhitespace(bs []byte, i int) int {
	return bytes.LastIndexAny(bs[:i], " \n\r")
}

// PreviousWordStart returns the offset of the start of the word before i,
// skipping whitespace directly behind i.
func PreviousWordStart(bs []byte, i int) int {
	if i > len(bs) {
		i = len(bs)
	}
	for i > 0 && (bs[i-1] == ' ' || bs[i-1] == '\n' || bs[i-1] == '\r') {
		i--
	}
	return SeekPreviousWhitespace(bs, i) + 1
}

// LastCharStart returns the offset of the last utf8 character in bs.
func LastCharStart(bs []byte) int {
	if len(bs) == 0 {
		return 0
	}
	_, size := utf8.DecodeLastRune(bs)
	return len(bs) - size
}
