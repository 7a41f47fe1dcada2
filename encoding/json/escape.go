package json

import (
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// escapeNonASCII rewrites runes above 0x7F in encoded JSON as \uXXXX, using surrogate pairs outside the BMP.
// Encoded JSON carries such bytes only inside string literals.
func escapeNonASCII(data []byte) []byte {
	index := 0
	for index < len(data) && data[index] < utf8.RuneSelf {
		index++
	}
	if index == len(data) {
		return data
	}
	result := make([]byte, 0, len(data)+len(data)/2)
	result = append(result, data[:index]...)
	for index < len(data) {
		b := data[index]
		if b < utf8.RuneSelf {
			result = append(result, b)
			index++
			continue
		}
		r, size := utf8.DecodeRune(data[index:])
		index += size
		if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
			result = appendUnicodeEscape(result, r1)
			result = appendUnicodeEscape(result, r2)
			continue
		}
		result = appendUnicodeEscape(result, r)
	}
	return result
}

func appendUnicodeEscape(dst []byte, r rune) []byte {
	return append(dst, '\\', 'u',
		hexDigits[(r>>12)&0xF], hexDigits[(r>>8)&0xF], hexDigits[(r>>4)&0xF], hexDigits[r&0xF])
}
