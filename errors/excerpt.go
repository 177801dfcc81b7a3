package errors

import (
	"unicode/utf8"

	"finco/openocean/common"
)

// Excerpt returns body as a string capped at common.BodyExcerptLimit characters. A longer
// body keeps exactly that many characters followed by common.ExcerptEllipsis. Bytes are
// kept verbatim; an invalid UTF-8 byte counts as one character.
func Excerpt(body []byte) string {
	limit := common.BodyExcerptLimit
	if len(body) <= limit {
		return string(body)
	}
	offset := 0
	for n := 0; n < limit; n++ {
		if offset >= len(body) {
			return string(body)
		}
		_, size := utf8.DecodeRune(body[offset:])
		offset += size
	}
	if offset >= len(body) {
		return string(body)
	}
	return string(body[:offset]) + common.ExcerptEllipsis
}
