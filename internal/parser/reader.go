package parser

import (
	"fmt"
	"unicode/utf8"
)

// utf8Error reports invalid UTF-8 input. This is rejected before line
// splitting even begins, since byte offsets are meaningless once the
// encoding itself can't be trusted.
type utf8Error struct {
	offset int
}

func (e *utf8Error) Error() string {
	return fmt.Sprintf("invalid UTF-8 at byte offset %d", e.offset)
}

// validateUTF8 returns the offset of the first invalid byte, or -1 if the
// input is entirely valid UTF-8.
func validateUTF8(src []byte) int {
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
