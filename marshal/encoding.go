package marshal

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	domainerrors "github.com/scriptglue/scriptglue-sdk/domain/errors"
)

var (
	errInvalidUTF8      = errors.New("input is not valid UTF-8")
	errUnpairedSurrogate = errors.New("input contains an unpaired surrogate")
)

// UTF8ToUTF16 converts 8-bit encoded text to the host's wide convention.
// Zero-length input is trivially successful and yields an empty, non-nil
// slice; invalid UTF-8 fails without crashing.
func UTF8ToUTF16(in string) ([]uint16, error) {
	if len(in) == 0 {
		return []uint16{}, nil
	}
	if !utf8.ValidString(in) {
		return nil, &domainerrors.EncodingError{Operation: "utf8 to utf16", Err: errInvalidUTF8}
	}
	return utf16.Encode([]rune(in)), nil
}

// UTF16ToUTF8 converts wide text back to the 8-bit convention. Zero
// length yields the empty string; unpaired surrogates fail.
func UTF16ToUTF8(in []uint16) (string, error) {
	if len(in) == 0 {
		return "", nil
	}
	for i := 0; i < len(in); i++ {
		c := in[i]
		switch {
		case c >= 0xD800 && c < 0xDC00:
			// High surrogate needs a following low surrogate.
			if i+1 >= len(in) || in[i+1] < 0xDC00 || in[i+1] >= 0xE000 {
				return "", &domainerrors.EncodingError{Operation: "utf16 to utf8", Err: errUnpairedSurrogate}
			}
			i++
		case c >= 0xDC00 && c < 0xE000:
			return "", &domainerrors.EncodingError{Operation: "utf16 to utf8", Err: errUnpairedSurrogate}
		}
	}
	return string(utf16.Decode(in)), nil
}
