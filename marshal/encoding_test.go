package marshal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/scriptglue/scriptglue-sdk/domain/errors"
)

func TestUTF8ToUTF16RoundTrip(t *testing.T) {
	cases := []string{
		"hello",
		"héllo wörld",
		"日本語テキスト",
		"emoji \U0001F600 outside the BMP",
	}
	for _, in := range cases {
		wide, err := UTF8ToUTF16(in)
		require.NoError(t, err, "input %q", in)

		back, err := UTF16ToUTF8(wide)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, in, back)
	}
}

func TestUTF8ToUTF16EmptyInput(t *testing.T) {
	wide, err := UTF8ToUTF16("")
	require.NoError(t, err)
	require.NotNil(t, wide)
	assert.Empty(t, wide)
}

func TestUTF8ToUTF16InvalidInput(t *testing.T) {
	_, err := UTF8ToUTF16(string([]byte{0xff, 0xfe, 0xfd}))
	require.Error(t, err)

	var encErr *domainerrors.EncodingError
	require.ErrorAs(t, err, &encErr)
}

func TestUTF16ToUTF8EmptyInput(t *testing.T) {
	out, err := UTF16ToUTF8(nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestUTF16ToUTF8UnpairedSurrogates(t *testing.T) {
	cases := map[string][]uint16{
		"lone high surrogate":          {0xD800},
		"high surrogate at end":        {'a', 0xD801},
		"high followed by non-low":     {0xD800, 'x'},
		"lone low surrogate":           {0xDC00},
		"low surrogate without a high": {'a', 0xDFFF, 'b'},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := UTF16ToUTF8(in)
			require.Error(t, err)

			var encErr *domainerrors.EncodingError
			require.ErrorAs(t, err, &encErr)
		})
	}
}

func TestUTF16ToUTF8ValidSurrogatePair(t *testing.T) {
	// U+1F600 as a surrogate pair.
	out, err := UTF16ToUTF8([]uint16{0xD83D, 0xDE00})
	require.NoError(t, err)
	assert.Equal(t, "\U0001F600", out)
}
