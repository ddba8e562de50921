package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeImageDataURI(t *testing.T) {
	img, err := DecodeImageDataURI("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), img.Data)
	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, "png", img.Extension)

	img, err = DecodeImageDataURI("  data:IMAGE/JPEG;base64,aGVsbG8=\n")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", img.ContentType)
	assert.Equal(t, "jpg", img.Extension)
}

func TestDecodeImageDataURIRejectsMalformedInput(t *testing.T) {
	cases := map[string]string{
		"empty":            "",
		"no scheme":        "aGVsbG8=",
		"no comma":         "data:image/png;base64",
		"empty payload":    "data:image/png;base64,",
		"not base64":       "data:image/png,aGVsbG8=",
		"unsupported type": "data:text/plain;base64,aGVsbG8=",
		"bad encoding":     "data:image/png;base64,@@@not-base64@@@",
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeImageDataURI(raw)
			assert.ErrorIs(t, err, ErrInvalidDataURI)
		})
	}
}
