package utils

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidDataURI = errors.New("invalid base64 data uri")

var imageExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// DecodedImage base64 data URI 解码后的图片
type DecodedImage struct {
	Data        []byte
	ContentType string
	Extension   string
}

// DecodeImageDataURI 解码形如 data:image/png;base64,xxxx 的图片
func DecodeImageDataURI(raw string) (*DecodedImage, error) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "data:") {
		return nil, ErrInvalidDataURI
	}

	header, payload, ok := strings.Cut(raw[len("data:"):], ",")
	if !ok || payload == "" {
		return nil, ErrInvalidDataURI
	}

	contentType, encoding, ok := strings.Cut(header, ";")
	if !ok || encoding != "base64" {
		return nil, ErrInvalidDataURI
	}

	ext, ok := imageExtensions[strings.ToLower(contentType)]
	if !ok {
		return nil, ErrInvalidDataURI
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(data) == 0 {
		return nil, ErrInvalidDataURI
	}

	return &DecodedImage{
		Data:        data,
		ContentType: strings.ToLower(contentType),
		Extension:   ext,
	}, nil
}
