package services

import (
	"encoding/base64"
	"strings"

	"chirpnest/apperror"
)

// DecodeImagePayload decodes the base64 image the client sends, with or
// without a data-URI prefix ("data:image/png;base64,...."). Returns the raw
// bytes and the declared content type.
func DecodeImagePayload(payload string) ([]byte, string, error) {
	contentType := "image/png"

	encoded := payload
	if strings.HasPrefix(payload, "data:") {
		header, rest, found := strings.Cut(payload, ",")
		if !found {
			return nil, "", apperror.Validation("Invalid image data")
		}
		encoded = rest
		header = strings.TrimPrefix(header, "data:")
		if mediaType, _, _ := strings.Cut(header, ";"); mediaType != "" {
			contentType = mediaType
		}
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", apperror.Validation("Invalid image data")
	}
	if len(data) == 0 {
		return nil, "", apperror.Validation("Invalid image data")
	}
	return data, contentType, nil
}
