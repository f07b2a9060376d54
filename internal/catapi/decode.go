package catapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("catapi: unexpected status %s", e.Status)
	}
	return fmt.Sprintf("catapi: unexpected status %s: %s", e.Status, e.Body)
}

// ErrMissingURL marks a record without a url field.
var ErrMissingURL = errors.New("image record has no url")

// decodeImages parses a JSON array of image records. Every record must carry
// a url; an empty array is valid.
func decodeImages(r io.Reader) ([]Image, error) {
	var images []Image
	if err := json.NewDecoder(r).Decode(&images); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	for i, img := range images {
		if img.URL == "" {
			return nil, fmt.Errorf("decode search response: record %d: %w", i, ErrMissingURL)
		}
	}
	return images, nil
}
