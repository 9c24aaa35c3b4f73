package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// decodeStrict decodes body into v rejecting unknown fields and trailing
// data.
func decodeStrict(resource string, body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return &DecodeError{Resource: resource, Err: err}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return &DecodeError{Resource: resource, Err: errors.New("unexpected data after JSON value")}
	}

	return nil
}
