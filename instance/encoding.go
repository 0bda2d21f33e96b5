package instance

import (
	"fmt"

	"github.com/hupe1980/diskpack/codec"
	"github.com/hupe1980/diskpack/geom"
)

// Decode decompresses, validates and unmarshals an instance document.
func Decode(data []byte) (*Instance, error) {
	raw, err := decompress(data)
	if err != nil {
		return nil, err
	}
	if err := Validate(raw); err != nil {
		return nil, err
	}

	var in Instance
	if err := codec.Default.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if in.Points == nil {
		in.Points = []geom.Point{}
	}
	return &in, nil
}

// Encode marshals in and wraps it with compression c.
func Encode(in *Instance, c Compression) ([]byte, error) {
	doc := *in
	if doc.Points == nil {
		doc.Points = []geom.Point{}
	}
	raw, err := codec.Default.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("instance: marshal: %w", err)
	}
	return compress(raw, c)
}
