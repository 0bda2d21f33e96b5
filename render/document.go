package render

import (
	"io"

	"github.com/hupe1980/diskpack/codec"
	"github.com/hupe1980/diskpack/geom"
)

// Document is the JSON form of a solution.
type Document struct {
	Radius  float64      `json:"radius"`
	Size    int          `json:"size"`
	Indices []int        `json:"indices"`
	Points  []geom.Point `json:"points"`
}

// NewDocument collects the selected centers of sol. Indices outside pts are
// kept in Indices but have no entry in Points.
func NewDocument(pts []geom.Point, radius float64, sol []int) *Document {
	doc := &Document{
		Radius:  radius,
		Size:    len(sol),
		Indices: append([]int{}, sol...),
		Points:  make([]geom.Point, 0, len(sol)),
	}
	for _, i := range sol {
		if i >= 0 && i < len(pts) {
			doc.Points = append(doc.Points, pts[i])
		}
	}
	return doc
}

// WriteDocument encodes doc with c, or codec.Default when c is nil.
func WriteDocument(w io.Writer, doc *Document, c codec.Codec) error {
	if c == nil {
		c = codec.Default
	}
	b, err := c.Marshal(doc)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// ReadDocument decodes a solution document.
func ReadDocument(data []byte, c codec.Codec) (*Document, error) {
	if c == nil {
		c = codec.Default
	}
	var doc Document
	if err := c.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
