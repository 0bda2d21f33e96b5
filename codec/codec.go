// Package codec selects the JSON encoder used for instance and solution
// documents.
//
// Every codec emits plain JSON, so a document written with one codec reads
// back with any other.
package codec

import (
	"errors"
	"fmt"
)

// ErrUnknown is returned by New for an unregistered codec name.
var ErrUnknown = errors.New("codec: unknown codec")

// Codec encodes and decodes documents. Implementations are safe for
// concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Names lists the accepted codec names, default first.
func Names() []string {
	return []string{GoJSONName, StdJSONName}
}

// New returns the codec registered under name. A non-empty indent makes
// Marshal emit indented output, one indent per nesting level. An empty name
// selects the go-json codec.
func New(name, indent string) (Codec, error) {
	switch name {
	case "", GoJSONName:
		return GoJSON{Indent: indent}, nil
	case StdJSONName:
		return StdJSON{Indent: indent}, nil
	default:
		return nil, fmt.Errorf("%w %q (want one of %v)", ErrUnknown, name, Names())
	}
}
