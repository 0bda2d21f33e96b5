package codec

import gojson "github.com/goccy/go-json"

// GoJSONName selects GoJSON.
const GoJSONName = "go-json"

// Default decodes instances and encodes documents unless a caller picks
// another codec.
var Default Codec = GoJSON{}

// GoJSON encodes with github.com/goccy/go-json, which decodes large
// instances noticeably faster than encoding/json.
type GoJSON struct {
	// Indent, when set, is used per nesting level.
	Indent string
}

func (c GoJSON) Marshal(v any) ([]byte, error) {
	if c.Indent != "" {
		return gojson.MarshalIndent(v, "", c.Indent)
	}
	return gojson.Marshal(v)
}

func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

func (GoJSON) Name() string { return GoJSONName }
