package codec

import "encoding/json"

// StdJSONName selects StdJSON.
const StdJSONName = "json"

// StdJSON encodes with encoding/json.
type StdJSON struct {
	// Indent, when set, is used per nesting level.
	Indent string
}

func (c StdJSON) Marshal(v any) ([]byte, error) {
	if c.Indent != "" {
		return json.MarshalIndent(v, "", c.Indent)
	}
	return json.Marshal(v)
}

func (StdJSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (StdJSON) Name() string { return StdJSONName }
