package api

import "encoding/json"

// Codec marshals plain Go messages as JSON for Connect handlers and
// clients. It registers under the "json" name, so requests sent with
// Content-Type application/json are decoded with it.
type Codec struct{}

func (Codec) Name() string { return "json" }

func (Codec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

func (Codec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, message)
}
