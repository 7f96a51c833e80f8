package api

import "encoding/json"

const codecName = "json"

// Codec carries the plain Go messages of this package as JSON, registered in
// place of connect's protobuf JSON codec.
type Codec struct{}

func (Codec) Name() string {
	return codecName
}

func (Codec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

func (Codec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}

	return json.Unmarshal(data, message)
}
