package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexString decodes from either a JSON string or a JSON number and always encodes as a string.
type FlexString string

func (s FlexString) String() string {
	return string(s)
}

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("json.Unmarshal: %w", err)
		}
		*s = FlexString(str)
		return nil
	default:
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return fmt.Errorf("value[%s] is neither string nor number", data)
		}
		*s = FlexString(num.String())
		return nil
	}
}
