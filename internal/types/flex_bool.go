package types

import (
	"encoding/json"
	"fmt"
)

// FlexBool is a bool that can be unmarshaled from a JSON bool, the numbers
// 0/1, or the strings "0"/"1"/"true"/"false". The legacy like/dislike flags
// arrive as tinyint-style 0/1 from old clients and as booleans from new ones.
type FlexBool bool

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexBool) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = FlexBool(b)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		switch n {
		case 0:
			*f = false
		case 1:
			*f = true
		default:
			return fmt.Errorf("FlexBool: number %d is not 0 or 1", n)
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case "0", "false":
			*f = false
		case "1", "true":
			*f = true
		default:
			return fmt.Errorf("FlexBool: invalid bool string %q", s)
		}
		return nil
	}

	return fmt.Errorf("FlexBool: expected bool, number or string")
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

// Bool converts FlexBool back to bool.
func (f FlexBool) Bool() bool {
	return bool(f)
}
