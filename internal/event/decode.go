package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload recovers a typed payload. Events published in-process carry
// T or *T directly; payloads read back from JSON arrive as generic maps and
// are re-encoded into T.
func DecodePayload[T any](input interface{}) (T, error) {
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}

	var out T
	if input == nil {
		return out, fmt.Errorf("decode %T: nil payload", out)
	}
	raw, err := json.Marshal(input)
	if err != nil {
		return out, fmt.Errorf("decode %T: %w", out, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %T: %w", out, err)
	}
	return out, nil
}
