package event

import "encoding/json"

// DecodePayload returns an event payload as T. Payloads published on the
// MemoryBus arrive as T or *T; journal exports and scenario files hand over
// raw JSON or generic maps, which are decoded through encoding/json.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
		return result, nil
	case json.RawMessage:
		return result, json.Unmarshal(v, &result)
	case []byte:
		return result, json.Unmarshal(v, &result)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
