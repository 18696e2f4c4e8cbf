package ocpi

import (
	"encoding/json"
	"fmt"
)

// marshalEnumString renders names[idx] as a JSON string, the common
// SCREAMING_SNAKE_CASE encoding OCPI uses for every tagged enum in this
// package.
func marshalEnumString(names []string, idx int) ([]byte, error) {
	if idx < 0 || idx >= len(names) {
		return nil, fmt.Errorf("ocpi: enum index %d out of range", idx)
	}
	return json.Marshal(names[idx])
}

// unmarshalEnumString finds s's index within names, case-sensitively, as
// OCPI enums are always transmitted upper-case.
func unmarshalEnumString(data []byte, names []string) (int, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return 0, err
	}
	for i, name := range names {
		if name == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("ocpi: unknown enum value %q", s)
}
