package openapi

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON serializes a specification with stable two-space indentation
// so generated spec files diff cleanly between runs.
func MarshalJSON(spec *Spec) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(spec); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
