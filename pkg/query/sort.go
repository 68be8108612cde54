package query

import "strings"

// SortField identifies a logical field to sort by and its direction.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending,omitempty"`
}

// ParseSortFields parses a comma-separated sort expression where a "-"
// prefix marks a descending field, e.g. "-created_at,title".
func ParseSortFields(value string) []SortField {
	if value == "" {
		return nil
	}

	var fields []SortField
	for part := range strings.SplitSeq(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		desc := strings.HasPrefix(part, "-")
		fields = append(fields, SortField{
			Field:      strings.TrimPrefix(part, "-"),
			Descending: desc,
		})
	}

	return fields
}
