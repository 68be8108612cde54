package notifications

import (
	"net/url"
	"strconv"

	"github.com/akilimali/parapheur/pkg/query"
)

// Filters contains optional criteria for filtering notification queries.
type Filters struct {
	Kind   *Kind
	Unread bool
}

// FiltersFromQuery extracts notification filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if k := values.Get("kind"); k != "" {
		kind := Kind(k)
		f.Kind = &kind
	}

	if u := values.Get("unread"); u != "" {
		if unread, err := strconv.ParseBool(u); err == nil {
			f.Unread = unread
		}
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.Kind != nil {
		b.WhereEquals("Kind", *f.Kind)
	}
	if f.Unread {
		b.WhereEquals("Read", false)
	}
	return b
}
