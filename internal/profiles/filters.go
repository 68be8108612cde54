package profiles

import (
	"net/url"
	"strconv"

	"github.com/akilimali/parapheur/pkg/query"
)

// Filters contains optional criteria for filtering profile queries.
type Filters struct {
	Role     *Role
	IsActive *bool
}

// FiltersFromQuery extracts profile filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if r := values.Get("role"); r != "" {
		role := Role(r)
		f.Role = &role
	}

	if a := values.Get("active"); a != "" {
		if active, err := strconv.ParseBool(a); err == nil {
			f.IsActive = &active
		}
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.Role != nil {
		b.WhereEquals("Role", *f.Role)
	}
	if f.IsActive != nil {
		b.WhereEquals("IsActive", *f.IsActive)
	}
	return b
}
