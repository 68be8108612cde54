package documents

import (
	"net/url"

	"github.com/akilimali/parapheur/pkg/query"
	"github.com/google/uuid"
)

// Filters contains optional criteria for filtering document queries.
type Filters struct {
	DocumentType  *DocumentType
	Status        *Status
	CreatedBy     *uuid.UUID
	CurrentSigner *uuid.UUID
}

// FiltersFromQuery extracts document filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if t := values.Get("type"); t != "" {
		dt := DocumentType(t)
		f.DocumentType = &dt
	}

	if s := values.Get("status"); s != "" {
		status := Status(s)
		f.Status = &status
	}

	if c := values.Get("created_by"); c != "" {
		if id, err := uuid.Parse(c); err == nil {
			f.CreatedBy = &id
		}
	}

	if s := values.Get("signer"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			f.CurrentSigner = &id
		}
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.DocumentType != nil {
		b.WhereEquals("DocumentType", *f.DocumentType)
	}
	if f.Status != nil {
		b.WhereEquals("Status", *f.Status)
	}
	if f.CreatedBy != nil {
		b.WhereEquals("CreatedBy", *f.CreatedBy)
	}
	if f.CurrentSigner != nil {
		b.WhereEquals("CurrentSigner", *f.CurrentSigner)
	}
	return b
}
