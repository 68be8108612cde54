// Package query provides a fluent SQL builder with field-to-column
// projection maps, keeping repositories free of hand-numbered
// placeholder bookkeeping.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps logical field names to database columns for a
// single table, preserving declaration order for SELECT lists.
type ProjectionMap struct {
	schema string
	table  string
	alias  string
	fields []string
	cols   map[string]string
}

// NewProjectionMap creates a projection for the given schema-qualified
// table with the provided alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		cols:   make(map[string]string),
	}
}

// Project registers a column under a logical field name. Returns the
// receiver so declarations chain.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	p.fields = append(p.fields, field)
	p.cols[field] = fmt.Sprintf("%s.%s", p.alias, column)
	return p
}

// Column returns the aliased column for a logical field name.
// Unknown fields panic; projections are static declarations and an
// unknown field is a programming error.
func (p *ProjectionMap) Column(field string) string {
	col, ok := p.cols[field]
	if !ok {
		panic(fmt.Sprintf("query: unknown projection field %q on %s", field, p.table))
	}
	return col
}

// Columns returns the full SELECT column list in declaration order.
func (p *ProjectionMap) Columns() string {
	cols := make([]string, len(p.fields))
	for i, f := range p.fields {
		cols[i] = p.cols[f]
	}
	return strings.Join(cols, ", ")
}

// Table returns the aliased FROM clause target.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}
