package query_test

import (
	"strings"
	"testing"

	"github.com/akilimali/parapheur/pkg/query"
)

func newTestProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "profiles", "p").
		Project("id", "Id").
		Project("first_name", "FirstName").
		Project("email", "Email")
}

func defaultSort() query.SortField {
	return query.SortField{Field: "FirstName"}
}

func TestBuilder_BuildCount_NoConditions(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), defaultSort())

	sql, args := b.BuildCount()

	wantSQL := "SELECT COUNT(*) FROM public.profiles p"
	if sql != wantSQL {
		t.Errorf("BuildCount() sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 0 {
		t.Errorf("BuildCount() args = %v, want empty", args)
	}
}

func TestBuilder_Build_NoConditions(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), defaultSort())

	sql, args := b.Build()

	if !strings.HasPrefix(sql, "SELECT p.id, p.first_name, p.email FROM public.profiles p") {
		t.Errorf("Build() missing select clause, got %q", sql)
	}
	if !strings.Contains(sql, "ORDER BY p.first_name ASC") {
		t.Errorf("Build() missing default order by, got %q", sql)
	}
	if len(args) != 0 {
		t.Errorf("Build() args = %v, want empty", args)
	}
}

func TestBuilder_BuildPage(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		want     string
	}{
		{"first page", 1, 20, "LIMIT 20 OFFSET 0"},
		{"second page", 2, 20, "LIMIT 20 OFFSET 20"},
		{"third page of ten", 3, 10, "LIMIT 10 OFFSET 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := query.NewBuilder(newTestProjection(), defaultSort())
			sql, _ := b.BuildPage(tt.page, tt.pageSize)

			if !strings.Contains(sql, tt.want) {
				t.Errorf("BuildPage(%d, %d) = %q, want containing %q", tt.page, tt.pageSize, sql, tt.want)
			}
		})
	}
}

func TestBuilder_BuildSingle(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), defaultSort())

	sql, args := b.BuildSingle("Id", 42)

	if !strings.Contains(sql, "WHERE p.id = $1") {
		t.Errorf("BuildSingle() = %q, want id condition", sql)
	}
	if len(args) != 1 || args[0] != 42 {
		t.Errorf("BuildSingle() args = %v, want [42]", args)
	}
}

func TestBuilder_WhereEquals(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), defaultSort()).
		WhereEquals("Email", "doyen@univ.example")

	sql, args := b.Build()

	if !strings.Contains(sql, "WHERE p.email = $1") {
		t.Errorf("Build() = %q, want equality condition", sql)
	}
	if len(args) != 1 || args[0] != "doyen@univ.example" {
		t.Errorf("Build() args = %v, want the bound value", args)
	}
}

func TestBuilder_WhereEquals_NilIgnored(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), defaultSort()).
		WhereEquals("Email", nil)

	sql, args := b.Build()

	if strings.Contains(sql, "WHERE") {
		t.Errorf("Build() = %q, want no conditions for nil value", sql)
	}
	if len(args) != 0 {
		t.Errorf("Build() args = %v, want empty", args)
	}
}

func TestBuilder_WhereContains(t *testing.T) {
	name := "Kalume"
	b := query.NewBuilder(newTestProjection(), defaultSort()).
		WhereContains("FirstName", &name)

	sql, args := b.Build()

	if !strings.Contains(sql, "WHERE p.first_name ILIKE $1") {
		t.Errorf("Build() = %q, want ILIKE condition", sql)
	}
	if len(args) != 1 || args[0] != "%Kalume%" {
		t.Errorf("Build() args = %v, want wildcard pattern", args)
	}
}

func TestBuilder_WhereSearch(t *testing.T) {
	search := "mwamba"
	b := query.NewBuilder(newTestProjection(), defaultSort()).
		WhereSearch(&search, "FirstName", "Email")

	sql, args := b.Build()

	if !strings.Contains(sql, "(p.first_name ILIKE $1 OR p.email ILIKE $2)") {
		t.Errorf("Build() = %q, want OR search group", sql)
	}
	if len(args) != 2 {
		t.Errorf("Build() args = %v, want pattern per field", args)
	}
}

func TestBuilder_ParameterNumbering(t *testing.T) {
	name := "Claude"
	b := query.NewBuilder(newTestProjection(), defaultSort()).
		WhereEquals("Email", "comptable@univ.example").
		WhereContains("FirstName", &name)

	sql, args := b.Build()

	if !strings.Contains(sql, "p.email = $1 AND p.first_name ILIKE $2") {
		t.Errorf("Build() = %q, want sequential parameters", sql)
	}
	if len(args) != 2 {
		t.Errorf("Build() args = %v, want 2 values", args)
	}
}

func TestBuilder_WhereIn(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), defaultSort()).
		WhereIn("Id", []any{1, 2, 3})

	sql, args := b.Build()

	if !strings.Contains(sql, "p.id IN ($1, $2, $3)") {
		t.Errorf("Build() = %q, want IN condition", sql)
	}
	if len(args) != 3 {
		t.Errorf("Build() args = %v, want 3 values", args)
	}
}

func TestBuilder_OrderByFields(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), defaultSort()).
		OrderByFields([]query.SortField{
			{Field: "Email", Descending: true},
			{Field: "Id"},
		})

	sql, _ := b.Build()

	if !strings.Contains(sql, "ORDER BY p.email DESC, p.id ASC") {
		t.Errorf("Build() = %q, want explicit ordering", sql)
	}
}

func TestBuilder_OrderByFields_UnknownIgnored(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), defaultSort()).
		OrderByFields([]query.SortField{{Field: "Nonexistent"}})

	sql, _ := b.Build()

	if strings.Contains(sql, "ORDER BY") {
		t.Errorf("Build() = %q, want no order by when no field resolves", sql)
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []query.SortField
	}{
		{"empty", "", nil},
		{"single ascending", "title", []query.SortField{{Field: "title"}}},
		{"single descending", "-created_at", []query.SortField{{Field: "created_at", Descending: true}}},
		{
			"mixed with spaces",
			"-created_at, title",
			[]query.SortField{{Field: "created_at", Descending: true}, {Field: "title"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.ParseSortFields(tt.value)

			if len(got) != len(tt.want) {
				t.Fatalf("ParseSortFields(%q) = %v, want %v", tt.value, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseSortFields(%q)[%d] = %+v, want %+v", tt.value, i, got[i], tt.want[i])
				}
			}
		})
	}
}
