package profiles

import "github.com/akilimali/parapheur/pkg/query"

var projection = query.NewProjectionMap("public", "profiles", "p").
	Project("id", "Id").
	Project("first_name", "FirstName").
	Project("last_name", "LastName").
	Project("email", "Email").
	Project("role", "Role").
	Project("is_active", "IsActive").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "LastName"}
