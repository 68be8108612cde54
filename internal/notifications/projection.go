package notifications

import "github.com/akilimali/parapheur/pkg/query"

var projection = query.NewProjectionMap("public", "notifications", "n").
	Project("id", "Id").
	Project("user_id", "UserId").
	Project("kind", "Kind").
	Project("title", "Title").
	Project("message", "Message").
	Project("document_id", "DocumentId").
	Project("read", "Read").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}
