package documents

import "github.com/akilimali/parapheur/pkg/query"

var projection = query.NewProjectionMap("public", "documents", "d").
	Project("id", "Id").
	Project("title", "Title").
	Project("description", "Description").
	Project("document_type", "DocumentType").
	Project("filename", "Filename").
	Project("content_type", "ContentType").
	Project("size_bytes", "SizeBytes").
	Project("page_count", "PageCount").
	Project("storage_key", "StorageKey").
	Project("artifact_key", "ArtifactKey").
	Project("status", "Status").
	Project("current_signer", "CurrentSigner").
	Project("created_by", "CreatedBy").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}
