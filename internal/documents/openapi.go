package documents

import "github.com/akilimali/parapheur/pkg/openapi"

type spec struct {
	List        *openapi.Operation
	Find        *openapi.Operation
	ListTypes   *openapi.Operation
	Search      *openapi.Operation
	Upload      *openapi.Operation
	Update      *openapi.Operation
	Content     *openapi.Operation
	Artifact    *openapi.Operation
	Permissions *openapi.Operation
	Delete      *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List documents",
		Description: "List documents with pagination and optional filters",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Items per page", false),
			openapi.QueryParam("search", "string", "Search in title and filename", false),
			openapi.QueryParam("type", "string", "Filter by document type", false),
			openapi.QueryParam("status", "string", "Filter by lifecycle status", false),
			openapi.QueryParam("created_by", "string", "Filter by creator profile ID", false),
			openapi.QueryParam("signer", "string", "Filter by current signer profile ID", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Documents list", "DocumentPageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Find document",
		Description: "Find document by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Document details", "Document"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	ListTypes: &openapi.Operation{
		Summary:     "List document types",
		Description: "List every recognized administrative document type",
		Responses: map[int]*openapi.Response{
			200: {Description: "Document type list"},
		},
	},
	Search: &openapi.Operation{
		Summary:     "Search documents",
		Description: "Search documents with pagination in request body",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("type", "string", "Filter by document type", false),
			openapi.QueryParam("status", "string", "Filter by lifecycle status", false),
		},
		RequestBody: openapi.RequestBodyJSON("PageRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Search results", "DocumentPageResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Upload: &openapi.Operation{
		Summary:     "Upload document",
		Description: "Upload a document file as a draft. PDFs have page count extracted automatically.",
		Parameters: []*openapi.Parameter{
			openapi.HeaderParam("X-User-Id", "Acting user profile ID", true),
		},
		RequestBody: &openapi.RequestBody{
			Required: true,
			Content: map[string]*openapi.MediaType{
				"multipart/form-data": {
					Schema: &openapi.Schema{
						Type: "object",
						Properties: map[string]*openapi.Schema{
							"file":          {Type: "string", Description: "Document file to upload"},
							"title":         {Type: "string", Description: "Display title (defaults to filename)"},
							"description":   {Type: "string", Description: "Optional description"},
							"document_type": {Type: "string", Description: "Administrative document type"},
						},
						Required: []string{"file", "document_type"},
					},
				},
			},
		},
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Document uploaded", "Document"),
			400: openapi.ResponseRef("BadRequest"),
			401: {Description: "Missing acting user"},
			413: {Description: "File too large"},
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update document",
		Description: "Update a draft's title and description. Non-draft documents are immutable.",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		RequestBody: openapi.RequestBodyJSON("UpdateDocumentCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Document updated", "Document"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: {Description: "Document is not a draft"},
		},
	},
	Content: &openapi.Operation{
		Summary:     "Download original",
		Description: "Download the originally uploaded file",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		Responses: map[int]*openapi.Response{
			200: {Description: "File content"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Artifact: &openapi.Operation{
		Summary:     "Download signed artifact",
		Description: "Download the attestation-stamped copy produced at workflow completion. Limited to the creator and authorized retrieval roles.",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
			openapi.HeaderParam("X-User-Id", "Acting user profile ID", true),
		},
		Responses: map[int]*openapi.Response{
			200: {Description: "Signed artifact content"},
			403: {Description: "Role not authorized for artifact retrieval"},
			404: openapi.ResponseRef("NotFound"),
			409: {Description: "Document has no signed artifact"},
		},
	},
	Permissions: &openapi.Operation{
		Summary:     "Evaluate permissions",
		Description: "Compute the acting user's permissions on a document",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
			openapi.HeaderParam("X-User-Id", "Acting user profile ID", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Permission evaluation", "DocumentPermissions"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete document",
		Description: "Delete document, its stored file, and any signed artifact",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Document deleted"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Document": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":             {Type: "string", Format: "uuid"},
				"title":          {Type: "string"},
				"description":    {Type: "string"},
				"document_type":  {Type: "string", Enum: []string{"releve_notes", "lettre_honoraires", "pv_conseil", "correspondance"}},
				"filename":       {Type: "string", Description: "Original filename"},
				"content_type":   {Type: "string", Description: "MIME type"},
				"size_bytes":     {Type: "integer", Format: "int64"},
				"page_count":     {Type: "integer", Description: "Page count (PDFs only)"},
				"storage_key":    {Type: "string", Description: "Original file storage key"},
				"artifact_key":   {Type: "string", Description: "Signed artifact storage key"},
				"status":         {Type: "string", Enum: []string{"draft", "pending_signature", "completed", "rejected"}},
				"current_signer": {Type: "string", Format: "uuid"},
				"created_by":     {Type: "string", Format: "uuid"},
				"created_at":     {Type: "string", Format: "date-time"},
				"updated_at":     {Type: "string", Format: "date-time"},
			},
		},
		"UpdateDocumentCommand": {
			Type:     "object",
			Required: []string{"title"},
			Properties: map[string]*openapi.Schema{
				"title":       {Type: "string"},
				"description": {Type: "string"},
			},
		},
		"DocumentPermissions": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"can_view":     {Type: "boolean"},
				"can_edit":     {Type: "boolean"},
				"can_sign":     {Type: "boolean"},
				"can_download": {Type: "boolean"},
			},
		},
		"DocumentPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Document")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}
