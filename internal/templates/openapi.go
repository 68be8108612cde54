package templates

import "github.com/akilimali/parapheur/pkg/openapi"

type spec struct {
	List     *openapi.Operation
	Find     *openapi.Operation
	Generate *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List templates",
		Description: "List the document template catalog with storage availability",
		Responses: map[int]*openapi.Response{
			200: {Description: "Template catalog"},
		},
	},
	Find: &openapi.Operation{
		Summary:     "Find template",
		Description: "Find the template for a document type",
		Parameters: []*openapi.Parameter{
			{Name: "type", In: "path", Required: true, Description: "Document type", Schema: &openapi.Schema{Type: "string"}},
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Template details", "Template"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Generate: &openapi.Operation{
		Summary:     "Generate draft",
		Description: "Create a draft document from the template for a document type",
		Parameters: []*openapi.Parameter{
			{Name: "type", In: "path", Required: true, Description: "Document type", Schema: &openapi.Schema{Type: "string"}},
			openapi.HeaderParam("X-User-Id", "Acting user profile ID", true),
		},
		RequestBody: openapi.RequestBodyJSON("GenerateCommand", true),
		Responses: map[int]*openapi.Response{
			201: {Description: "Draft document generated"},
			400: openapi.ResponseRef("BadRequest"),
			401: {Description: "Missing acting user"},
			404: openapi.ResponseRef("NotFound"),
			409: {Description: "Template file missing from storage"},
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Template": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name":          {Type: "string"},
				"document_type": {Type: "string"},
				"storage_key":   {Type: "string"},
				"placeholders":  {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"available":     {Type: "boolean"},
			},
		},
		"GenerateCommand": {
			Type:     "object",
			Required: []string{"title"},
			Properties: map[string]*openapi.Schema{
				"title":       {Type: "string"},
				"description": {Type: "string"},
				"values":      {Type: "object", Description: "Placeholder values recorded with the draft"},
			},
		},
	}
}
