package workflow

import "github.com/akilimali/parapheur/pkg/openapi"

type spec struct {
	Get           *openapi.Operation
	Initialize    *openapi.Operation
	Sign          *openapi.Operation
	Reject        *openapi.Operation
	RetryFinalize *openapi.Operation
}

var Spec = spec{
	Get: &openapi.Operation{
		Summary:     "Get workflow",
		Description: "Get the ordered signature chain and derived status for a document",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Workflow projection", "WorkflowView"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Initialize: &openapi.Operation{
		Summary:     "Submit for signature",
		Description: "Build the approval chain for a draft and route it to the first signer. An unrecognized type or fully unresolvable chain leaves the document in draft.",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
			openapi.HeaderParam("X-User-Id", "Acting user profile ID", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Workflow initialized", "WorkflowView"),
			401: {Description: "Missing acting user"},
			404: openapi.ResponseRef("NotFound"),
			409: {Description: "Document is not a draft or a required role has no signer"},
			502: {Description: "Role directory unavailable"},
		},
	},
	Sign: &openapi.Operation{
		Summary:     "Sign active step",
		Description: "Record the acting user's attestation on the active step and advance the chain. The final signature triggers finalization.",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
			openapi.HeaderParam("X-User-Id", "Acting user profile ID", true),
		},
		RequestBody: openapi.RequestBodyJSON("SignCommand", false),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Step signed", "WorkflowView"),
			401: {Description: "Missing acting user"},
			403: {Description: "Acting user is not the active signer"},
			404: openapi.ResponseRef("NotFound"),
			409: {Description: "Document is not awaiting signature"},
			502: {Description: "Finalization failed; retry finalize"},
		},
	},
	Reject: &openapi.Operation{
		Summary:     "Reject document",
		Description: "Mark the active step rejected and terminate the workflow. The creator is notified with the reason.",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
			openapi.HeaderParam("X-User-Id", "Acting user profile ID", true),
		},
		RequestBody: openapi.RequestBodyJSON("RejectCommand", false),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Document rejected", "WorkflowView"),
			401: {Description: "Missing acting user"},
			403: {Description: "Acting user is not the active signer"},
			404: openapi.ResponseRef("NotFound"),
			409: {Description: "Document is not awaiting signature"},
		},
	},
	RetryFinalize: &openapi.Operation{
		Summary:     "Retry finalization",
		Description: "Re-run artifact finalization for a fully signed document whose completion did not land. Idempotent; a completed document returns its current chain.",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Finalization result", "WorkflowView"),
			404: openapi.ResponseRef("NotFound"),
			409: {Description: "Document is not awaiting finalization"},
			502: {Description: "Finalization failed again"},
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"WorkflowView": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"document_id":     {Type: "string", Format: "uuid"},
				"document_status": {Type: "string", Enum: []string{"draft", "pending_signature", "completed", "rejected"}},
				"current_step":    {Type: "integer", Description: "1-based index of the active step, or chain length when none pending"},
				"chain_status":    {Type: "string", Enum: []string{"pending", "completed", "rejected"}},
				"steps":           {Type: "array", Items: openapi.SchemaRef("WorkflowStep")},
			},
		},
		"WorkflowStep": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"order":       {Type: "integer"},
				"role":        {Type: "string"},
				"signer_id":   {Type: "string", Format: "uuid"},
				"signer_name": {Type: "string"},
				"state":       {Type: "string", Enum: []string{"pending", "signed", "rejected"}},
				"comment":     {Type: "string"},
				"acted_at":    {Type: "string", Format: "date-time"},
			},
		},
		"SignCommand": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"comment": {Type: "string", Description: "Attestation comment; defaults to the configured acknowledgement text"},
			},
		},
		"RejectCommand": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"reason": {Type: "string", Description: "Rejection reason delivered to the creator"},
			},
		},
	}
}
