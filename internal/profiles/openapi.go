package profiles

import "github.com/akilimali/parapheur/pkg/openapi"

type spec struct {
	List       *openapi.Operation
	Find       *openapi.Operation
	ListRoles  *openapi.Operation
	Create     *openapi.Operation
	Update     *openapi.Operation
	Activate   *openapi.Operation
	Deactivate *openapi.Operation
	Delete     *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List profiles",
		Description: "List staff profiles with pagination and optional filters",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Items per page", false),
			openapi.QueryParam("search", "string", "Search in name and email", false),
			openapi.QueryParam("role", "string", "Filter by role", false),
			openapi.QueryParam("active", "boolean", "Filter by activation state", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Profiles list", "ProfilePageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Find profile",
		Description: "Find profile by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Profile ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Profile details", "Profile"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	ListRoles: &openapi.Operation{
		Summary:     "List roles",
		Description: "List every administrative role known to the service",
		Responses: map[int]*openapi.Response{
			200: {Description: "Role list"},
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create profile",
		Description: "Register a staff profile with an administrative role",
		RequestBody: openapi.RequestBodyJSON("CreateProfileCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Profile created", "Profile"),
			400: openapi.ResponseRef("BadRequest"),
			409: {Description: "Email already registered"},
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update profile",
		Description: "Update profile identity and role",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Profile ID"),
		},
		RequestBody: openapi.RequestBodyJSON("UpdateProfileCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Profile updated", "Profile"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Activate: &openapi.Operation{
		Summary:     "Activate profile",
		Description: "Mark a profile active so it can be assigned signature steps",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Profile ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Profile activated", "Profile"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Deactivate: &openapi.Operation{
		Summary:     "Deactivate profile",
		Description: "Mark a profile inactive; it is skipped when workflows resolve signers",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Profile ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Profile deactivated", "Profile"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete profile",
		Description: "Delete profile by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Profile ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Profile deleted"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Profile": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "string", Format: "uuid"},
				"first_name": {Type: "string"},
				"last_name":  {Type: "string"},
				"email":      {Type: "string", Format: "email"},
				"role":       {Type: "string", Description: "Administrative role"},
				"is_active":  {Type: "boolean"},
				"created_at": {Type: "string", Format: "date-time"},
				"updated_at": {Type: "string", Format: "date-time"},
			},
		},
		"CreateProfileCommand": {
			Type:     "object",
			Required: []string{"first_name", "last_name", "email", "role"},
			Properties: map[string]*openapi.Schema{
				"first_name": {Type: "string"},
				"last_name":  {Type: "string"},
				"email":      {Type: "string", Format: "email"},
				"role":       {Type: "string"},
			},
		},
		"UpdateProfileCommand": {
			Type:     "object",
			Required: []string{"first_name", "last_name", "email", "role"},
			Properties: map[string]*openapi.Schema{
				"first_name": {Type: "string"},
				"last_name":  {Type: "string"},
				"email":      {Type: "string", Format: "email"},
				"role":       {Type: "string"},
			},
		},
		"ProfilePageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Profile")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}
