package notifications

import "github.com/akilimali/parapheur/pkg/openapi"

type spec struct {
	List        *openapi.Operation
	UnreadCount *openapi.Operation
	MarkRead    *openapi.Operation
	MarkAllRead *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List notifications",
		Description: "List the acting user's notifications with pagination and optional filters",
		Parameters: []*openapi.Parameter{
			openapi.HeaderParam("X-User-Id", "Acting user profile ID", true),
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Items per page", false),
			openapi.QueryParam("kind", "string", "Filter by event kind", false),
			openapi.QueryParam("unread", "boolean", "Only unread notifications", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Notifications list", "NotificationPageResult"),
			401: {Description: "Missing acting user"},
		},
	},
	UnreadCount: &openapi.Operation{
		Summary:     "Count unread",
		Description: "Count the acting user's unread notifications",
		Parameters: []*openapi.Parameter{
			openapi.HeaderParam("X-User-Id", "Acting user profile ID", true),
		},
		Responses: map[int]*openapi.Response{
			200: {Description: "Unread count"},
			401: {Description: "Missing acting user"},
		},
	},
	MarkRead: &openapi.Operation{
		Summary:     "Mark read",
		Description: "Mark one of the acting user's notifications as read",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Notification ID"),
			openapi.HeaderParam("X-User-Id", "Acting user profile ID", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Notification marked read", "Notification"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	MarkAllRead: &openapi.Operation{
		Summary:     "Mark all read",
		Description: "Mark every unread notification of the acting user as read",
		Parameters: []*openapi.Parameter{
			openapi.HeaderParam("X-User-Id", "Acting user profile ID", true),
		},
		Responses: map[int]*openapi.Response{
			200: {Description: "Number of notifications marked read"},
			401: {Description: "Missing acting user"},
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Notification": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"user_id":     {Type: "string", Format: "uuid"},
				"kind":        {Type: "string", Enum: []string{"signature_required", "document_rejected", "document_completed"}},
				"title":       {Type: "string"},
				"message":     {Type: "string"},
				"document_id": {Type: "string", Format: "uuid"},
				"read":        {Type: "boolean"},
				"created_at":  {Type: "string", Format: "date-time"},
			},
		},
		"NotificationPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Notification")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}
