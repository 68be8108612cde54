// Package routes provides HTTP route registration and handler building.
// Domain handlers expose their endpoints as Groups; the route system
// collects them and builds the final multiplexer.
package routes

import (
	"net/http"

	"github.com/akilimali/parapheur/pkg/openapi"
)

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}

// Route represents an HTTP route with method, pattern, and handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}
