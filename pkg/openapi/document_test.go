package openapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/models"
)

const userServiceSpec = `{
  "openapi": "3.0.3",
  "info": {"title": "User Service", "version": "1.2.0"},
  "servers": [{"url": "https://api.example.com"}],
  "paths": {
    "/users": {
      "get": {"operationId": "listUsers", "responses": {"200": {"description": "OK"}}},
      "post": {"operationId": "createUser", "responses": {"201": {"description": "Created"}}}
    },
    "/users/{id}": {
      "get": {"operationId": "getUser", "responses": {"200": {"description": "OK"}}},
      "delete": {"operationId": "deleteUser", "responses": {"204": {"description": "No Content"}}}
    },
    "/users/me": {
      "get": {"operationId": "getSelf", "responses": {"200": {"description": "OK"}}}
    },
    "/health": {
      "get": {"operationId": "health", "responses": {"200": {"description": "OK"}}}
    }
  }
}`

func parseUserServiceSpec(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse(context.Background(), []byte(userServiceSpec))
	require.NoError(t, err)
	return doc
}

func TestParseEnumeratesOperationsDeterministically(t *testing.T) {
	doc := parseUserServiceSpec(t)

	assert.Equal(t, "User Service", doc.Title)
	assert.Equal(t, "1.2.0", doc.Version)
	assert.Equal(t, []string{"https://api.example.com"}, doc.Servers)
	assert.NotEmpty(t, doc.Hash)

	var got []string
	for _, op := range doc.Operations {
		got = append(got, string(op.Method)+" "+op.Path)
	}
	// Paths sorted lexicographically, methods in canonical order.
	assert.Equal(t, []string{
		"GET /health",
		"GET /users",
		"POST /users",
		"GET /users/me",
		"GET /users/{id}",
		"DELETE /users/{id}",
	}, got)
}

func TestParseAcceptsYAML(t *testing.T) {
	spec := `
openapi: 3.0.3
info:
  title: Minimal
  version: 0.1.0
paths:
  /ping:
    get:
      operationId: ping
      responses:
        "200":
          description: OK
`
	doc, err := Parse(context.Background(), []byte(spec))
	require.NoError(t, err)
	require.Len(t, doc.Operations, 1)
	assert.Equal(t, models.MethodGet, doc.Operations[0].Method)
	assert.Equal(t, "/ping", doc.Operations[0].Path)
	assert.Equal(t, "ping", doc.Operations[0].OperationID)
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not a document", "this is not openapi"},
		{"missing info", `{"openapi": "3.0.3", "paths": {}}`},
		{"no operations", `{"openapi": "3.0.3", "info": {"title": "Empty", "version": "1.0.0"}, "paths": {}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(context.Background(), []byte(tt.data))
			require.ErrorIs(t, err, ErrSpecInvalid)
		})
	}
}

func TestParseHashIsStableAcrossWhitespace(t *testing.T) {
	doc1, err := Parse(context.Background(), []byte(userServiceSpec))
	require.NoError(t, err)
	doc2, err := Parse(context.Background(), []byte("  \n"+userServiceSpec+"\n\n"))
	require.NoError(t, err)
	assert.Equal(t, doc1.Hash, doc2.Hash)
}

func TestMatchOperation(t *testing.T) {
	doc := parseUserServiceSpec(t)

	tests := []struct {
		name     string
		method   models.HTTPMethod
		endpoint string
		wantOp   string
		wantOK   bool
	}{
		{"literal path", models.MethodGet, "/health", "health", true},
		{"parameter segment", models.MethodGet, "/users/42", "getUser", true},
		{"literal beats parameter", models.MethodGet, "/users/me", "getSelf", true},
		{"placeholder prefers parameter", models.MethodGet, "/users/${userId}", "getUser", true},
		{"query string ignored", models.MethodGet, "/users?limit=10", "listUsers", true},
		{"absolute endpoint", models.MethodDelete, "https://api.example.com/users/9", "deleteUser", true},
		{"trailing slash", models.MethodGet, "/users/", "listUsers", true},
		{"method mismatch", models.MethodPut, "/users/42", "", false},
		{"unknown path", models.MethodGet, "/orders/1", "", false},
		{"segment count mismatch", models.MethodGet, "/users/42/posts", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok := doc.MatchOperation(tt.method, tt.endpoint)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantOp, op.OperationID)
			}
		})
	}
}

func TestOperationRefs(t *testing.T) {
	doc := parseUserServiceSpec(t)
	refs := doc.OperationRefs()
	require.Len(t, refs, 6)
	assert.Equal(t, models.OperationRef{Method: "GET", Path: "/health"}, refs[0])
}
