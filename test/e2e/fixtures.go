package e2e

import (
	"fmt"
	"strings"
)

// OpenAPI documents shared by the e2e tests. JSON is valid YAML, so the
// same strings serve both the inline and the URL-served spec paths.

// specSingleOp declares one operation, POST /api/users.
const specSingleOp = `{
  "openapi": "3.0.3",
  "info": {"title": "User API", "version": "1.0.0"},
  "paths": {
    "/api/users": {
      "post": {
        "operationId": "createUser",
        "summary": "Create a user",
        "responses": {"201": {"description": "Created"}}
      }
    }
  }
}`

// specTwoOps declares POST /users and GET /users/{userId}. Enumeration
// order is lexicographic by path: the POST comes first.
const specTwoOps = `{
  "openapi": "3.0.3",
  "info": {"title": "User API", "version": "1.0.0"},
  "paths": {
    "/users": {
      "post": {
        "operationId": "createUser",
        "summary": "Create a user",
        "responses": {"201": {"description": "Created"}}
      }
    },
    "/users/{userId}": {
      "get": {
        "operationId": "getUser",
        "summary": "Fetch a user by id",
        "parameters": [
          {"name": "userId", "in": "path", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {"200": {"description": "OK"}}
      }
    }
  }
}`

// specPing declares one operation, GET /api/ping. Used by tests that need
// many cheap scenarios against a single endpoint.
const specPing = `{
  "openapi": "3.0.3",
  "info": {"title": "Ping API", "version": "1.0.0"},
  "paths": {
    "/api/ping": {
      "get": {
        "operationId": "ping",
        "summary": "Liveness probe",
        "responses": {"200": {"description": "OK"}}
      }
    }
  }
}`

// specBlob declares one operation, GET /api/blob. Used by the storage
// policy test, which needs a response body larger than the excerpt limit.
const specBlob = `{
  "openapi": "3.0.3",
  "info": {"title": "Blob API", "version": "1.0.0"},
  "paths": {
    "/api/blob": {
      "get": {
        "operationId": "getBlob",
        "summary": "Fetch the blob",
        "responses": {"200": {"description": "OK"}}
      }
    }
  }
}`

// scenarioCreateUser is a valid single-step scenario document for
// specSingleOp: create a user, expect 201 and an assigned id.
const scenarioCreateUser = `[
  {
    "name": "create user",
    "description": "Creates a user and checks the assigned id.",
    "operationId": "createUser",
    "steps": [
      {
        "index": 0,
        "name": "create user",
        "method": "POST",
        "endpoint": "/api/users",
        "body": {"name": "Avery"},
        "expected": {"status": "201", "bodyFields": {"$.id": "<any>"}}
      }
    ]
  }
]`

// scenarioReadBlob is a valid single-step scenario document for specBlob.
// The assertion and the extraction both target a field at the very end of
// the response body.
const scenarioReadBlob = `[
  {
    "name": "read blob",
    "operationId": "getBlob",
    "steps": [
      {
        "index": 0,
        "name": "fetch blob",
        "method": "GET",
        "endpoint": "/api/blob",
        "expected": {"status": "200", "bodyFields": {"$.tail": "end-marker"}},
        "extractions": {"marker": "$.tail"}
      }
    ]
  }
]`

// scenarioPingOnce is a valid single-step scenario document for specPing.
const scenarioPingOnce = `[
  {
    "name": "ping once",
    "operationId": "ping",
    "steps": [
      {
        "index": 0,
        "name": "ping",
        "method": "GET",
        "endpoint": "/api/ping",
        "expected": {"status": "200"}
      }
    ]
  }
]`

// scenarioMissingSteps violates the scenario contract: the scenario has
// no steps array, which the schema check rejects.
const scenarioMissingSteps = `[{"name": "broken scenario"}]`

// pingScenarios renders a scenario document with n identical single-step
// GET /api/ping scenarios named ping-1..ping-n. Used to flood the
// execution stage from a single generation call.
func pingScenarios(n int) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 1; i <= n; i++ {
		if i > 1 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{
  "name": "ping-%d",
  "operationId": "ping",
  "steps": [
    {"index": 0, "name": "ping", "method": "GET", "endpoint": "/api/ping", "expected": {"status": "200"}}
  ]
}`, i)
	}
	sb.WriteString("]")
	return sb.String()
}
