// Package openapi provides OpenAPI document fetching, caching, operation
// enumeration, and path template matching for coverage accounting.
package openapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/qawave/qawave/pkg/models"
)

var (
	// ErrSpecFetch marks transport failures retrieving a document by URL.
	ErrSpecFetch = errors.New("spec fetch failed")
	// ErrSpecInvalid marks documents that were retrieved but did not
	// parse, did not validate, or declare no operations.
	ErrSpecInvalid = errors.New("spec invalid")
)

// Operation is one method+path pair enumerated from a document.
type Operation struct {
	Method      models.HTTPMethod `json:"method"`
	Path        string            `json:"path"`
	OperationID string            `json:"operation_id,omitempty"`
	Summary     string            `json:"summary,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
}

// Ref returns the coverage key for the operation.
func (op Operation) Ref() models.OperationRef {
	return models.OperationRef{Method: string(op.Method), Path: op.Path}
}

// Document is a parsed, validated OpenAPI document with its operations
// enumerated in deterministic order: paths sorted lexicographically,
// methods in canonical order within a path.
type Document struct {
	Raw        []byte
	Hash       string
	Title      string
	Version    string
	Servers    []string
	Operations []Operation
}

// Parse loads and validates an OpenAPI document from raw JSON or YAML.
// External references are not followed. A document that validates but
// declares no operations is rejected: there is nothing to test against
// it. Failures wrap ErrSpecInvalid.
func Parse(ctx context.Context, data []byte) (*Document, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	loader.IsExternalRefsAllowed = false

	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing document: %v", ErrSpecInvalid, err)
	}
	if err := spec.Validate(ctx); err != nil {
		return nil, fmt.Errorf("%w: validating document: %v", ErrSpecInvalid, err)
	}

	doc := &Document{
		Raw:  data,
		Hash: models.SHA256Hex(bytes.TrimSpace(data)),
	}
	if spec.Info != nil {
		doc.Title = spec.Info.Title
		doc.Version = spec.Info.Version
	}
	for _, server := range spec.Servers {
		if server != nil && server.URL != "" {
			doc.Servers = append(doc.Servers, server.URL)
		}
	}
	doc.Operations = enumerateOperations(spec)
	if len(doc.Operations) == 0 {
		return nil, fmt.Errorf("%w: document declares no operations", ErrSpecInvalid)
	}
	return doc, nil
}

// OperationRefs returns the coverage keys of all operations, in order.
func (d *Document) OperationRefs() []models.OperationRef {
	refs := make([]models.OperationRef, len(d.Operations))
	for i, op := range d.Operations {
		refs[i] = op.Ref()
	}
	return refs
}

func enumerateOperations(spec *openapi3.T) []Operation {
	if spec.Paths == nil {
		return nil
	}
	pathMap := spec.Paths.Map()
	paths := make([]string, 0, len(pathMap))
	for p := range pathMap {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var ops []Operation
	for _, p := range paths {
		item := pathMap[p]
		if item == nil {
			continue
		}
		byMethod := item.Operations()
		for _, method := range models.AllHTTPMethods {
			op, ok := byMethod[string(method)]
			if !ok || op == nil {
				continue
			}
			ops = append(ops, Operation{
				Method:      method,
				Path:        p,
				OperationID: op.OperationID,
				Summary:     op.Summary,
				Tags:        op.Tags,
			})
		}
	}
	return ops
}
